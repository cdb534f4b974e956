package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/delexi/ensime/internal/core"
	"github.com/delexi/ensime/internal/types"
)

// Resolve derives a project's ExternalConfig, auto-detecting the build
// system when the request leaves it unset. Errors are only returned for
// invalid requests or failed detection; once a strategy runs, partial
// resolution failures degrade inside the returned config instead.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	dir, err := s.projectDir(req.Dir)
	if err != nil {
		return ResolveResult{}, err
	}

	buildSystem := types.BuildSystem(strings.ToLower(strings.TrimSpace(req.BuildSystem)))
	if buildSystem == "" || buildSystem == "auto" {
		detected, err := s.Detect(dir)
		if err != nil {
			return ResolveResult{}, err
		}
		buildSystem = detected
	}

	switch buildSystem {
	case types.BuildSystemMaven:
		return ResolveResult{BuildSystem: buildSystem, Config: s.ResolveMaven(ctx, dir)}, nil
	case types.BuildSystemIvy:
		return ResolveResult{BuildSystem: buildSystem, Config: s.ResolveIvy(ctx, dir, req.Ivy)}, nil
	case types.BuildSystemSbt:
		return ResolveResult{BuildSystem: buildSystem, Config: s.ResolveSbt(ctx, dir, req.Sbt)}, nil
	default:
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported build system: %s", req.BuildSystem))
	}
}

// ResolveMaven resolves a Maven-style project at dir.
func (s Service) ResolveMaven(ctx context.Context, dir string) types.ExternalConfig {
	return core.NewMavenStrategy(s.Probe, s.MavenResolver, s.Diag).Resolve(ctx, dir)
}

// ResolveIvy resolves an Ivy-style project at dir.
func (s Service) ResolveIvy(ctx context.Context, dir string, opts types.IvyOptions) types.ExternalConfig {
	return core.NewIvyStrategy(s.Probe, s.IvyResolver, s.Diag).Resolve(ctx, dir, opts)
}

// ResolveSbt resolves a convention-based sbt project at dir.
func (s Service) ResolveSbt(ctx context.Context, dir string, opts types.SbtOptions) types.ExternalConfig {
	return core.NewSbtStrategy(s.Probe, s.Props, s.Diag).Resolve(ctx, dir, opts)
}

func (s Service) projectDir(dir string) (string, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project directory is required")
	}
	info, err := os.Stat(trimmed)
	if err != nil || !info.IsDir() {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("project directory does not exist: %s", trimmed)).
			WithCause(err)
	}
	return trimmed, nil
}
