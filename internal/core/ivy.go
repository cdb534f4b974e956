package core

import (
	"context"
	"fmt"

	"github.com/delexi/ensime/internal/ports"
	"github.com/delexi/ensime/internal/types"
)

// IvyStrategy resolves projects managed by Ivy. Each purpose maps 1:1
// to a caller-configured configuration name when one was supplied;
// otherwise the purpose reuses a shared "default" configuration that is
// resolved exactly once per call.
type IvyStrategy struct {
	Probe    ports.ProbePort
	Resolver ports.DependencyResolverPort
	Diag     ports.DiagnosticsPort
}

func NewIvyStrategy(probe ports.ProbePort, resolver ports.DependencyResolverPort, diag ports.DiagnosticsPort) IvyStrategy {
	return IvyStrategy{Probe: probe, Resolver: resolver, Diag: diag}
}

// Resolve derives the project's ExternalConfig. The default
// configuration is always resolved, since it is the fallback for every
// purpose without an explicit scope override. Per-purpose failures
// degrade to empty jar sets.
func (s IvyStrategy) Resolve(ctx context.Context, baseDir string, opts types.IvyOptions) types.ExternalConfig {
	cfg := types.NewExternalConfig()
	cfg.SourceRoots = s.Probe.ExistingOf(baseDir, sourceRootCandidates)

	defaultJars := s.confJars(ctx, baseDir, opts.IvyFile, types.DefaultIvyScope)
	cfg.CompileDepJars = s.jarsForPurpose(ctx, baseDir, opts, types.PurposeCompile, defaultJars)
	cfg.RuntimeDepJars = s.jarsForPurpose(ctx, baseDir, opts, types.PurposeRuntime, defaultJars)
	cfg.TestDepJars = s.jarsForPurpose(ctx, baseDir, opts, types.PurposeTest, defaultJars)
	return cfg
}

func (s IvyStrategy) jarsForPurpose(ctx context.Context, baseDir string, opts types.IvyOptions, purpose types.Purpose, defaultJars []string) []string {
	assertValidPurpose(ctx, purpose)
	scope, ok := opts.ScopeFor(purpose)
	if !ok {
		return defaultJars
	}
	return s.confJars(ctx, baseDir, opts.IvyFile, scope)
}

func (s IvyStrategy) confJars(ctx context.Context, baseDir, ivyFile, scope string) []string {
	s.Diag.Info(ctx, fmt.Sprintf("Resolving Ivy dependencies for configuration %q...", scope))
	files, err := s.Resolver.ResolveDependencies(ctx, ports.ResolveRequest{
		BaseDir:    baseDir,
		Descriptor: ivyFile,
		Scopes:     []string{scope},
	})
	if err != nil {
		s.Diag.Error(ctx, fmt.Sprintf("Failed to resolve Ivy configuration %q", scope), err)
		return []string{}
	}
	return s.Probe.Canonical(files)
}
