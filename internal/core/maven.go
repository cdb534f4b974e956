package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/delexi/ensime/internal/ports"
	"github.com/delexi/ensime/internal/types"
)

// MavenStrategy resolves projects laid out and described the Maven way:
// a pom.xml at the project root, conventional src/{main,test} source
// directories, and compiled output under target/classes.
type MavenStrategy struct {
	Probe    ports.ProbePort
	Resolver ports.DependencyResolverPort
	Diag     ports.DiagnosticsPort
}

func NewMavenStrategy(probe ports.ProbePort, resolver ports.DependencyResolverPort, diag ports.DiagnosticsPort) MavenStrategy {
	return MavenStrategy{Probe: probe, Resolver: resolver, Diag: diag}
}

// Resolve derives the project's ExternalConfig. A resolver failure for
// one purpose leaves that purpose's jars empty and is reported to the
// diagnostics sink; source roots, the target directory, and the other
// purposes are unaffected.
func (s MavenStrategy) Resolve(ctx context.Context, baseDir string) types.ExternalConfig {
	cfg := types.NewExternalConfig()
	cfg.SourceRoots = s.Probe.ExistingOf(baseDir, sourceRootCandidates)

	pom := filepath.Join(baseDir, "pom.xml")
	cfg.CompileDepJars = s.depJarsFor(ctx, baseDir, pom, types.PurposeCompile)
	cfg.RuntimeDepJars = s.depJarsFor(ctx, baseDir, pom, types.PurposeRuntime)
	cfg.TestDepJars = s.depJarsFor(ctx, baseDir, pom, types.PurposeTest)

	if target := s.Probe.ExistingOf(baseDir, []string{"target/classes"}); len(target) > 0 {
		cfg.Target = target[0]
	}
	return cfg
}

func (s MavenStrategy) depJarsFor(ctx context.Context, baseDir, pom string, purpose types.Purpose) []string {
	scopes := ScopesFor(ctx, types.BuildSystemMaven, purpose)
	s.Diag.Info(ctx, fmt.Sprintf("Resolving Maven dependencies for scopes [%s]...", strings.Join(scopes, ", ")))
	files, err := s.Resolver.ResolveDependencies(ctx, ports.ResolveRequest{
		BaseDir:    baseDir,
		Descriptor: pom,
		Scopes:     scopes,
	})
	if err != nil {
		s.Diag.Error(ctx, fmt.Sprintf("Failed to resolve Maven %s dependencies", purpose), err)
		return []string{}
	}
	return s.Probe.Canonical(files)
}
