package core

import (
	"context"
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/delexi/ensime/internal/ports"
	"github.com/delexi/ensime/internal/shared"
	"github.com/delexi/ensime/internal/types"
)

// DefaultScalaVersion is assumed when build.properties omits the
// build.scala.versions key and the caller configured no other default.
const DefaultScalaVersion = "2.8.0"

const (
	scalaVersionsKey = "build.scala.versions"
	projectNameKey   = "project.name"
)

// SbtStrategy resolves convention-based sbt projects. No external
// resolver is involved: dependency jars are discovered purely from the
// tool's directory conventions — an unmanaged lib directory, the
// version-qualified boot library directory, and one managed directory
// per configuration scope.
type SbtStrategy struct {
	Probe ports.ProbePort
	Props ports.BuildPropertiesPort
	Diag  ports.DiagnosticsPort
}

func NewSbtStrategy(probe ports.ProbePort, props ports.BuildPropertiesPort, diag ports.DiagnosticsPort) SbtStrategy {
	return SbtStrategy{Probe: probe, Props: props, Diag: diag}
}

// Resolve derives the project's ExternalConfig. A project without
// build.properties at either the project root or its parent yields a
// degraded-but-valid result: computed source roots, empty dependency
// sets, no target, no project name.
func (s SbtStrategy) Resolve(ctx context.Context, baseDir string, opts types.SbtOptions) types.ExternalConfig {
	cfg := types.NewExternalConfig()
	cfg.SourceRoots = s.Probe.ExistingOf(baseDir, sourceRootCandidates)

	propsPath, subproject, found := s.locateBuildProperties(baseDir)
	if !found {
		s.Diag.Error(ctx, "Could not locate build.properties file!", nil)
		return cfg
	}
	props, err := s.Props.Load(propsPath)
	if err != nil {
		s.Diag.Error(ctx, fmt.Sprintf("Failed to load %s", propsPath), err)
		return cfg
	}

	version := s.scalaVersion(ctx, props, opts)
	cfg.ProjectName = strings.TrimSpace(props[projectNameKey])

	cfg.CompileDepJars = s.depJarsFor(ctx, baseDir, version, subproject, types.PurposeCompile)
	cfg.RuntimeDepJars = s.depJarsFor(ctx, baseDir, version, subproject, types.PurposeRuntime)
	cfg.TestDepJars = s.depJarsFor(ctx, baseDir, version, subproject, types.PurposeTest)

	if target := s.Probe.ExistingOf(baseDir, []string{fmt.Sprintf("scala_%s/classes", version)}); len(target) > 0 {
		cfg.Target = target[0]
	}
	return cfg
}

// locateBuildProperties checks the project's own metadata location
// first; a hit one level up means this project is a subproject sharing
// its parent's metadata.
func (s SbtStrategy) locateBuildProperties(baseDir string) (path string, subproject bool, found bool) {
	if hits := s.Probe.ExistingOf(baseDir, []string{"project/build.properties"}); len(hits) > 0 {
		return hits[0], false, true
	}
	if hits := s.Probe.ExistingOf(baseDir, []string{"../project/build.properties"}); len(hits) > 0 {
		return hits[0], true, true
	}
	return "", false, false
}

func (s SbtStrategy) scalaVersion(ctx context.Context, props map[string]string, opts types.SbtOptions) string {
	version := strings.TrimSpace(props[scalaVersionsKey])
	if version == "" {
		version = strings.TrimSpace(opts.DefaultScalaVersion)
	}
	if version == "" {
		version = DefaultScalaVersion
	}
	if _, err := goversion.NewVersion(version); err != nil {
		s.Diag.Info(ctx, fmt.Sprintf("Scala version %q does not parse as a version; using it verbatim", version))
	}
	return version
}

func (s SbtStrategy) depJarsFor(ctx context.Context, baseDir, version string, subproject bool, purpose types.Purpose) []string {
	scopes := ScopesFor(ctx, types.BuildSystemSbt, purpose)
	candidates := libDirCandidates(version, subproject, scopes)
	existing := s.Probe.ExistingOf(baseDir, candidates)
	return s.Probe.Expand(existing, shared.IsArchive)
}

// libDirCandidates lists every directory that may hold jars for the
// given scope set: the unmanaged lib directory, the tool-runtime boot
// library directory (parent-relative for subprojects), and one managed
// directory per scope.
func libDirCandidates(version string, subproject bool, scopes []string) []string {
	candidates := []string{"lib"}
	boot := fmt.Sprintf("project/boot/scala-%s/lib", version)
	if subproject {
		boot = "../" + boot
	}
	candidates = append(candidates, boot)
	for _, scope := range scopes {
		candidates = append(candidates, fmt.Sprintf("lib_managed/scala_%s/%s", version, scope))
	}
	return candidates
}
