package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/delexi/ensime/internal/adapters"
	"github.com/delexi/ensime/internal/ports"
)

// recordingDiag captures diagnostics so tests can assert on them
// separately from returned data.
type recordingDiag struct {
	infos  []string
	errors []string
}

func (d *recordingDiag) Info(_ context.Context, msg string) {
	d.infos = append(d.infos, msg)
}

func (d *recordingDiag) Error(_ context.Context, msg string, _ error) {
	d.errors = append(d.errors, msg)
}

// scriptedResolver returns canned artifact lists keyed by the joined
// scope set and records every request it saw.
type scriptedResolver struct {
	responses map[string][]string
	failures  map[string]error
	requests  []ports.ResolveRequest
}

func (r *scriptedResolver) ResolveDependencies(_ context.Context, req ports.ResolveRequest) ([]string, error) {
	r.requests = append(r.requests, req)
	key := strings.Join(req.Scopes, ",")
	if err, ok := r.failures[key]; ok {
		return nil, err
	}
	return r.responses[key], nil
}

func mkdirs(t *testing.T, base string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		require.NoError(t, os.MkdirAll(filepath.Join(base, rel), 0o755))
	}
}

func writeFile(t *testing.T, path string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMavenResolveHappyPath(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "src/main/scala", "src/test/java", "target/classes")
	jarA := writeFile(t, filepath.Join(base, "repo", "a.jar"), "a")
	jarB := writeFile(t, filepath.Join(base, "repo", "b.jar"), "b")

	resolver := &scriptedResolver{
		responses: map[string][]string{
			"compile,provided,system,test":         {jarA},
			"compile,provided,system,runtime":      {jarA, jarB},
			"compile,provided,system,runtime,test": {jarA, jarB},
		},
	}
	diag := &recordingDiag{}
	strategy := NewMavenStrategy(adapters.NewFilesystemProbe(), resolver, diag)

	cfg := strategy.Resolve(t.Context(), base)

	require.Len(t, cfg.SourceRoots, 2)
	for _, root := range cfg.SourceRoots {
		require.True(t, filepath.IsAbs(root))
	}
	require.Len(t, cfg.CompileDepJars, 1)
	if diff := cmp.Diff(cfg.RuntimeDepJars, cfg.TestDepJars); diff != "" {
		t.Fatalf("runtime and test jar sets should match here (-runtime +test):\n%s", diff)
	}
	require.NotEmpty(t, cfg.Target)
	require.Empty(t, cfg.ProjectName)

	// All three purposes pass the pom descriptor through.
	require.Len(t, resolver.requests, 3)
	for _, req := range resolver.requests {
		require.Equal(t, filepath.Join(base, "pom.xml"), req.Descriptor)
		require.Equal(t, base, req.BaseDir)
	}
}

func TestMavenResolveFailureIsolatedPerPurpose(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "src/main/scala", "src/test/java", "target/classes")
	jar := writeFile(t, filepath.Join(base, "repo", "a.jar"), "a")

	resolver := &scriptedResolver{
		responses: map[string][]string{
			"compile,provided,system,test":    {jar},
			"compile,provided,system,runtime": {jar},
		},
		failures: map[string]error{
			"compile,provided,system,runtime,test": os.ErrPermission,
		},
	}
	diag := &recordingDiag{}
	strategy := NewMavenStrategy(adapters.NewFilesystemProbe(), resolver, diag)

	cfg := strategy.Resolve(t.Context(), base)

	require.NotEmpty(t, cfg.CompileDepJars)
	require.NotEmpty(t, cfg.RuntimeDepJars)
	require.Empty(t, cfg.TestDepJars)
	require.NotNil(t, cfg.TestDepJars)
	require.Len(t, cfg.SourceRoots, 2)
	require.NotEmpty(t, cfg.Target)
	require.Len(t, diag.errors, 1)
	require.Contains(t, diag.errors[0], "test")
}

func TestMavenResolveDropsVanishedArtifacts(t *testing.T) {
	base := t.TempDir()
	jar := writeFile(t, filepath.Join(base, "repo", "a.jar"), "a")
	gone := filepath.Join(base, "repo", "gone.jar")

	resolver := &scriptedResolver{
		responses: map[string][]string{
			"compile,provided,system,test":         {jar, gone},
			"compile,provided,system,runtime":      {gone},
			"compile,provided,system,runtime,test": {jar},
		},
	}
	strategy := NewMavenStrategy(adapters.NewFilesystemProbe(), resolver, &recordingDiag{})

	cfg := strategy.Resolve(t.Context(), base)

	require.Len(t, cfg.CompileDepJars, 1)
	require.Empty(t, cfg.RuntimeDepJars)
	require.Len(t, cfg.TestDepJars, 1)
	require.Empty(t, cfg.Target)
}
