package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/delexi/ensime/internal/shared"
)

func TestExistingOfReturnsOnlyExistingCanonicalPaths(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "src", "main", "scala"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "src", "test", "java"), 0o755))

	probe := NewFilesystemProbe()
	candidates := []string{"src/main/scala", "src/main/java", "src/test/scala", "src/test/java"}

	got := probe.ExistingOf(base, candidates)
	require.Len(t, got, 2)
	for _, path := range got {
		require.True(t, filepath.IsAbs(path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}

	// Re-probing the same candidates against the canonical base yields
	// the same set.
	canonBase, err := filepath.EvalSymlinks(base)
	require.NoError(t, err)
	again := probe.ExistingOf(canonBase, candidates)
	if diff := cmp.Diff(got, again); diff != "" {
		t.Fatalf("probe is not idempotent (-first +again):\n%s", diff)
	}
}

func TestExistingOfResolvesParentSegments(t *testing.T) {
	parent := t.TempDir()
	sub := filepath.Join(parent, "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(parent, "project"), 0o755))
	require.NoError(t, os.MkdirAll(sub, 0o755))

	probe := NewFilesystemProbe()
	got := probe.ExistingOf(sub, []string{"../project"})
	require.Len(t, got, 1)
	require.NotContains(t, got[0], "..")
}

func TestExpandCollectsArchivesAtAnyDepth(t *testing.T) {
	base := t.TempDir()
	write := func(rel string) string {
		path := filepath.Join(base, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		return path
	}
	write("lib/a.jar")
	write("lib/nested/deep/b.jar")
	write("lib/nested/c.zip")
	write("lib/readme.md")
	write("lib/nested/notes.txt")

	probe := NewFilesystemProbe()
	got := probe.Expand([]string{filepath.Join(base, "lib")}, shared.IsArchive)
	require.Len(t, got, 3)
	for _, path := range got {
		require.True(t, shared.IsArchive(path))
	}
}

func TestExpandSkipsMissingRootsAndCollapsesOverlap(t *testing.T) {
	base := t.TempDir()
	jar := filepath.Join(base, "lib", "a.jar")
	require.NoError(t, os.MkdirAll(filepath.Dir(jar), 0o755))
	require.NoError(t, os.WriteFile(jar, []byte("x"), 0o644))

	probe := NewFilesystemProbe()
	roots := []string{
		filepath.Join(base, "does-not-exist"),
		filepath.Join(base, "lib"),
		base, // overlaps the lib root
	}
	got := probe.Expand(roots, shared.IsArchive)
	require.Len(t, got, 1)

	empty := probe.Expand([]string{filepath.Join(base, "missing")}, shared.IsArchive)
	require.Empty(t, empty)
	require.NotNil(t, empty)
}

func TestCanonicalDropsMissingPaths(t *testing.T) {
	base := t.TempDir()
	jar := filepath.Join(base, "a.jar")
	require.NoError(t, os.WriteFile(jar, []byte("x"), 0o644))

	probe := NewFilesystemProbe()
	got := probe.Canonical([]string{jar, jar, filepath.Join(base, "gone.jar")})
	require.Len(t, got, 1)
}
