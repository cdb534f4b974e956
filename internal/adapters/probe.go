package adapters

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/delexi/ensime/internal/ports"
)

// FilesystemProbe implements ports.ProbePort on the local filesystem.
// Canonicalization resolves symlinks and relative segments, and doubles
// as the existence check: a path that cannot be canonicalized does not
// exist and is dropped.
type FilesystemProbe struct{}

func NewFilesystemProbe() FilesystemProbe {
	return FilesystemProbe{}
}

func (p FilesystemProbe) ExistingOf(baseDir string, relative []string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, rel := range relative {
		canon, err := canonicalize(filepath.Join(baseDir, rel))
		if err != nil {
			continue
		}
		if _, ok := seen[canon]; ok {
			continue
		}
		seen[canon] = struct{}{}
		out = append(out, canon)
	}
	sort.Strings(out)
	return out
}

func (p FilesystemProbe) Expand(roots []string, match func(name string) bool) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, root := range roots {
		canonRoot, err := canonicalize(root)
		if err != nil {
			continue
		}
		_ = filepath.WalkDir(canonRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !match(d.Name()) {
				return nil
			}
			canon, err := canonicalize(path)
			if err != nil {
				return nil
			}
			if _, ok := seen[canon]; !ok {
				seen[canon] = struct{}{}
				out = append(out, canon)
			}
			return nil
		})
	}
	sort.Strings(out)
	return out
}

func (p FilesystemProbe) Canonical(paths []string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, path := range paths {
		canon, err := canonicalize(path)
		if err != nil {
			continue
		}
		if _, ok := seen[canon]; !ok {
			seen[canon] = struct{}{}
			out = append(out, canon)
		}
	}
	sort.Strings(out)
	return out
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	// EvalSymlinks fails for paths that do not exist, which is exactly
	// the existence check the probe contract requires.
	return filepath.EvalSymlinks(abs)
}

var _ ports.ProbePort = FilesystemProbe{}
