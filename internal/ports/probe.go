package ports

// ProbePort answers existence questions about the filesystem and hands
// back canonical absolute paths (symlinks resolved, no relative
// segments) so results compare reliably for equality.
type ProbePort interface {
	// ExistingOf checks each candidate relative to baseDir and returns
	// the canonical forms of those that exist. Missing candidates are
	// silently dropped.
	ExistingOf(baseDir string, relative []string) []string

	// Expand recursively walks each existing root and collects every
	// regular file whose base name satisfies match. Non-existent roots
	// are skipped; duplicates from overlapping roots collapse.
	Expand(roots []string, match func(name string) bool) []string

	// Canonical maps paths to their canonical forms, dropping any that
	// no longer exist.
	Canonical(paths []string) []string
}

// BuildPropertiesPort loads key/value pairs from a Java-style
// properties file.
type BuildPropertiesPort interface {
	Load(path string) (map[string]string, error)
}
