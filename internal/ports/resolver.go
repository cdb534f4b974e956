package ports

import "context"

// ResolveRequest describes one call to an external dependency resolver.
type ResolveRequest struct {
	// BaseDir is the project root the resolver runs against.
	BaseDir string

	// Descriptor is the explicit build descriptor (pom.xml or ivy file)
	// to resolve from. Empty leaves discovery to the resolver itself.
	Descriptor string

	// Scopes are the named configuration scopes, in the order the build
	// system defines them, whose artifacts should be returned.
	Scopes []string
}

// DependencyResolverPort runs a build tool's dependency resolution and
// returns local paths to the resolved artifacts. Implementations may
// block for the full duration of a network fetch; they must return an
// error rather than panic on malformed or missing descriptors.
type DependencyResolverPort interface {
	ResolveDependencies(ctx context.Context, req ResolveRequest) ([]string, error)
}
