package app

import "github.com/delexi/ensime/internal/types"

// ResolveRequest drives one project-config resolution. BuildSystem may
// be empty to request auto-detection.
type ResolveRequest struct {
	Dir         string
	BuildSystem string
	Ivy         types.IvyOptions
	Sbt         types.SbtOptions
}

// ResolveResult pairs the derived config with the build system that
// produced it.
type ResolveResult struct {
	BuildSystem types.BuildSystem
	Config      types.ExternalConfig
}
