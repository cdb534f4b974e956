package app

import (
	"github.com/delexi/ensime/internal/adapters"
	"github.com/delexi/ensime/internal/ports"
)

// Service wires the build-system strategies to their production
// collaborators. Every field can be swapped for a fake in tests.
type Service struct {
	Probe         ports.ProbePort
	MavenResolver ports.DependencyResolverPort
	IvyResolver   ports.DependencyResolverPort
	Props         ports.BuildPropertiesPort
	Diag          ports.DiagnosticsPort
}

func NewService() Service {
	return Service{
		Probe:         adapters.NewFilesystemProbe(),
		MavenResolver: adapters.NewMavenCommandResolver(),
		IvyResolver:   adapters.NewIvyCommandResolver(),
		Props:         adapters.NewBuildPropertiesAdapter(),
		Diag:          adapters.NewZerologDiagnostics(),
	}
}
