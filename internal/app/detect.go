package app

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/delexi/ensime/internal/types"
)

// Detect determines which build system manages the project at dir by
// probing for each tool's descriptor: pom.xml for Maven, ivy.xml for
// Ivy, and sbt's build metadata (project/build.properties locally or
// one level up, or a build.sbt) for the convention-based layout.
func (s Service) Detect(dir string) (types.BuildSystem, error) {
	if len(s.Probe.ExistingOf(dir, []string{"pom.xml"})) > 0 {
		return types.BuildSystemMaven, nil
	}
	if len(s.Probe.ExistingOf(dir, []string{"ivy.xml"})) > 0 {
		return types.BuildSystemIvy, nil
	}
	sbtMarkers := []string{
		"project/build.properties",
		"../project/build.properties",
		"build.sbt",
	}
	if len(s.Probe.ExistingOf(dir, sbtMarkers)) > 0 {
		return types.BuildSystemSbt, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("no supported build system detected in %s", dir))
}
