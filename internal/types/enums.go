package types

// BuildSystem identifies which build tool's conventions govern a project.
type BuildSystem string

const (
	BuildSystemMaven BuildSystem = "maven"
	BuildSystemIvy   BuildSystem = "ivy"
	BuildSystemSbt   BuildSystem = "sbt"
)

// Purpose is the logical reason a set of dependency jars is needed.
type Purpose string

const (
	PurposeCompile Purpose = "compile"
	PurposeRuntime Purpose = "runtime"
	PurposeTest    Purpose = "test"
)

// DefaultIvyScope is the configuration every purpose falls back to when
// no explicit scope name was supplied for an Ivy project.
const DefaultIvyScope = "default"
