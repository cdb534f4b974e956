package types

// ExternalConfig is the normalized view of a project as derived from its
// build system: where the sources live, which jars satisfy each purpose,
// and where compiled output lands. Every path in every field existed on
// disk at the moment of construction; the value is never mutated after
// a resolve call returns it.
type ExternalConfig struct {
	// ProjectName is empty when the build metadata does not carry one.
	ProjectName string `json:"project_name,omitempty" yaml:"project_name,omitempty"`

	// SourceRoots are canonical absolute directories matching known
	// source-layout conventions.
	SourceRoots []string `json:"source_roots" yaml:"source_roots"`

	// The three dependency collections are computed independently per
	// purpose; a jar may legitimately appear in more than one. They may
	// be empty but are never nil.
	CompileDepJars []string `json:"compile_dep_jars" yaml:"compile_dep_jars"`
	RuntimeDepJars []string `json:"runtime_dep_jars" yaml:"runtime_dep_jars"`
	TestDepJars    []string `json:"test_dep_jars" yaml:"test_dep_jars"`

	// Target is the compiled-output directory, empty unless it already
	// existed at resolution time.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

// NewExternalConfig returns a config whose dependency collections are
// empty rather than nil.
func NewExternalConfig() ExternalConfig {
	return ExternalConfig{
		SourceRoots:    []string{},
		CompileDepJars: []string{},
		RuntimeDepJars: []string{},
		TestDepJars:    []string{},
	}
}

// DepJarsFor returns the dependency collection for the given purpose.
func (c ExternalConfig) DepJarsFor(purpose Purpose) []string {
	switch purpose {
	case PurposeRuntime:
		return c.RuntimeDepJars
	case PurposeTest:
		return c.TestDepJars
	default:
		return c.CompileDepJars
	}
}
