package types

// IvyOptions carries the caller-supplied knobs of an Ivy project. All
// fields are optional; an empty scope means the purpose falls back to
// the "default" configuration, an empty IvyFile leaves descriptor
// discovery to the resolver.
type IvyOptions struct {
	IvyFile      string
	CompileScope string
	RuntimeScope string
	TestScope    string
}

// ScopeFor returns the explicitly configured scope for a purpose, or
// ("", false) when the purpose should use the default configuration.
func (o IvyOptions) ScopeFor(purpose Purpose) (string, bool) {
	var scope string
	switch purpose {
	case PurposeCompile:
		scope = o.CompileScope
	case PurposeRuntime:
		scope = o.RuntimeScope
	case PurposeTest:
		scope = o.TestScope
	}
	return scope, scope != ""
}

// SbtOptions carries the caller-supplied knobs of a convention-based
// sbt project.
type SbtOptions struct {
	// DefaultScalaVersion is used when build.properties omits the
	// build.scala.versions key. Empty means "2.8.0".
	DefaultScalaVersion string
}
