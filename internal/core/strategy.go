// Package core derives a project's effective compile/runtime/test
// dependency jars and source roots by replaying the directory and scope
// conventions of the build system that manages it. Per-purpose failures
// degrade to empty collections; a resolve call never fails as a whole.
package core

// sourceRootCandidates are the conventional source layouts probed by
// every build-system strategy, relative to the project root.
var sourceRootCandidates = []string{
	"src/main/scala",
	"src/main/java",
	"src/test/scala",
	"src/test/java",
}
