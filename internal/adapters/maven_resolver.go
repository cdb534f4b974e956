package adapters

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/delexi/ensime/internal/ports"
	"github.com/delexi/ensime/internal/shared"
)

// MavenCommandResolver resolves dependencies by running the Maven
// dependency plugin's build-classpath goal. The requested scope set is
// mapped onto Maven's includeScope lattice: a set containing "test"
// covers everything, one containing "runtime" covers compile+runtime,
// anything else covers compile+provided+system.
type MavenCommandResolver struct {
	// Command is the Maven executable, "mvn" when empty.
	Command string
}

func NewMavenCommandResolver() MavenCommandResolver {
	return MavenCommandResolver{}
}

func (r MavenCommandResolver) ResolveDependencies(ctx context.Context, req ports.ResolveRequest) ([]string, error) {
	if strings.TrimSpace(req.BaseDir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("maven resolver requires a base directory")
	}
	outFile, err := os.CreateTemp("", "ensime-classpath-*.txt")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create classpath output file").
			WithCause(err)
	}
	outPath := outFile.Name()
	_ = outFile.Close()
	defer os.Remove(outPath)

	args := []string{
		"-q",
		"-DincludeScope=" + includeScopeFor(req.Scopes),
		"-Dmdep.outputFile=" + outPath,
		"dependency:build-classpath",
	}
	if req.Descriptor != "" {
		args = append([]string{"-f", req.Descriptor}, args...)
	}
	cmd := exec.CommandContext(ctx, r.command(), args...)
	cmd.Dir = req.BaseDir
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("maven dependency resolution failed").
			WithCause(shared.CommandError(output, err))
	}
	return readClasspathFile(outPath)
}

func (r MavenCommandResolver) command() string {
	if r.Command != "" {
		return r.Command
	}
	return "mvn"
}

func includeScopeFor(scopes []string) string {
	set := map[string]struct{}{}
	for _, scope := range scopes {
		set[scope] = struct{}{}
	}
	if _, ok := set["test"]; ok {
		return "test"
	}
	if _, ok := set["runtime"]; ok {
		return "runtime"
	}
	return "compile"
}

// readClasspathFile parses a classpath written by a build tool: entries
// separated by the OS path-list separator or newlines.
func readClasspathFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read classpath output file").
			WithCause(err)
	}
	split := func(r rune) bool {
		return r == filepath.ListSeparator || r == '\n' || r == '\r'
	}
	entries := []string{}
	for _, entry := range strings.FieldsFunc(string(data), split) {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries, nil
}

var _ ports.DependencyResolverPort = MavenCommandResolver{}
