package adapters

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/delexi/ensime/internal/ports"
	"github.com/delexi/ensime/internal/shared"
)

// IvyCommandResolver resolves dependencies by running the Ivy
// standalone command line with the requested configurations and reading
// back the cache classpath it writes.
type IvyCommandResolver struct {
	// Command is the Ivy executable, "ivy" when empty.
	Command string
}

func NewIvyCommandResolver() IvyCommandResolver {
	return IvyCommandResolver{}
}

func (r IvyCommandResolver) ResolveDependencies(ctx context.Context, req ports.ResolveRequest) ([]string, error) {
	if strings.TrimSpace(req.BaseDir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("ivy resolver requires a base directory")
	}
	if len(req.Scopes) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("ivy resolver requires at least one configuration")
	}
	outFile, err := os.CreateTemp("", "ensime-cachepath-*.txt")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cachepath output file").
			WithCause(err)
	}
	outPath := outFile.Name()
	_ = outFile.Close()
	defer os.Remove(outPath)

	args := []string{
		"-confs", strings.Join(req.Scopes, ","),
		"-cachepath", outPath,
	}
	if req.Descriptor != "" {
		args = append(args, "-ivy", req.Descriptor)
	}
	cmd := exec.CommandContext(ctx, r.command(), args...)
	cmd.Dir = req.BaseDir
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("ivy dependency resolution failed").
			WithCause(shared.CommandError(output, err))
	}
	return readClasspathFile(outPath)
}

func (r IvyCommandResolver) command() string {
	if r.Command != "" {
		return r.Command
	}
	return "ivy"
}

var _ ports.DependencyResolverPort = IvyCommandResolver{}
