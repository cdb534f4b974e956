package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/delexi/ensime/internal/adapters"
	"github.com/delexi/ensime/internal/app"
	"github.com/delexi/ensime/internal/types"
)

type resolveOptions struct {
	Dir             string
	BuildSystem     string
	Format          string
	IvyFile         string
	IvyCompileScope string
	IvyRuntimeScope string
	IvyTestScope    string
	ScalaVersion    string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve source roots and dependency jars for a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "Project root directory")
	cmd.Flags().StringVar(&opts.BuildSystem, "build-system", "auto", "Build system (auto|maven|ivy|sbt)")
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "Output format (yaml|json)")
	cmd.Flags().StringVar(&opts.IvyFile, "ivy-file", "", "Explicit ivy descriptor file")
	cmd.Flags().StringVar(&opts.IvyCompileScope, "ivy-compile-scope", "", "Ivy configuration for the compile purpose")
	cmd.Flags().StringVar(&opts.IvyRuntimeScope, "ivy-runtime-scope", "", "Ivy configuration for the runtime purpose")
	cmd.Flags().StringVar(&opts.IvyTestScope, "ivy-test-scope", "", "Ivy configuration for the test purpose")
	cmd.Flags().StringVar(&opts.ScalaVersion, "scala-version", "", "Fallback Scala version for sbt projects")

	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("build_system", cmd.Flags().Lookup("build-system"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("ivy_file", cmd.Flags().Lookup("ivy-file"))
	_ = viper.BindPFlag("ivy_compile_scope", cmd.Flags().Lookup("ivy-compile-scope"))
	_ = viper.BindPFlag("ivy_runtime_scope", cmd.Flags().Lookup("ivy-runtime-scope"))
	_ = viper.BindPFlag("ivy_test_scope", cmd.Flags().Lookup("ivy-test-scope"))
	_ = viper.BindPFlag("scala_version", cmd.Flags().Lookup("scala-version"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	ctx = log.Logger.WithContext(ctx)
	service := app.NewService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		Dir:         resolveString(cmd, opts.Dir, "dir", "dir"),
		BuildSystem: resolveString(cmd, opts.BuildSystem, "build_system", "build-system"),
		Ivy: types.IvyOptions{
			IvyFile:      resolveString(cmd, opts.IvyFile, "ivy_file", "ivy-file"),
			CompileScope: resolveString(cmd, opts.IvyCompileScope, "ivy_compile_scope", "ivy-compile-scope"),
			RuntimeScope: resolveString(cmd, opts.IvyRuntimeScope, "ivy_runtime_scope", "ivy-runtime-scope"),
			TestScope:    resolveString(cmd, opts.IvyTestScope, "ivy_test_scope", "ivy-test-scope"),
		},
		Sbt: types.SbtOptions{
			DefaultScalaVersion: resolveString(cmd, opts.ScalaVersion, "scala_version", "scala-version"),
		},
	})
	if err != nil {
		return err
	}
	return writeConfig(result.Config, resolveString(cmd, opts.Format, "format", "format"))
}

func writeConfig(cfg types.ExternalConfig, format string) error {
	writer := adapters.NewConfigWriter()
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "yaml":
		return writer.WriteYAML(os.Stdout, cfg)
	case "json":
		return writer.WriteJSON(os.Stdout, cfg)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format: %s", format))
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
