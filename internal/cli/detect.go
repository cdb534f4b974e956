package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/delexi/ensime/internal/app"
)

type detectOptions struct {
	Dir string
}

func newDetectCommand() *cobra.Command {
	opts := detectOptions{}
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect which build system manages a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := app.NewService()
			buildSystem, err := service.Detect(resolveString(cmd, opts.Dir, "dir", "dir"))
			if err != nil {
				return err
			}
			fmt.Println(buildSystem)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "Project root directory")
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	return cmd
}
