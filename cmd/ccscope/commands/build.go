package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ccscope/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [--] [command...]",
		Short: "Run a build command and record its compile units and targets",
		Long: "Run a build command with the toolchain shadowed by ccscope.\n" +
			"Without a command, the command saved for the feature is run again.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := queryOptions(cmd)
			dir, _ := cmd.Flags().GetString("dir")
			compiler, _ := cmd.Flags().GetString("compiler")
			linker, _ := cmd.Flags().GetString("linker")
			logLevel, _ := cmd.Flags().GetString("log-level")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Command:     args,
				Dir:         dir,
				ProjectRoot: query.ProjectRoot,
				Feature:     query.Feature,
				Compiler:    compiler,
				Linker:      linker,
				LogLevel:    logLevel,
			})
		},
	}
	// Everything after the first argument belongs to the build command.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringP("dir", "d", "", "Directory to run the build command in")
	cmd.Flags().String("compiler", "", "Compiler program name, replacing gcc, clang and cc")
	cmd.Flags().String("linker", "", "Linker program name, replacing the ld family")
	cmd.Flags().String("log-level", "", "Write a shim log at this level (debug, info, warn, error)")
	return cmd
}
