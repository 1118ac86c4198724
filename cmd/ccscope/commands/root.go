// Package commands implements the CLI commands of ccscope.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ccscope/internal/app"
	"go.trai.ch/ccscope/internal/build"
	"go.trai.ch/ccscope/internal/core/domain"
)

// CLI represents the command line interface for ccscope.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Targets(opts app.QueryOptions) ([]string, error)
	CompileUnits(opts app.QueryOptions) ([]domain.CompileUnit, error)
	PreprocessedFiles(opts app.QueryOptions, withHash bool) ([]app.PreprocessedFile, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ccscope",
		Short:         "Record what a C build compiles and links",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("project-root", "r", "", "Project root (defaults to the current directory)")
	rootCmd.PersistentFlags().StringP("feature", "f", domain.DefaultFeature, "Feature whose workspace is used")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newUnitsCmd())
	rootCmd.AddCommand(c.newFilesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func queryOptions(cmd *cobra.Command) app.QueryOptions {
	root, _ := cmd.Flags().GetString("project-root")
	feature, _ := cmd.Flags().GetString("feature")
	return app.QueryOptions{ProjectRoot: root, Feature: feature}
}
