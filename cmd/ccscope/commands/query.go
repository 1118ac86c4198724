package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/ccscope/internal/core/domain"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the recorded build targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := c.app.Targets(queryOptions(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

// compileCommand is one entry of a compilation database.
type compileCommand struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Arguments []string `json:"arguments"`
}

func (c *CLI) newUnitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the recorded compile units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			units, err := c.app.CompileUnits(queryOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				db := make([]compileCommand, 0, len(units))
				for _, u := range units {
					db = append(db, toCompileCommand(u))
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(db)
			}

			for _, u := range units {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", u.Source, u.Dir, strings.Join(u.Flags, " "))
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print a compile_commands.json compilation database")
	return cmd
}

func toCompileCommand(u domain.CompileUnit) compileCommand {
	args := make([]string, 0, len(u.Flags)+3)
	args = append(args, "cc")
	args = append(args, u.Flags...)
	args = append(args, "-c", u.Source)
	return compileCommand{Directory: u.Dir, File: u.Source, Arguments: args}
}

func (c *CLI) newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List the mirrored preprocessed files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			withHash, _ := cmd.Flags().GetBool("hash")
			files, err := c.app.PreprocessedFiles(queryOptions(cmd), withHash)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range files {
				if withHash {
					_, _ = fmt.Fprintf(out, "%016x  %s\n", f.Hash, f.Path)
					continue
				}
				_, _ = fmt.Fprintln(out, f.Path)
			}
			return nil
		},
	}
	cmd.Flags().Bool("hash", false, "Print the content hash of each file")
	return cmd
}
