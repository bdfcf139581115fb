package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vuejs/vue-cli/internal/cli"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init TEMPLATE [PROJECT_NAME]",
		Short: "Generate a new project from a template.",
		Long: `Generate a new project from a template.

TEMPLATE is the name of an official template (webpack), a GitHub repository (owner/repo),
optionally with a branch (webpack#1.0), or a path to a local template directory (./my-template).
If PROJECT_NAME is omitted or '.', the project is generated in the current directory.`,
		Example: `  # Create a new project with an official template.
  vue init webpack my-project

  # Create a new project straight from a GitHub template.
  vue init username/repo my-project`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vuecli := cmd.Context().Value(cliContextKey{}).(*cli.CLI)

			var name string
			if len(args) > 1 {
				name = args[1]
			}
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get current directory: %w", err)
			}

			_, err = vuecli.Init(args[0], name, cwd)
			return err
		},
	}
	return cmd
}
