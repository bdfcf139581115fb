package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vuejs/vue-cli/internal/cli"
	"github.com/vuejs/vue-cli/internal/cli/config"
	"github.com/vuejs/vue-cli/internal/log"
	"github.com/vuejs/vue-cli/internal/version"
)

type cliContextKey struct{}

type globalOptions struct {
	configPath string
	noColor    bool
}

func main() {
	cobra.CheckErr(NewRootCommand().Execute())
}

func NewRootCommand() *cobra.Command {
	opts := globalOptions{}
	cmd := &cobra.Command{
		Use:           "vue",
		Short:         "Scaffold Vue.js projects from templates.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.InitLoggerFromEnv(opts.noColor)

			vuecli, err := cli.New(opts.configPath, cmd.OutOrStdout(), opts.noColor)
			if err != nil {
				return fmt.Errorf("initialize CLI: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, vuecli))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath,
		"Path to the vue configuration file.")
	_ = cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output.")

	cmd.AddCommand(NewInitCommand())
	return cmd
}
