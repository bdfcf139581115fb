package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vuejs/vue-cli/internal/cli/config"
	"github.com/vuejs/vue-cli/internal/notice"
	"github.com/vuejs/vue-cli/internal/template"
)

type CLI struct {
	config  *config.Config
	out     io.Writer
	printer *notice.Printer
}

// New creates a CLI that reads its config from configPath and writes to out.
// noColor disables colour output in addition to the no_color config option.
func New(configPath string, out io.Writer, noColor bool) (*CLI, error) {
	cfg, err := config.NewFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read vue config: %w", err)
	}

	var opts []notice.Option
	if noColor || cfg.NoColor {
		opts = append(opts, notice.WithNoColor())
	}
	return &CLI{
		config:  cfg,
		out:     out,
		printer: notice.NewPrinter(out, opts...),
	}, nil
}

func (cli *CLI) Config() *config.Config {
	return cli.config
}

// Init resolves the template reference and prints the notice that applies to it. Nothing is generated
// if the template is deprecated, otherwise the resolved source and project are reported.
func (cli *CLI) Init(ref, rawName, cwd string) (template.Plan, error) {
	plan, err := template.Resolve(ref, rawName, cwd, cli.config.TemplateOptions())
	if err != nil {
		return plan, fmt.Errorf("resolve template: %w", err)
	}

	switch plan.Notice {
	case template.NoticeV2SuffixDeprecated:
		cli.printer.V2SuffixDeprecated(plan.Template, plan.NoticeName)
	case template.NoticeV2BranchDefault:
		cli.printer.V2BranchIsNowDefault(plan.Template, plan.NoticeName)
	}
	if plan.Halt {
		slog.Debug("Template is deprecated, skipping generation.", "template", plan.Template)
		return plan, nil
	}

	fmt.Fprintf(cli.out, "Template source: %s (%s)\n", plan.Source, plan.Kind)
	if plan.InPlace {
		fmt.Fprintf(cli.out, "Project: %s (in the current directory)\n", plan.ProjectName)
	} else {
		fmt.Fprintf(cli.out, "Project: %s\n", plan.ProjectName)
	}
	return plan, nil
}
