package cli

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/config"
	"github.com/lyraproj/objx/merge"
	"github.com/lyraproj/objx/objx"
	"github.com/spf13/cobra"
)

var helpTemplate = `Description:
  {{rpad .Long 10}}

Usage:{{if .Runnable}}{{if .HasAvailableFlags}}
  {{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if .HasExample }}

Examples:
  {{ .Example }}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}
`

var (
	cmdOpts  objx.CommandOptions
	logLevel string
)

// NewCommand creates the objx Command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objx [<target> [<source> ...]]",
		Short: `Objx - Merge records read from YAML, JSON, and TOML files`,
		Long: `Objx - Merge the top level entries of records read from YAML, JSON, and TOML files.
    The first file is the target and the remaining files are merged into it from left to right.
    Without arguments, the target and sources are taken from the merge plan in ` + config.FileName,
		Example: `  objx --strategy augment target.yaml defaults.yaml
  objx --render-as json --source 'conf.d/**/*.yaml' base.yaml
  objx --var region=eu-west-1 --var replicas:3 base.toml`,
		Version:       getVersion().String(),
		SilenceErrors: true,
		PreRun:        initialize,
		RunE:          cmdMerge}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug`)
	flags.StringVar(&cmdOpts.Strategy, `strategy`, ``,
		strings.Join(merge.StrategyNames(), `/`)+`: the merge strategy. Overrides the strategy of the merge plan`)
	flags.StringVar(&cmdOpts.ConfigPath, `config`, ``,
		`path to the merge plan. Overrides <current directory>/`+config.FileName)
	flags.StringVar(&cmdOpts.RenderAs, `render-as`, ``,
		`s/json/yaml: Specify the output format of the results; s means plain text`)
	flags.StringArrayVar(&cmdOpts.SourcePatterns, `source`, nil,
		`glob pattern for source files to merge after the sources given as arguments. Supports '**'`)
	flags.StringArrayVar(&cmdOpts.Variables, `var`, nil,
		`a key:value or key=value where value is a YAML literal. All variables form one source that is merged last`)
	flags.BoolVar(&cmdOpts.Explain, `explain`, false,
		`Explain which source supplied each entry and which entries were rejected by the strategy`)
	flags.BoolVar(&cmdOpts.Clone, `clone`, false,
		`Merge into a clone of the target rather than into the target itself`)

	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `objx`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func cmdMerge(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return objx.MergeAndRender(&cmdOpts, args, cmd.OutOrStdout())
}
