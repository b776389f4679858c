// Package objx contains the functions to use when merging records read from files, as done by the objx
// command line tool and the objx REST server.
package objx

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/config"
	"github.com/lyraproj/objx/explain"
	"github.com/lyraproj/objx/merge"
	"github.com/lyraproj/objx/provider"
	"github.com/lyraproj/objx/record"
	"gopkg.in/yaml.v3"
)

// A CommandOptions contains the options given by to the CLI merge command.
type CommandOptions struct {
	// Strategy is the name of a merge strategy. The strategy of the merge plan is used when empty.
	Strategy string

	// RenderAs is the name of the desired rendering. The rendering of the merge plan is used when empty.
	RenderAs string

	// ConfigPath is the path to the merge plan. Defaults to config.FileName in the current directory.
	ConfigPath string

	// SourcePatterns are glob patterns for source files that are merged after the sources given as
	// arguments.
	SourcePatterns []string

	// Variables are key=value or key:value entries that form one extra source, merged last.
	Variables []string

	// Explain should be set to true to render an explanation of where each entry came from instead
	// of the merged record
	Explain bool

	// Clone should be set to true to merge into a clone of the target
	Clone bool
}

// VariablesSource is the name used for the source created from CommandOptions.Variables.
const VariablesSource = `--var`

// varSplit splits on either ':' or '=' but not on '::', ':=', '=:' or '=='
var varSplit = regexp.MustCompile(`\A(.*?[^:=])[:=]([^:=].*)\z`)

// Merge merges the sources into the target using the given strategy and returns the target.
func Merge(strategy api.Strategy, target api.Record, sources []api.Record, explainer api.Explainer) api.Record {
	log := hclog.Default().Named(`objx`)
	if log.IsDebug() {
		log.Debug(`merge`, `strategy`, strategy.Name(), `sources`, len(sources))
		for i, s := range sources {
			if record.IsNil(s) {
				log.Debug(`skipping nil source`, `index`, i)
			}
		}
	}
	return strategy.Merge(target, sources, explainer)
}

// MergeAndRender merges files in accordance with the given options and arguments and renders the result on
// the given io.Writer. The first argument is the target and the remaining arguments are sources. When no
// arguments are given, the target and sources of the merge plan are used.
func MergeAndRender(opts *CommandOptions, args []string, out io.Writer) error {
	return Try(func() error {
		log := hclog.Default().Named(`objx`)

		cfgPath := opts.ConfigPath
		if cfgPath == `` {
			cfgPath = config.FileName
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cfg.Exists() {
			log.Debug(`using merge plan`, `path`, cfg.Path())
		}

		var targetPath string
		var patterns []string
		if len(args) > 0 {
			targetPath = args[0]
			patterns = args[1:]
		} else {
			targetPath = cfg.ResolvedTarget()
			patterns = cfg.ResolvedSources()
		}
		patterns = append(patterns, opts.SourcePatterns...)
		sourcePaths, err := provider.Expand(patterns)
		if err != nil {
			return err
		}
		if targetPath == `` && len(sourcePaths) == 0 && len(opts.Variables) == 0 {
			return api.Error(api.NoSources, nil)
		}

		strategyName := opts.Strategy
		if strategyName == `` {
			strategyName = cfg.Strategy
		}
		strategy := merge.GetStrategy(strategyName)

		renderAs := RenderName(cfg.RenderAs)
		if opts.RenderAs != `` {
			renderAs = RenderName(opts.RenderAs)
		}

		var target api.Record = record.New()
		if targetPath != `` {
			if target, err = provider.Load(targetPath); err != nil {
				return err
			}
		}
		if opts.Clone {
			target = merge.Clone(target)
		}

		sources, err := provider.LoadAll(sourcePaths)
		if err != nil {
			return err
		}
		names := sourcePaths
		if len(opts.Variables) > 0 {
			vars, err := ParseVariables(opts.Variables)
			if err != nil {
				return err
			}
			sources = append(sources, vars)
			names = append(names, VariablesSource)
		}

		if opts.Explain {
			ex := explain.NewExplainer(strategy.Label(), names...)
			Merge(strategy, target, sources, ex)
			_, err = io.WriteString(out, ex.String())
			return err
		}
		Render(renderAs, Merge(strategy, target, sources, nil), out)
		return nil
	})
}

// ParseVariables creates a Hash from entries in the form key=value or key:value. Each value is parsed as
// YAML so that numbers, booleans, lists, and hashes can be expressed.
func ParseVariables(vars []string) (*record.Hash, error) {
	h := record.NewWithCapacity(len(vars))
	for _, e := range vars {
		m := varSplit.FindStringSubmatch(e)
		if m == nil {
			return nil, api.Error(api.BadVariable, issue.H{`var`: e})
		}
		h.Put(strings.TrimSpace(m[1]), parseCommandLineValue(m[2]))
	}
	return h, nil
}

func parseCommandLineValue(vs string) interface{} {
	vs = strings.TrimSpace(vs)
	var v interface{}
	if err := yaml.Unmarshal([]byte(vs), &v); err != nil {
		return vs
	}
	return v
}

// Try calls the given function and recovers any issue.Reported or error that it panics with. The recovered
// value, or the error returned by the function, is returned.
func Try(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case issue.Reported:
				err = r
			case error:
				err = r
			case string:
				err = errors.New(r)
			default:
				err = fmt.Errorf(`%v`, r)
			}
		}
	}()
	return f()
}
