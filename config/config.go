// Package config contains the code to load and resolve the objx merge plan
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/merge"
	"gopkg.in/yaml.v3"
)

// FileName is the default file name for the merge plan.
const FileName = `objx.yaml`

// Version is the only merge plan version understood by this package.
const Version = 1

// Config is a merge plan. It names a target file, a list of source file patterns, the strategy used
// to merge the sources into the target, and how to render the result.
type Config struct {
	Version  int      `yaml:"version"`
	Strategy string   `yaml:"strategy,omitempty"`
	Target   string   `yaml:"target,omitempty"`
	Sources  []string `yaml:"sources,omitempty"`
	RenderAs string   `yaml:"render_as,omitempty"`

	root string
	path string
}

// New returns a default Config rooted at the given directory.
func New(root string) *Config {
	return &Config{Version: Version, Strategy: api.StrategyExtend, RenderAs: `yaml`, root: root}
}

// Load reads the Config from the given path. If the path does not exist, the default config rooted at
// the directory of the path is returned.
func Load(configPath string) (*Config, error) {
	cfg := New(filepath.Dir(configPath))
	content, err := ioutil.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err = yaml.Unmarshal(content, cfg); err != nil {
		return nil, err
	}
	if cfg.Version != Version {
		return nil, api.Error(api.UnsupportedVersion, issue.H{`path`: configPath, `version`: cfg.Version})
	}
	if cfg.Strategy == `` {
		cfg.Strategy = api.StrategyExtend
	}
	if cfg.RenderAs == `` {
		cfg.RenderAs = `yaml`
	}
	cfg.path = configPath
	return cfg, nil
}

// Path returns the path that the Config was loaded from, or an empty string for a default Config.
func (c *Config) Path() string {
	return c.path
}

// Root returns the directory that relative paths of the Config are resolved against.
func (c *Config) Root() string {
	return c.root
}

// Exists returns true if the Config was loaded from a file.
func (c *Config) Exists() bool {
	return c.path != ``
}

// ResolvedTarget returns the target path resolved against the root, or an empty string if no target
// has been set.
func (c *Config) ResolvedTarget() string {
	if c.Target == `` {
		return ``
	}
	return c.resolve(c.Target)
}

// ResolvedSources returns the source patterns resolved against the root.
func (c *Config) ResolvedSources() []string {
	rs := make([]string, len(c.Sources))
	for i, s := range c.Sources {
		rs[i] = c.resolve(s)
	}
	return rs
}

// MergeStrategy returns the strategy named by the Config. A panic is raised if the name is unknown.
func (c *Config) MergeStrategy() api.Strategy {
	return merge.GetStrategy(c.Strategy)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.root == `` {
		return path
	}
	return filepath.Join(c.root, path)
}
