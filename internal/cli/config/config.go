package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vuejs/vue-cli/internal/template"
)

const DefaultPath = "~/.config/vue/config.yaml"

type Config struct {
	// OfficialOrg is the organisation official templates are fetched from.
	OfficialOrg string `yaml:"official_org"`
	// BranchNotice shows which branch to use for Vue 1.x when an official template is used without a branch.
	BranchNotice bool `yaml:"branch_notice"`
	NoColor      bool `yaml:"no_color"`

	// path is the file path config is read from.
	path string
}

func Default() *Config {
	return &Config{OfficialOrg: template.DefaultOfficialOrg}
}

// NewFromFile reads the config from the file at path. A missing file results in the default config.
func NewFromFile(path string) (*Config, error) {
	path = ExpandHomeDir(path)
	c := Default()
	c.path = path

	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("check file permissions '%s': %w", path, err)
	}

	if err = c.Read(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) Read() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("read config file '%s': %w", c.path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file '%s': %s", c.path, yaml.FormatError(err, false, true))
	}
	if c.OfficialOrg == "" {
		c.OfficialOrg = template.DefaultOfficialOrg
	}

	return nil
}

func (c *Config) Save() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config directory '%s': %w", dir, err)
	}

	f, err := os.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("write config file '%s': %w", c.path, err)
	}

	encoder := yaml.NewEncoder(f, yaml.Indent(2))
	if err = encoder.Encode(c); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode config file '%s': %w", c.path, err)
	}
	return f.Close()
}

// TemplateOptions returns the template resolution options derived from the config.
func (c *Config) TemplateOptions() template.Options {
	return template.Options{
		OfficialOrg:  c.OfficialOrg,
		BranchNotice: c.BranchNotice,
	}
}

// ExpandHomeDir replaces a leading "~" in path with the current user's home directory.
func ExpandHomeDir(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
