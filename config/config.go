// Package config loads the optional .mdsync.yaml project file which
// tunes how the readme and the extracted docs are prepared before
// comparison.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// FileName is the per-project configuration file.
const FileName = ".mdsync.yaml"

// Config selects the readme, the documented package, and the
// transformations applied before the comparison.
type Config struct {
	// Readme is the readme path, relative to the project directory.
	Readme string `yaml:"readme"`
	// Package is the directory of the package whose docs are
	// extracted, relative to the project directory.
	Package string `yaml:"package"`
	// BuildTags select among build-constrained files during
	// extraction.
	BuildTags []string `yaml:"build_tags"`
	// Branch names the branch relative readme links resolve against.
	Branch string `yaml:"branch"`
	// Title, when set, is prepended to the docs as a level-1 heading.
	// Defaults to the last element of the module path.
	Title *string `yaml:"title"`
	// NoTitle disables title prepending altogether.
	NoTitle bool `yaml:"no_title"`
	// CodeBlockTag is assumed for untagged code blocks in the docs.
	CodeBlockTag string `yaml:"codeblock_tag"`
	// KeepSections lists readme section headings that would normally
	// be dropped (such as "Documentation") but should be kept.
	KeepSections []string `yaml:"keep_sections"`
	// DropSections lists additional level-2 readme sections to drop
	// before comparison.
	DropSections []string `yaml:"drop_sections"`
	// DisallowPrefixes lists URL prefixes forbidden in the readme,
	// typically the docs site itself.
	DisallowPrefixes []string `yaml:"disallow_prefixes"`
	// AllowRelativeLinks keeps relative readme links as they are
	// instead of resolving them against the repository.
	AllowRelativeLinks bool `yaml:"allow_relative_links"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Readme:       "README.md",
		Package:      ".",
		Branch:       "main",
		CodeBlockTag: "go",
	}
}

// Load reads dir/.mdsync.yaml, falling back to Default when the file
// does not exist. Missing fields take their default values.
func Load(dir string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	if cfg.Readme == "" {
		cfg.Readme = "README.md"
	}
	if cfg.Package == "" {
		cfg.Package = "."
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	return cfg, nil
}
