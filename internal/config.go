package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the YAML config file. Pointer fields tell "unset" from zero.
type FileConfig struct {
	LogLevel      string   `yaml:"log_level"`
	LogFile       string   `yaml:"log_file"`
	MaxLineLength *int     `yaml:"max_line_length"`
	MaxOpenDirs   *int     `yaml:"max_open_dirs"`
	VCSMarkers    []string `yaml:"vcs_markers"`
	Archives      *bool    `yaml:"archives"`
}

// LoadOptions starts from DefaultSearchOptions and applies the config file at path.
// An empty path or a missing file yields the defaults; a malformed file is an error.
func LoadOptions(path string) (SearchOptions, error) {
	opts := DefaultSearchOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return opts, fmt.Errorf("failed to parse config file: %w", err)
	}
	fc.apply(&opts)
	return opts, nil
}

func (fc FileConfig) apply(opts *SearchOptions) {
	if fc.LogLevel != "" {
		opts.LogLevel = fc.LogLevel
	}
	if fc.LogFile != "" {
		opts.LogFile = fc.LogFile
	}
	if fc.MaxLineLength != nil {
		opts.MaxLineLength = *fc.MaxLineLength
	}
	if fc.MaxOpenDirs != nil {
		opts.MaxOpenDirs = *fc.MaxOpenDirs
	}
	// an explicit empty list disables VCS exclusion
	if fc.VCSMarkers != nil {
		opts.VCSMarkers = fc.VCSMarkers
	}
	if fc.Archives != nil {
		opts.Archives = *fc.Archives
	}
}
