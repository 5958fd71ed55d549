// Package config loads and validates pdfgencli configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-pdfgen/internal/fileutil"
	"github.com/alnah/go-pdfgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidMaxPages = errors.New("maxPages must not be negative")
	ErrInvalidZoom     = errors.New("zoomFactor must not be negative")
	ErrInvalidTimeout  = errors.New("licenseServerTimeout must not be negative")
)

// configDirName is the subdirectory under the user config dir searched when
// a bare config name (no path separator) is given.
const configDirName = "pdfgencli"

// Config holds all configuration for the pdfgencli front-end.
type Config struct {
	Converter ConverterConfig `yaml:"converter"`
	Output    OutputConfig    `yaml:"output"`
	Options   OptionsConfig   `yaml:"options"`
}

// ConverterConfig locates and licenses the converter binary.
type ConverterConfig struct {
	Executable           string `yaml:"executable"`           // binary name or absolute path (empty = "pdfgen")
	LicenseServer        string `yaml:"licenseServer"`        // license server host:port
	LicenseType          string `yaml:"licenseType"`          // license type identifier
	LicenseServerMessage string `yaml:"licenseServerMessage"` // message sent to the license server
	LicenseServerTimeout int    `yaml:"licenseServerTimeout"` // seconds, 0 = converter default
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // default output directory (empty = input's directory)
}

// OptionsConfig carries default converter options applied to every convert
// invocation unless overridden by flags.
type OptionsConfig struct {
	MaxPages       int      `yaml:"maxPages"`       // 0 = no limit
	ZoomFactor     float64  `yaml:"zoomFactor"`     // 0 = converter default
	RemoteContent  bool     `yaml:"remoteContent"`  // allow fetching remote resources
	UseSystemProxy bool     `yaml:"useSystemProxy"` // use the system proxy settings
	DumpStaticHTML bool     `yaml:"dumpStaticHtml"` // write the post-script-execution HTML
	Underlays      []string `yaml:"underlays"`      // documents layered under each page
	Overlays       []string `yaml:"overlays"`       // documents layered over each page
	Imports        []string `yaml:"imports"`        // resources imported into the document
}

// DefaultConfig returns a config with built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a name or path.
//
// A value containing a path separator (or naming an existing file) is read
// directly; a bare name resolves to <user config dir>/pdfgencli/<name>.yaml.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) && !fileutil.FileExists(nameOrPath) {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrConfigNotFound, nameOrPath, err)
		}
		path = filepath.Join(dir, configDirName, nameOrPath+".yaml")
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks numeric bounds. String fields pass through to the
// converter untouched, so only values the encoder would render nonsensical
// are rejected here.
func (c *Config) Validate() error {
	if c.Options.MaxPages < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxPages, c.Options.MaxPages)
	}
	if c.Options.ZoomFactor < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidZoom, c.Options.ZoomFactor)
	}
	if c.Converter.LicenseServerTimeout < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTimeout, c.Converter.LicenseServerTimeout)
	}
	return nil
}
