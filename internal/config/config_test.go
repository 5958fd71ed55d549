package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-pdfgen/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads full config from explicit path", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
converter:
  executable: /opt/pdfgen/bin/pdfgen
  licenseServer: license.internal:9000
  licenseType: site
  licenseServerTimeout: 30
output:
  defaultDir: /var/pdf
options:
  maxPages: 100
  zoomFactor: 1.5
  remoteContent: true
  underlays:
    - watermark.pdf
  imports:
    - header.html
    - footer.html
`)

		cfg, err := config.LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Converter.Executable != "/opt/pdfgen/bin/pdfgen" {
			t.Errorf("Executable = %q", cfg.Converter.Executable)
		}
		if cfg.Converter.LicenseServer != "license.internal:9000" {
			t.Errorf("LicenseServer = %q", cfg.Converter.LicenseServer)
		}
		if cfg.Converter.LicenseServerTimeout != 30 {
			t.Errorf("LicenseServerTimeout = %d", cfg.Converter.LicenseServerTimeout)
		}
		if cfg.Output.DefaultDir != "/var/pdf" {
			t.Errorf("DefaultDir = %q", cfg.Output.DefaultDir)
		}
		if cfg.Options.MaxPages != 100 {
			t.Errorf("MaxPages = %d", cfg.Options.MaxPages)
		}
		if cfg.Options.ZoomFactor != 1.5 {
			t.Errorf("ZoomFactor = %g", cfg.Options.ZoomFactor)
		}
		if !cfg.Options.RemoteContent {
			t.Error("RemoteContent = false")
		}
		if len(cfg.Options.Underlays) != 1 || cfg.Options.Underlays[0] != "watermark.pdf" {
			t.Errorf("Underlays = %v", cfg.Options.Underlays)
		}
		if len(cfg.Options.Imports) != 2 {
			t.Errorf("Imports = %v", cfg.Options.Imports)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig("")
		if !errors.Is(err, config.ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "bogus: true\n")
		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("negative maxPages rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "options:\n  maxPages: -1\n")
		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrInvalidMaxPages) {
			t.Errorf("error = %v, want ErrInvalidMaxPages", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*config.Config) {},
		},
		{
			name:    "negative zoom",
			mutate:  func(c *config.Config) { c.Options.ZoomFactor = -0.5 },
			wantErr: config.ErrInvalidZoom,
		},
		{
			name:    "negative license server timeout",
			mutate:  func(c *config.Config) { c.Converter.LicenseServerTimeout = -1 },
			wantErr: config.ErrInvalidTimeout,
		},
		{
			name:    "negative max pages",
			mutate:  func(c *config.Config) { c.Options.MaxPages = -5 },
			wantErr: config.ErrInvalidMaxPages,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
