package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Site.Name != "Barones Free Space Cleaner" {
		t.Errorf("Site.Name = %q", cfg.Site.Name)
	}
	if cfg.Style.Name != "default" {
		t.Errorf("Style.Name = %q, want default", cfg.Style.Name)
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if !strings.Contains(cfg.Site.Copyright, "{year}") {
		t.Errorf("Site.Copyright = %q, want {year} placeholder", cfg.Site.Copyright)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", value: "", maxLength: 10},
		{name: "value at limit is valid", value: "1234567890", maxLength: 10},
		{name: "value over limit", value: "12345678901", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("validateFieldLength() error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("validateFieldLength() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "name too long",
			mutate:  func(c *Config) { c.Site.Name = strings.Repeat("x", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "repository not a URL",
			mutate:  func(c *Config) { c.Site.RepositoryURL = "github.com/x" },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "year range",
			mutate: func(c *Config) { c.Site.Year = "since:2024" },
		},
		{
			name:    "malformed auto year",
			mutate:  func(c *Config) { c.Site.Year = "auto:[YYYY" },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "short hex accent",
			mutate: func(c *Config) { c.Style.Accent = "#fa0" },
		},
		{
			name:    "named accent rejected",
			mutate:  func(c *Config) { c.Style.Accent = "blue" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "accent injection rejected",
			mutate:  func(c *Config) { c.Style.Accent = "#fff;}</style>" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "addr without port",
			mutate:  func(c *Config) { c.Server.Addr = "localhost" },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "addr with empty host",
			mutate: func(c *Config) { c.Server.Addr = ":9000" },
		},
		{
			name:    "bad duration",
			mutate:  func(c *Config) { c.Server.ReadTimeout = "ten seconds" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative duration",
			mutate:  func(c *Config) { c.Export.Timeout = "-5s" },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "format case-insensitive",
			mutate: func(c *Config) { c.Export.Format = "PNG" },
		},
		{
			name:    "unknown export format",
			mutate:  func(c *Config) { c.Export.Format = "gif" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown page size",
			mutate:  func(c *Config) { c.Export.PageSize = "a3" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "width too large",
			mutate:  func(c *Config) { c.Export.Width = 10000 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "logfmt" },
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  time.Duration
	}{
		{"15s", 15 * time.Second},
		{"", time.Minute},
		{"nope", time.Minute},
		{"0s", time.Minute},
	}
	for _, tt := range tests {
		if got := Duration(tt.value, time.Minute); got != tt.want {
			t.Errorf("Duration(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("file path keeps defaults for missing fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		content := `site:
  tagline: Wipe free space properly
style:
  accent: "#16a34a"
server:
  addr: ":9000"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Site.Tagline != "Wipe free space properly" {
			t.Errorf("Site.Tagline = %q", cfg.Site.Tagline)
		}
		if cfg.Site.Name != "Barones Free Space Cleaner" {
			t.Errorf("Site.Name = %q, want default", cfg.Site.Name)
		}
		if cfg.Style.Accent != "#16a34a" {
			t.Errorf("Style.Accent = %q", cfg.Style.Accent)
		}
		if cfg.Style.Name != "default" {
			t.Errorf("Style.Name = %q, want default", cfg.Style.Name)
		}
		if cfg.Server.Addr != ":9000" {
			t.Errorf("Server.Addr = %q", cfg.Server.Addr)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		if err := os.WriteFile(path, []byte("site:\n  slogan: x\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		if err := os.WriteFile(path, []byte("export:\n  format: gif\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidValue", err)
		}
	})
}

// Not parallel: changes the working directory.
func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(filepath.Join(dir, "staging.yml"), []byte("output:\n  dir: dist\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig("staging")
	if err != nil {
		t.Fatalf("LoadConfig(staging) error = %v", err)
	}
	if cfg.Output.Dir != "dist" {
		t.Errorf("Output.Dir = %q, want dist", cfg.Output.Dir)
	}

	_, err = LoadConfig("production")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig(production) error = %v, want ErrConfigNotFound", err)
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("site")
	if len(paths) < 2 || paths[0] != "site.yaml" || paths[1] != "site.yml" {
		t.Fatalf("SearchPaths() = %v", paths)
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, filepath.Join(AppName, "site")) {
			t.Errorf("user path %q not under %s", p, AppName)
		}
	}
}
