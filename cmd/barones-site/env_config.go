package main

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mad-scientist-star/barones-site/internal/config"
)

// envPrefix namespaces every environment variable the CLI reads.
const envPrefix = "BARONES_"

// envConfig holds configuration from environment variables.
// Empty fields leave the config file value in place.
type envConfig struct {
	ConfigPath string `env:"CONFIG"`
	AssetPath  string `env:"ASSET_PATH"`
	Style      string `env:"STYLE"`
	Accent     string `env:"ACCENT"`
	OutputDir  string `env:"OUTPUT_DIR"`
	Addr       string `env:"ADDR"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	Format     string `env:"EXPORT_FORMAT"`
	PageSize   string `env:"PAGE_SIZE"`
	Timeout    string `env:"TIMEOUT"`
	Year       string `env:"YEAR"`
}

// loadEnvConfig reads BARONES_* variables from environ.
func loadEnvConfig(environ []string) (*envConfig, error) {
	var cfg envConfig
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      envPrefix,
		Environment: toEnvMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: parse env: %v", config.ErrInvalidValue, err)
	}
	return &cfg, nil
}

// knownEnvVars lists the variables envConfig reads, derived from its tags.
func knownEnvVars() map[string]bool {
	known := make(map[string]bool)
	t := reflect.TypeOf(envConfig{})
	for i := range t.NumField() {
		if tag := t.Field(i).Tag.Get("env"); tag != "" {
			known[envPrefix+tag] = true
		}
	}
	return known
}

// warnUnknownEnvVars warns about BARONES_* variables nothing reads.
// Helps catch typos like BARONES_ACCENT_COLOR instead of BARONES_ACCENT.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	known := knownEnvVars()
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !known[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides cfg with every variable that is set.
// CLI flags are applied afterwards and win.
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Assets.BasePath, e.AssetPath)
	set(&cfg.Style.Name, e.Style)
	set(&cfg.Style.Accent, e.Accent)
	set(&cfg.Output.Dir, e.OutputDir)
	set(&cfg.Server.Addr, e.Addr)
	set(&cfg.Log.Level, e.LogLevel)
	set(&cfg.Log.Format, e.LogFormat)
	set(&cfg.Export.Format, e.Format)
	set(&cfg.Export.PageSize, e.PageSize)
	set(&cfg.Export.Timeout, e.Timeout)
	set(&cfg.Site.Year, e.Year)
}

func toEnvMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
