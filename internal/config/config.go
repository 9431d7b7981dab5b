package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mad-scientist-star/barones-site/internal/dateutil"
	"github.com/mad-scientist-star/barones-site/internal/fileutil"
	"github.com/mad-scientist-star/barones-site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName is the directory name searched under the user config directory.
const AppName = "barones-site"

// Field length limits.
const (
	MaxNameLength        = 100
	MaxTaglineLength     = 200
	MaxDescriptionLength = 300
	MaxURLLength         = 2048
	MaxCopyrightLength   = 300
	MaxYearLength        = 50
	MaxStyleNameLength   = 50
	MaxAddrLength        = 255
)

// Supported enum values.
var (
	ExportFormats = []string{"pdf", "png"}
	PageSizes     = []string{"letter", "a4", "legal"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"console", "json"}
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config holds all configuration for building and serving the site.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Assets AssetsConfig `yaml:"assets"`
	Style  StyleConfig  `yaml:"style"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// SiteConfig is the identity shown in the header and footer.
type SiteConfig struct {
	Name          string `yaml:"name"`
	Tagline       string `yaml:"tagline"`
	Description   string `yaml:"description"`
	RepositoryURL string `yaml:"repositoryURL"`
	Copyright     string `yaml:"copyright"` // "{year}" is replaced by Year
	Year          string `yaml:"year"`      // literal, "auto", "auto:FORMAT" or "since:YYYY"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// StyleConfig selects the stylesheet and colours.
type StyleConfig struct {
	Name      string `yaml:"name"`      // Name of style in internal/assets/styles/
	Accent    string `yaml:"accent"`    // Hex colour overriding the style's accent
	Highlight string `yaml:"highlight"` // Chroma style for install commands
}

// OutputConfig defines where the static bundle is written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// ServerConfig defines the HTTP server.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"readTimeout"`
	WriteTimeout    string `yaml:"writeTimeout"`
	ShutdownTimeout string `yaml:"shutdownTimeout"`
}

// ExportConfig defines snapshot export options.
type ExportConfig struct {
	Format   string `yaml:"format"`   // "pdf" or "png"
	PageSize string `yaml:"pageSize"` // PDF only
	Width    int    `yaml:"width"`    // viewport width in CSS pixels
	Timeout  string `yaml:"timeout"`
}

// LogConfig defines server logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Validate checks field lengths, enums and formats.
// Called automatically by LoadConfig, but available for callers that
// build or override a Config by hand.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"site.name", c.Site.Name, MaxNameLength},
		{"site.tagline", c.Site.Tagline, MaxTaglineLength},
		{"site.description", c.Site.Description, MaxDescriptionLength},
		{"site.repositoryURL", c.Site.RepositoryURL, MaxURLLength},
		{"site.copyright", c.Site.Copyright, MaxCopyrightLength},
		{"site.year", c.Site.Year, MaxYearLength},
		{"style.name", c.Style.Name, MaxStyleNameLength},
		{"style.highlight", c.Style.Highlight, MaxStyleNameLength},
		{"server.addr", c.Server.Addr, MaxAddrLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Site.RepositoryURL != "" && !fileutil.IsURL(c.Site.RepositoryURL) {
		return fmt.Errorf("%w: site.repositoryURL must be an http(s) URL, got %q", ErrInvalidValue, c.Site.RepositoryURL)
	}
	if err := dateutil.Validate(c.Site.Year); err != nil {
		return fmt.Errorf("%w: site.year: %v", ErrInvalidValue, err)
	}
	if c.Style.Accent != "" && !hexColorPattern.MatchString(c.Style.Accent) {
		return fmt.Errorf("%w: style.accent must be a hex colour like #2563eb, got %q", ErrInvalidValue, c.Style.Accent)
	}
	if c.Server.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
			return fmt.Errorf("%w: server.addr: %v", ErrInvalidValue, err)
		}
	}

	durations := []struct {
		field string
		value string
	}{
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
		{"server.shutdownTimeout", c.Server.ShutdownTimeout},
		{"export.timeout", c.Export.Timeout},
	}
	for _, d := range durations {
		if _, err := parseDuration(d.field, d.value); err != nil {
			return err
		}
	}

	if err := validateEnum("export.format", c.Export.Format, ExportFormats); err != nil {
		return err
	}
	if err := validateEnum("export.pageSize", c.Export.PageSize, PageSizes); err != nil {
		return err
	}
	if c.Export.Width < 0 || c.Export.Width > 4096 {
		return fmt.Errorf("%w: export.width must be between 0 and 4096, got %d", ErrInvalidValue, c.Export.Width)
	}
	if err := validateEnum("log.level", c.Log.Level, LogLevels); err != nil {
		return err
	}
	return validateEnum("log.format", c.Log.Format, LogFormats)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, case-insensitively.
func validateEnum(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %s, got %q", ErrInvalidValue, fieldName, strings.Join(allowed, ", "), value)
}

func parseDuration(fieldName, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s must be a positive duration like 30s, got %q", ErrInvalidValue, fieldName, value)
	}
	return d, nil
}

// Duration returns a validated duration field, or fallback when unset.
func Duration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:          "Barones Free Space Cleaner",
			Tagline:       "Secure Data Deletion for Linux",
			Description:   "Open source data deletion tool",
			RepositoryURL: "https://github.com/Mad-scientist-star/Barones-Free-Space-Cleaner",
			Copyright:     "© {year} Barones Free Space Cleaner. Open source software.",
			Year:          "auto:YYYY",
		},
		Style:  StyleConfig{Name: "default", Highlight: "github"},
		Output: OutputConfig{Dir: "public"},
		Server: ServerConfig{
			Addr:            "localhost:8080",
			ReadTimeout:     "10s",
			WriteTimeout:    "30s",
			ShutdownTimeout: "10s",
		},
		Export: ExportConfig{Format: "pdf", PageSize: "letter", Width: 1280, Timeout: "30s"},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
