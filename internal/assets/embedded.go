package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

//go:embed logos/*
var logos embed.FS

//go:embed content/*
var content embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(data), nil
}

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(data), nil
}

// LoadLogo loads a logo image from embedded assets by file name.
func (e *EmbeddedLoader) LoadLogo(file string) ([]byte, error) {
	if err := ValidateLogoFile(file); err != nil {
		return nil, err
	}

	data, err := logos.ReadFile("logos/" + file)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrLogoNotFound, file)
	}

	return data, nil
}

// LoadContent loads a YAML content file from embedded assets by name.
func (e *EmbeddedLoader) LoadContent(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	data, err := content.ReadFile("content/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrContentNotFound, name)
	}

	return data, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)

// EmbeddedStyles returns the names of the built-in styles, sorted.
func EmbeddedStyles() []string {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".css"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
