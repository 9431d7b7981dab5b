package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver == nil {
			t.Fatal("NewAssetResolver() returned nil")
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_EmbeddedOnly(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("loads embedded style", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got == "" {
			t.Error("LoadStyle() returned empty content")
		}
	})

	t.Run("returns error for nonexistent style", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("nonexistent-xyz")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("loads embedded logo", func(t *testing.T) {
		t.Parallel()

		if _, err := resolver.LoadLogo("logo_concept_3.svg"); err != nil {
			t.Errorf("LoadLogo() error = %v", err)
		}
	})
}

func TestAssetResolver_CustomFirst(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "styles/default.css", "body { color: hotpink; }")
	writeAsset(t, tmpDir, "logos/logo_concept_1.svg", "<svg>custom</svg>")
	writeAsset(t, tmpDir, "content/brand.yaml", "assets: []\n")

	resolver, err := NewAssetResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name string
		load func() (string, error)
		want string
	}{
		{
			name: "custom style overrides embedded",
			load: func() (string, error) { return resolver.LoadStyle(DefaultStyleName) },
			want: "hotpink",
		},
		{
			name: "custom logo overrides embedded",
			load: func() (string, error) {
				b, err := resolver.LoadLogo("logo_concept_1.svg")
				return string(b), err
			},
			want: "custom",
		},
		{
			name: "custom content overrides embedded",
			load: func() (string, error) {
				b, err := resolver.LoadContent(BrandCatalogName)
				return string(b), err
			},
			want: "assets: []",
		},
		{
			name: "missing custom logo falls back to embedded",
			load: func() (string, error) {
				b, err := resolver.LoadLogo("logo_concept_2.svg")
				return string(b), err
			},
			want: "<svg",
		},
		{
			name: "missing custom template falls back to embedded",
			load: func() (string, error) { return resolver.LoadTemplate(PageTemplateName) },
			want: `{{define "logo-grid"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load()
			if err != nil {
				t.Fatalf("load error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("load = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestAssetResolver_NoFallbackOnValidationError(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	_, err = resolver.LoadLogo("../logo_concept_1.svg")
	if !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadLogo() error = %v, want ErrInvalidAssetName", err)
	}
}

func TestAssetResolver_NoFallbackOnReadError(t *testing.T) {
	t.Parallel()

	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "styles/default.css", "body {}")
	if err := os.Chmod(filepath.Join(tmpDir, "styles", "default.css"), 0000); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	resolver, err := NewAssetResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	_, err = resolver.LoadStyle(DefaultStyleName)
	if !errors.Is(err, ErrAssetRead) {
		t.Errorf("LoadStyle() error = %v, want ErrAssetRead", err)
	}
}

func TestNotFoundErrors(t *testing.T) {
	t.Parallel()

	kinds := []error{ErrStyleNotFound, ErrTemplateNotFound, ErrLogoNotFound, ErrContentNotFound}
	for i, err := range kinds {
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%v does not match ErrNotFound", err)
		}
		for j, other := range kinds {
			if i != j && errors.Is(err, other) {
				t.Errorf("%v matches %v", err, other)
			}
		}
	}
	for _, err := range []error{ErrInvalidAssetName, ErrAssetRead, ErrPathTraversal} {
		if errors.Is(err, ErrNotFound) {
			t.Errorf("%v should not match ErrNotFound", err)
		}
	}
}
