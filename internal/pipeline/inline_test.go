package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func fakeImages(name string) ([]byte, string, error) {
	if name == "mark.svg" {
		return []byte("<svg/>"), "image/svg+xml", nil
	}
	return nil, "", errors.New("not found")
}

func TestInlineImages(t *testing.T) {
	t.Parallel()

	// base64("<svg/>")
	const inlined = `src="data:image/svg+xml;base64,PHN2Zy8+"`

	tests := []struct {
		name         string
		html         string
		prefix       string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "fragment image inlined",
			html:         `<img src="/logos/mark.svg" alt="mark">`,
			prefix:       "/logos/",
			wantContains: []string{inlined, `alt="mark"`},
		},
		{
			name:         "document keeps doctype",
			html:         `<!DOCTYPE html><html><head></head><body><img src="logos/mark.svg"></body></html>`,
			prefix:       "logos/",
			wantContains: []string{"<!DOCTYPE html>", inlined},
		},
		{
			name:         "other prefixes untouched",
			html:         `<img src="https://example.com/mark.svg">`,
			prefix:       "/logos/",
			wantContains: []string{`src="https://example.com/mark.svg"`},
		},
		{
			name:         "unknown image keeps src",
			html:         `<img src="/logos/missing.svg">`,
			prefix:       "/logos/",
			wantContains: []string{`src="/logos/missing.svg"`},
		},
		{
			name:         "links are not images",
			html:         `<a href="/logos/mark.svg">mark</a>`,
			prefix:       "/logos/",
			wantContains: []string{`href="/logos/mark.svg"`},
			wantExcludes: []string{"data:"},
		},
		{
			name:         "empty prefix unchanged",
			html:         `<img src="/logos/mark.svg">`,
			prefix:       "",
			wantContains: []string{`src="/logos/mark.svg"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := InlineImages(tt.html, tt.prefix, fakeImages)
			if err != nil {
				t.Fatalf("InlineImages() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("InlineImages() = %q, want to contain %q", got, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("InlineImages() = %q, should not contain %q", got, exclude)
				}
			}
		})
	}
}
