package site

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestBundle(t *testing.T) {
	t.Parallel()

	b, _ := newTestBuilder(t)
	dir := t.TempDir()

	written, err := b.Bundle(context.Background(), dir)
	if err != nil {
		t.Fatalf("Bundle() error = %v", err)
	}

	want := []string{IndexFile}
	for i := 1; i <= 5; i++ {
		want = append(want, VariantFile(i))
	}
	for i := 1; i <= 5; i++ {
		want = append(want, "logos/logo_concept_"+strconv.Itoa(i)+".svg")
	}
	if strings.Join(written, ",") != strings.Join(want, ",") {
		t.Errorf("Bundle() wrote %v, want %v", written, want)
	}

	read := func(rel string) string {
		t.Helper()
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			t.Fatalf("reading %s: %v", rel, err)
		}
		return string(data)
	}

	index := read(IndexFile)
	if !strings.Contains(index, `src="logos/logo_concept_1.svg"`) {
		t.Error("index.html does not show the default logo with a relative src")
	}
	if !strings.Contains(index, `href="logo-4.html"`) {
		t.Error("index.html grid does not link to variant pages")
	}

	variant := read(VariantFile(3))
	if got := strings.Count(variant, `src="logos/logo_concept_3.svg"`); got < 4 {
		t.Errorf("logo-3.html shows logo 3 %d times, want header, hero, footer and grid", got)
	}
	if !strings.Contains(variant, `aria-pressed="true" data-asset-id="3"`) {
		t.Error("logo-3.html grid does not mark entry 3 selected")
	}

	if logo := read("logos/logo_concept_2.svg"); !strings.HasPrefix(strings.TrimSpace(logo), "<svg") {
		t.Errorf("logo file content = %.40q", logo)
	}
}

func TestBundle_Cancelled(t *testing.T) {
	t.Parallel()

	b, _ := newTestBuilder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Bundle(ctx, t.TempDir())
	if err == nil {
		t.Fatal("Bundle() with cancelled context succeeded")
	}
}

func TestBundle_WriteError(t *testing.T) {
	t.Parallel()

	b, _ := newTestBuilder(t)
	file := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := b.Bundle(context.Background(), file)
	if !errors.Is(err, ErrBundleWrite) {
		t.Errorf("Bundle() error = %v, want ErrBundleWrite", err)
	}
}
