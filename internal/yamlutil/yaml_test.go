package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testTarget struct {
	Name  string   `yaml:"name"`
	Count int      `yaml:"count"`
	Tags  []string `yaml:"tags"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		dest    any
		wantErr error
		anyErr  bool
	}{
		{name: "known fields", data: "name: deb\ncount: 3\ntags: [a, b]", dest: &testTarget{}},
		{name: "unknown field", data: "name: deb\nextra: true", dest: &testTarget{}, anyErr: true},
		{name: "empty data", data: "", dest: &testTarget{}, wantErr: ErrNilData},
		{name: "nil destination", data: "name: deb", dest: nil, wantErr: ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := UnmarshalStrict([]byte(tt.data), tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.anyErr:
				if err == nil || !strings.HasPrefix(err.Error(), "yamlutil:") {
					t.Fatalf("UnmarshalStrict() error = %v, want yamlutil error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
			}
			got := tt.dest.(*testTarget)
			if got.Name != "deb" || got.Count != 3 || len(got.Tags) != 2 {
				t.Errorf("decoded %+v", got)
			}
		})
	}
}

func TestDecode_Limit(t *testing.T) {
	t.Parallel()

	err := decode([]byte("name: far-too-long"), &testTarget{}, 8)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("decode() error = %v, want ErrInputTooLarge", err)
	}
	if err := decode([]byte("name: ok"), &testTarget{}, 8); err != nil {
		t.Errorf("decode() at limit = %v", err)
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	if got := FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}

	err := UnmarshalStrict([]byte("name: [unclosed"), &testTarget{})
	if err == nil {
		t.Fatal("expected syntax error")
	}
	if got := FormatError(err); got == "" {
		t.Error("FormatError() returned empty string for syntax error")
	}
}
