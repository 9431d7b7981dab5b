package platform

import (
	"errors"
	"testing"
)

func debTarget() Target {
	return Target{
		Name:           "Debian/Ubuntu",
		Kind:           DirectPackage,
		Download:       DownloadRef{URL: "/downloads/app_1.0_all.deb", Filename: "app_1.0_all.deb"},
		InstallCommand: "sudo dpkg -i app_1.0_all.deb",
	}
}

func aurTarget() Target {
	return Target{
		Name:           "Arch Linux",
		Kind:           ExternalRepository,
		Download:       DownloadRef{URL: "https://github.com/example/app/tree/main/packaging/aur"},
		InstallCommand: "yay -S app",
	}
}

func TestTarget_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Target)
		base    func() Target
		wantErr bool
	}{
		{name: "direct package", base: debTarget},
		{name: "external repository", base: aurTarget},
		{
			name:    "missing name",
			base:    debTarget,
			mutate:  func(t *Target) { t.Name = " " },
			wantErr: true,
		},
		{
			name:    "missing install command",
			base:    aurTarget,
			mutate:  func(t *Target) { t.InstallCommand = "" },
			wantErr: true,
		},
		{
			name:    "direct package without filename",
			base:    debTarget,
			mutate:  func(t *Target) { t.Download.Filename = "" },
			wantErr: true,
		},
		{
			name:    "direct package filename mismatch",
			base:    debTarget,
			mutate:  func(t *Target) { t.Download.Filename = "other.deb" },
			wantErr: true,
		},
		{
			name:    "external relative url",
			base:    aurTarget,
			mutate:  func(t *Target) { t.Download.URL = "/packaging/aur" },
			wantErr: true,
		},
		{
			name:    "external non-http scheme",
			base:    aurTarget,
			mutate:  func(t *Target) { t.Download.URL = "ftp://example.com/aur" },
			wantErr: true,
		},
		{
			name:    "external with filename",
			base:    aurTarget,
			mutate:  func(t *Target) { t.Download.Filename = "PKGBUILD" },
			wantErr: true,
		},
		{
			name:    "unknown kind",
			base:    debTarget,
			mutate:  func(t *Target) { t.Kind = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := tt.base()
			if tt.mutate != nil {
				tt.mutate(&target)
			}

			err := target.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTarget) {
					t.Errorf("Validate() error = %v, want ErrInvalidTarget", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("keeps order and fills defaults", func(t *testing.T) {
		t.Parallel()

		c, err := NewCatalog([]Target{debTarget(), aurTarget()})
		if err != nil {
			t.Fatalf("NewCatalog() error = %v", err)
		}
		got := c.Targets()
		if c.Len() != 2 || got[0].Name != "Debian/Ubuntu" || got[1].Name != "Arch Linux" {
			t.Fatalf("Targets() = %+v", got)
		}
		if got[0].ActionLabel != "Download .deb" {
			t.Errorf("direct ActionLabel = %q, want %q", got[0].ActionLabel, "Download .deb")
		}
		if got[1].ActionLabel != "View files" {
			t.Errorf("external ActionLabel = %q, want %q", got[1].ActionLabel, "View files")
		}
		if got[0].InstallLabel != "Install with:" {
			t.Errorf("InstallLabel = %q", got[0].InstallLabel)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		if _, err := NewCatalog(nil); !errors.Is(err, ErrEmptyCatalog) {
			t.Errorf("NewCatalog(nil) error = %v, want ErrEmptyCatalog", err)
		}
	})

	t.Run("duplicate names", func(t *testing.T) {
		t.Parallel()

		if _, err := NewCatalog([]Target{debTarget(), debTarget()}); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("NewCatalog() error = %v, want ErrInvalidTarget", err)
		}
	})

	t.Run("targets are copies", func(t *testing.T) {
		t.Parallel()

		c, err := NewCatalog([]Target{debTarget()})
		if err != nil {
			t.Fatalf("NewCatalog() error = %v", err)
		}
		got := c.Targets()
		got[0].InstallCommand = "rm -rf /"
		if c.Targets()[0].InstallCommand != "sudo dpkg -i app_1.0_all.deb" {
			t.Error("catalog changed through Targets()")
		}
	})
}

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		data := []byte(`targets:
  - name: Fedora/RHEL
    description: For Fedora
    kind: direct-package
    download:
      url: /downloads/app-1.0-1.noarch.rpm
      filename: app-1.0-1.noarch.rpm
    installCommand: sudo rpm -i app-1.0-1.noarch.rpm
    accent: blue
  - name: Arch Linux
    kind: external-repository
    download:
      url: https://example.com/aur
    installCommand: yay -S app
    note: Available on the AUR
`)
		c, err := ParseCatalog(data)
		if err != nil {
			t.Fatalf("ParseCatalog() error = %v", err)
		}
		got := c.Targets()
		if got[0].Kind != DirectPackage || got[1].Kind != ExternalRepository {
			t.Errorf("kinds = %v, %v", got[0].Kind, got[1].Kind)
		}
		if got[0].ActionLabel != "Download .rpm" {
			t.Errorf("ActionLabel = %q", got[0].ActionLabel)
		}
		if got[1].Note != "Available on the AUR" {
			t.Errorf("Note = %q", got[1].Note)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		data := []byte("targets:\n  - name: x\n    kind: snap\n    installCommand: snap install x\n")
		if _, err := ParseCatalog(data); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("ParseCatalog() error = %v, want ErrInvalidTarget", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		data := []byte("targets:\n  - name: x\n    checksum: abc\n")
		if _, err := ParseCatalog(data); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("ParseCatalog() error = %v, want ErrInvalidTarget", err)
		}
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{DirectPackage, "direct-package"},
		{ExternalRepository, "external-repository"},
		{Kind(9), "Kind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
