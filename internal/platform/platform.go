// Package platform holds the static download targets rendered in the
// install section: one entry per Linux distribution family.
package platform

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/mad-scientist-star/barones-site/internal/yamlutil"
)

// Sentinel errors for catalog construction.
var (
	ErrInvalidTarget = errors.New("invalid platform target")
	ErrEmptyCatalog  = errors.New("platform catalog is empty")
)

// Kind tells how a target is obtained.
type Kind int

const (
	// DirectPackage is a package file downloaded from this site.
	DirectPackage Kind = iota + 1
	// ExternalRepository is a link to packaging hosted elsewhere.
	ExternalRepository
)

var kindNames = map[Kind]string{
	DirectPackage:      "direct-package",
	ExternalRepository: "external-repository",
}

// String returns the content-file spelling of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a content-file spelling back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidTarget, s)
}

// DownloadRef points at a package artifact or an external page.
type DownloadRef struct {
	URL      string `yaml:"url"`
	Filename string `yaml:"filename"`
}

// Target is one distribution family. The install command is shown as
// text and never run.
type Target struct {
	Name           string
	Description    string
	Kind           Kind
	Download       DownloadRef
	ActionLabel    string
	InstallLabel   string
	InstallCommand string
	Note           string
	Icon           string
	Accent         string
}

// External reports whether the target links out instead of downloading.
func (t Target) External() bool {
	return t.Kind == ExternalRepository
}

// Validate checks the target's fields against its kind.
func (t Target) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTarget)
	}
	if strings.TrimSpace(t.InstallCommand) == "" {
		return fmt.Errorf("%w: %s: install command is required", ErrInvalidTarget, t.Name)
	}
	if t.Download.URL == "" {
		return fmt.Errorf("%w: %s: download url is required", ErrInvalidTarget, t.Name)
	}

	switch t.Kind {
	case DirectPackage:
		if t.Download.Filename == "" {
			return fmt.Errorf("%w: %s: direct package needs a filename", ErrInvalidTarget, t.Name)
		}
		u, err := url.Parse(t.Download.URL)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTarget, t.Name, err)
		}
		if base := path.Base(u.Path); base != t.Download.Filename {
			return fmt.Errorf("%w: %s: filename %q does not match url file %q", ErrInvalidTarget, t.Name, t.Download.Filename, base)
		}
	case ExternalRepository:
		u, err := url.Parse(t.Download.URL)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s: external repository needs an absolute http(s) url", ErrInvalidTarget, t.Name)
		}
		if t.Download.Filename != "" {
			return fmt.Errorf("%w: %s: external repository has no filename", ErrInvalidTarget, t.Name)
		}
	default:
		return fmt.Errorf("%w: %s: %v", ErrInvalidTarget, t.Name, t.Kind)
	}
	return nil
}

// withDefaults fills display fields left empty in the content file.
func (t Target) withDefaults() Target {
	if t.ActionLabel == "" {
		if t.External() {
			t.ActionLabel = "View files"
		} else {
			t.ActionLabel = "Download " + path.Ext(t.Download.Filename)
		}
	}
	if t.InstallLabel == "" {
		t.InstallLabel = "Install with:"
	}
	if t.Icon == "" {
		t.Icon = "package"
	}
	return t
}

// Catalog is the ordered, immutable list of targets.
type Catalog struct {
	targets []Target
}

// NewCatalog validates targets and returns a catalog holding a copy.
func NewCatalog(targets []Target) (*Catalog, error) {
	if len(targets) == 0 {
		return nil, ErrEmptyCatalog
	}
	owned := make([]Target, 0, len(targets))
	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidTarget, t.Name)
		}
		seen[t.Name] = true
		owned = append(owned, t.withDefaults())
	}
	return &Catalog{targets: owned}, nil
}

// Targets returns the targets in display order. The slice is a copy.
func (c *Catalog) Targets() []Target {
	out := make([]Target, len(c.targets))
	copy(out, c.targets)
	return out
}

// Len returns the number of targets.
func (c *Catalog) Len() int {
	return len(c.targets)
}

// rawTarget mirrors one entry of content/platforms.yaml.
type rawTarget struct {
	Name           string      `yaml:"name"`
	Description    string      `yaml:"description"`
	Kind           string      `yaml:"kind"`
	Download       DownloadRef `yaml:"download"`
	ActionLabel    string      `yaml:"actionLabel"`
	InstallLabel   string      `yaml:"installLabel"`
	InstallCommand string      `yaml:"installCommand"`
	Note           string      `yaml:"note"`
	Icon           string      `yaml:"icon"`
	Accent         string      `yaml:"accent"`
}

type catalogFile struct {
	Targets []rawTarget `yaml:"targets"`
}

// ParseCatalog decodes a platforms content file and validates it.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yamlutil.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, yamlutil.FormatError(err))
	}

	targets := make([]Target, 0, len(file.Targets))
	for _, raw := range file.Targets {
		kind, err := ParseKind(raw.Kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", raw.Name, err)
		}
		targets = append(targets, Target{
			Name:           raw.Name,
			Description:    raw.Description,
			Kind:           kind,
			Download:       raw.Download,
			ActionLabel:    raw.ActionLabel,
			InstallLabel:   raw.InstallLabel,
			InstallCommand: raw.InstallCommand,
			Note:           raw.Note,
			Icon:           raw.Icon,
			Accent:         raw.Accent,
		})
	}
	return NewCatalog(targets)
}
