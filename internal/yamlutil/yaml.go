// Package yamlutil is the one YAML decoder behind the brand, platform and
// page catalogs and the config file. Decoding is strict and size-capped.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps a YAML document at 1 MiB.
const MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes data into v and rejects keys v has no field for,
// so a misspelled catalog key fails instead of silently vanishing.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, MaxInputSize)
}

func decode(data []byte, v any, limit int) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > limit:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), limit)
	case v == nil:
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// FormatError renders a decode error with the offending source line when
// goccy/go-yaml can point at one.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return yaml.FormatError(err, false, true)
}
