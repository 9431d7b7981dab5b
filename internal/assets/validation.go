package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateLogoFile checks that a logo reference is a bare file name with a
// supported image extension. Unlike other asset names, logos keep their
// extension, so exactly one dot is allowed and it must not lead the name.
func ValidateLogoFile(file string) error {
	if file == "" {
		return fmt.Errorf("%w: empty logo file", ErrInvalidAssetName)
	}
	if strings.ContainsAny(file, "/\\\x00") || strings.HasPrefix(file, ".") || strings.Count(file, ".") != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, file)
	}
	if _, ok := logoExtensions[extension(file)]; !ok {
		return fmt.Errorf("%w: %q has unsupported image extension", ErrInvalidAssetName, file)
	}
	return nil
}

// extension returns the lower-cased extension including the dot.
func extension(file string) string {
	idx := strings.LastIndex(file, ".")
	if idx == -1 {
		return ""
	}
	return strings.ToLower(file[idx:])
}
