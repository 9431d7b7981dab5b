package assets

import "errors"

// ErrNotFound matches every missing-asset error below, so callers can
// test for "absent" without listing asset kinds.
var ErrNotFound = errors.New("asset not found")

// Missing assets, one per kind. Each matches ErrNotFound.
var (
	ErrStyleNotFound    = notFound("style not found")
	ErrTemplateNotFound = notFound("template not found")
	ErrLogoNotFound     = notFound("logo not found")
	ErrContentNotFound  = notFound("content not found")
)

// Rejected names and unreadable files.
var (
	// ErrInvalidAssetName is returned for names with separators,
	// traversal sequences or unexpected characters.
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid base path")
	ErrPathTraversal    = errors.New("path traversal detected")
	ErrAssetRead        = errors.New("failed to read asset")
)

type missingError struct{ msg string }

func notFound(msg string) error { return &missingError{msg: msg} }

func (e *missingError) Error() string { return e.msg }

func (e *missingError) Unwrap() error { return ErrNotFound }
