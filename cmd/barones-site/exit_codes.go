package main

import (
	"errors"
	"os"

	site "github.com/mad-scientist-star/barones-site"
	"github.com/mad-scientist-star/barones-site/internal/config"
	"github.com/mad-scientist-star/barones-site/internal/server"
)

// Exit codes for the barones-site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, address in use
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, site.ErrBrowserConnect) ||
		errors.Is(err, site.ErrPageCreate) ||
		errors.Is(err, site.ErrPageLoad) ||
		errors.Is(err, site.ErrSnapshot) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, site.ErrBundleWrite) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, server.ErrListen) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, site.ErrInvalidAssetPath) ||
		errors.Is(err, site.ErrStyleNotFound) ||
		errors.Is(err, site.ErrInvalidAccent) ||
		errors.Is(err, site.ErrInvalidSnapshot) ||
		errors.Is(err, site.ErrMissingAsset) ||
		errors.Is(err, site.ErrInvalidCatalog) ||
		errors.Is(err, site.ErrInvalidPlatform) ||
		errors.Is(err, site.ErrInvalidContent) ||
		errors.Is(err, site.ErrTemplateParse) {
		return ExitUsage
	}

	return ExitGeneral
}
