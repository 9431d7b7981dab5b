package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid command-line arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags are shared by build, serve and export.
type commonFlags struct {
	config    string
	assetPath string
	style     string
	accent    string
	quiet     bool
	verbose   bool
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common commonFlags
	output string
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common    commonFlags
	addr      string
	logLevel  string
	logFormat string
}

// exportFlags holds flags for the export command.
type exportFlags struct {
	common   commonFlags
	output   string
	logo     int
	format   string
	pageSize string
	width    int
	timeout  string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding embedded assets")
	fs.StringVarP(&f.style, "style", "s", "", "style name or CSS file path")
	fs.StringVar(&f.accent, "accent", "", "accent color (#rgb or #rrggbb)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// parseFlags parses args into fs. It returns help=true when -h was given.
func parseFlags(fs *flag.FlagSet, args []string) (help bool, err error) {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return false, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return false, nil
}

func parseBuildFlags(args []string) (*buildFlags, bool, error) {
	f := &buildFlags{}
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	help, err := parseFlags(fs, args)
	return f, help, err
}

func parseServeFlags(args []string) (*serveFlags, bool, error) {
	f := &serveFlags{}
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: console, json")
	help, err := parseFlags(fs, args)
	return f, help, err
}

func parseExportFlags(args []string) (*exportFlags, bool, error) {
	f := &exportFlags{}
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default barones-site.<format>)")
	fs.IntVarP(&f.logo, "logo", "l", 0, "logo id to select before capturing")
	fs.StringVarP(&f.format, "format", "f", "", "snapshot format: pdf, png")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "PDF page size: letter, a4, legal")
	fs.IntVar(&f.width, "width", 0, "PNG viewport width in pixels")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "snapshot timeout (e.g., 30s, 2m)")
	help, err := parseFlags(fs, args)
	return f, help, err
}
