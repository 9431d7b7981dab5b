package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	site "github.com/mad-scientist-star/barones-site"
	"github.com/mad-scientist-star/barones-site/internal/config"
	"github.com/mad-scientist-star/barones-site/internal/fileutil"
	"github.com/mad-scientist-star/barones-site/internal/hints"
	"github.com/mad-scientist-star/barones-site/internal/logging"
	"github.com/mad-scientist-star/barones-site/internal/server"
)

// ErrWriteOutput indicates the export file could not be written.
var ErrWriteOutput = errors.New("failed to write output")

// reporter prints human-readable progress to stderr.
type reporter struct {
	w       io.Writer
	quiet   bool
	verbose bool
}

func newReporter(w io.Writer, f commonFlags) *reporter {
	return &reporter{w: w, quiet: f.quiet, verbose: f.verbose && !f.quiet}
}

func (r *reporter) Infof(format string, args ...any) {
	if !r.quiet {
		fmt.Fprintf(r.w, format+"\n", args...)
	}
}

func (r *reporter) Debugf(format string, args ...any) {
	if r.verbose {
		fmt.Fprintf(r.w, format+"\n", args...)
	}
}

// loadConfig resolves configuration: defaults, then the config file, then
// BARONES_* variables, then the common flags.
func loadConfig(f commonFlags, env *Environment) (*config.Config, error) {
	envCfg, err := loadEnvConfig(env.Environ())
	if err != nil {
		return nil, err
	}

	name := f.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
	}

	applyEnvConfig(envCfg, cfg)

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Assets.BasePath, f.assetPath)
	set(&cfg.Style.Name, f.style)
	set(&cfg.Style.Accent, f.accent)
	return cfg, nil
}

// newBuilder creates a builder from the merged configuration.
func newBuilder(cfg *config.Config, env *Environment) (*site.Builder, error) {
	b, err := site.NewBuilder(
		site.WithAssetPath(cfg.Assets.BasePath),
		site.WithStyle(cfg.Style.Name),
		site.WithAccent(cfg.Style.Accent),
		site.WithHighlightStyle(cfg.Style.Highlight),
		site.WithSite(site.Site{
			Name:          cfg.Site.Name,
			Tagline:       cfg.Site.Tagline,
			Description:   cfg.Site.Description,
			RepositoryURL: cfg.Site.RepositoryURL,
			Copyright:     cfg.Site.Copyright,
			Year:          cfg.Site.Year,
		}),
		site.WithTimeout(config.Duration(cfg.Export.Timeout, 30*time.Second)),
		site.WithClock(env.Now),
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, help, err := parseBuildFlags(args)
	if help {
		printBuildUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}
	log := newReporter(env.Stderr, flags.common)

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	b, err := newBuilder(cfg, env)
	if err != nil {
		return err
	}
	defer b.Close()

	start := env.Now()
	written, err := b.Bundle(ctx, cfg.Output.Dir)
	for _, rel := range written {
		log.Debugf("wrote %s", filepath.Join(cfg.Output.Dir, filepath.FromSlash(rel)))
	}
	if err != nil {
		if errors.Is(err, site.ErrBundleWrite) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	log.Infof("Built %d files in %s (%s)", len(written), cfg.Output.Dir, env.Now().Sub(start).Round(time.Millisecond))
	return nil
}

func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, help, err := parseServeFlags(args)
	if help {
		printServeUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if flags.common.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.common.quiet {
		cfg.Log.Level = "error"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	b, err := newBuilder(cfg, env)
	if err != nil {
		return err
	}
	defer b.Close()

	logger := logging.New(env.Stderr, logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	srv := server.New(server.Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     config.Duration(cfg.Server.ReadTimeout, server.DefaultReadTimeout),
		WriteTimeout:    config.Duration(cfg.Server.WriteTimeout, server.DefaultWriteTimeout),
		ShutdownTimeout: config.Duration(cfg.Server.ShutdownTimeout, server.DefaultShutdownTimeout),
	}, siteSource{b}, &logger)

	if err := srv.Run(ctx); err != nil {
		if errors.Is(err, server.ErrListen) {
			return fmt.Errorf("%w%s", err, hints.ForAddressInUse(cfg.Server.Addr))
		}
		return err
	}
	return nil
}

func runExport(ctx context.Context, args []string, env *Environment) error {
	flags, help, err := parseExportFlags(args)
	if help {
		printExportUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}
	log := newReporter(env.Stderr, flags.common)

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	if flags.format != "" {
		cfg.Export.Format = flags.format
	}
	if flags.pageSize != "" {
		cfg.Export.PageSize = flags.pageSize
	}
	if flags.width != 0 {
		cfg.Export.Width = flags.width
	}
	if flags.timeout != "" {
		cfg.Export.Timeout = flags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	output := flags.output
	if output == "" {
		output = "barones-site." + cfg.Export.Format
	}

	b, err := newBuilder(cfg, env)
	if err != nil {
		return err
	}
	defer b.Close()

	sess, err := b.NewSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if flags.logo != 0 {
		if err := sess.Select(flags.logo); err != nil {
			log.Infof("warning: %v; keeping logo %d%s", err, sess.Current().ID, hints.ForInvalidSelection(len(b.Assets())))
		}
	}
	log.Debugf("capturing %s with %s", cfg.Export.Format, sess.Current().Label)

	ctx, cancel := context.WithTimeout(ctx, config.Duration(cfg.Export.Timeout, 30*time.Second))
	defer cancel()

	data, err := b.Snapshot(ctx, sess, &site.SnapshotOptions{
		Format:   cfg.Export.Format,
		PageSize: cfg.Export.PageSize,
		Width:    cfg.Export.Width,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w%s", err, hints.ForTimeout())
		}
		return err
	}

	dir, name := filepath.Split(output)
	if dir == "" {
		dir = "."
	}
	if err := fileutil.WriteFile(dir, name, data); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	log.Infof("Created %s", output)
	return nil
}

// siteSource adapts a Builder to the server's session source.
type siteSource struct {
	b *site.Builder
}

func (s siteSource) NewSession(ctx context.Context) (server.Session, error) {
	sess, err := s.b.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s siteSource) LoadLogo(file string) ([]byte, error) {
	return s.b.LoadLogo(file)
}
