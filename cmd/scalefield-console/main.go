// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// scalefield-console is a terminal console for a hosting platform:
// deployments, projects, services, logs, webhooks, API keys, team
// members, invoices and database tables, each browsable as a filtered
// list with a sliding detail panel.
//
// Records come from a data bundle (JSON, JSONC, YAML or CBOR, with
// optional zstd or lz4 compression and age encryption) or from the
// built-in dataset. With --database the table editor lists the tables
// of a SQLite file instead. The console never modifies either: actions
// are reported in the status line and the log.
//
// When stdout is not a terminal, or with --plain, the selected page is
// printed as an aligned table instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"filippo.io/age"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/scalefield/console/lib/cli"
	"github.com/scalefield/console/lib/codec"
	"github.com/scalefield/console/lib/config"
	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/consoleui"
	"github.com/scalefield/console/lib/listview"
	"github.com/scalefield/console/lib/provider"
	"github.com/scalefield/console/lib/tui"
	"github.com/scalefield/console/lib/version"
)

func main() {
	if err := run(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitCodeFor(err))
	}
}

type flags struct {
	configPath   string
	bundle       string
	identity     string
	database     string
	page         string
	theme        string
	plain        bool
	status       string
	search       string
	watch        bool
	logFile      string
	exportBundle string
	version      bool
	help         bool
}

func run() error {
	var options flags
	flagSet := pflag.NewFlagSet("scalefield-console", pflag.ContinueOnError)
	flagSet.StringVarP(&options.configPath, "config", "c", "", "configuration file (default: $XDG_CONFIG_HOME/scalefield/console.yaml)")
	flagSet.StringVarP(&options.bundle, "bundle", "b", "", "data bundle file (.json, .jsonc, .yaml, .cbor, optionally .zst/.lz4 and .age)")
	flagSet.StringVar(&options.identity, "identity", "", "age identity file for encrypted bundles")
	flagSet.StringVar(&options.database, "database", "", "SQLite database listed by the table editor")
	flagSet.StringVarP(&options.page, "page", "p", "", "start page: overview, analytics, settings or a collection ("+kindList()+")")
	flagSet.StringVar(&options.theme, "theme", "", "color theme: auto, dark or light")
	flagSet.BoolVar(&options.plain, "plain", false, "print the page as a text table instead of starting the console")
	flagSet.StringVar(&options.status, "status", "", "initial status filter, or the analytics period (1h, 24h, 7d, 30d)")
	flagSet.StringVar(&options.search, "search", "", "initial search query")
	flagSet.BoolVarP(&options.watch, "watch", "w", false, "reload the bundle when its file changes")
	flagSet.StringVar(&options.logFile, "log-file", "", "append JSON log records to this file")
	flagSet.StringVar(&options.exportBundle, "export-bundle", "", "write the loaded data to this bundle file and exit (- prints CBOR diagnostics)")
	flagSet.BoolVar(&options.version, "version", false, "print version information")
	flagSet.BoolVarP(&options.help, "help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return cli.Validation("%v", err)
	}
	if options.help {
		printHelp(flagSet)
		return nil
	}
	if options.version {
		fmt.Println(version.Full())
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(flagSet, options)
	if err != nil {
		return err
	}

	logger := cli.NewCommandLogger(slog.LevelWarn)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, identities, err := openSource(cfg, logger)
	if err != nil {
		return err
	}

	if options.exportBundle != "" {
		return exportBundle(options.exportBundle, source.Bundle(), identities, logger)
	}

	if cfg.Database != "" {
		catalog, err := provider.OpenTableCatalog(cfg.Database, logger)
		if err != nil {
			return cli.Validation("cannot open database %s: %w", cfg.Database, err).
				WithHint("The table editor opens the database read-only; the file must exist.")
		}
		defer catalog.Close()
		source.SetTables(catalog)
	}

	if options.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlain(ctx, cfg.StartPage, source, options.status, options.search)
	}
	return runConsole(ctx, cfg, source, options)
}

func kindList() string {
	names := ""
	for index, kind := range console.Kinds {
		if index > 0 {
			names += ", "
		}
		names += string(kind)
	}
	return names
}

// loadConfig reads the configuration file and applies flag overrides.
// Flags win over SCALEFIELD_* variables, which win over the file.
func loadConfig(flagSet *pflag.FlagSet, options flags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if options.configPath != "" {
		cfg, err = config.LoadFile(options.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("%v", err)
	}

	overrides := map[string]*string{
		"bundle":   &cfg.Bundle,
		"identity": &cfg.Identity,
		"database": &cfg.Database,
		"page":     &cfg.StartPage,
		"theme":    &cfg.Theme,
		"log-file": &cfg.LogFile,
	}
	values := map[string]string{
		"bundle":   options.bundle,
		"identity": options.identity,
		"database": options.database,
		"page":     options.page,
		"theme":    options.theme,
		"log-file": options.logFile,
	}
	for name, field := range overrides {
		if flagSet.Changed(name) {
			*field = values[name]
		}
	}
	if flagSet.Changed("watch") {
		cfg.Watch = options.watch
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %v", err)
	}
	return cfg, nil
}

// openSource loads the configured bundle, or the built-in dataset
// when none is set. The identities are returned for re-encrypting an
// exported bundle.
func openSource(cfg *config.Config, logger *slog.Logger) (*provider.BundleSource, []age.Identity, error) {
	var identities []age.Identity
	if cfg.Identity != "" {
		var err error
		identities, err = provider.ReadIdentities(cfg.Identity)
		if err != nil {
			return nil, nil, cli.Validation("%v", err)
		}
	}

	if cfg.Bundle == "" {
		seed := console.Seed()
		return provider.NewStaticSource(&seed), identities, nil
	}

	source, err := provider.OpenBundle(cfg.Bundle, provider.LoadOptions{Identities: identities}, logger)
	switch {
	case err == nil:
		return source, identities, nil
	case errors.Is(err, provider.ErrNoIdentity):
		return nil, nil, cli.Validation("cannot load bundle %s: %w", cfg.Bundle, err).
			WithHint("Pass the age identity file that the bundle was encrypted to.")
	case errors.Is(err, provider.ErrUnknownFormat):
		return nil, nil, cli.Validation("cannot load bundle %s: %w", cfg.Bundle, err).
			WithHint("Bundle names end in .json, .jsonc, .yaml, .yml or .cbor, optionally followed by .zst or .lz4, then .age.")
	case errors.Is(err, os.ErrNotExist):
		return nil, nil, cli.NotFound("bundle %s does not exist", cfg.Bundle)
	default:
		return nil, nil, cli.Validation("cannot load bundle %s: %w", cfg.Bundle, err)
	}
}

// exportBundle writes the loaded data in the encoding the path's
// extensions name. "-" prints the CBOR encoding in diagnostic
// notation.
func exportBundle(path string, bundle *console.Bundle, identities []age.Identity, logger *slog.Logger) error {
	if path == "-" {
		data, err := provider.Encode(bundle, provider.FormatCBOR)
		if err != nil {
			return cli.Internal("encoding bundle: %w", err)
		}
		diagnostic, err := codec.Diagnose(data)
		if err != nil {
			return cli.Internal("diagnosing bundle: %w", err)
		}
		fmt.Println(diagnostic)
		return nil
	}

	encoding, err := provider.FormatFromPath(path)
	if err != nil {
		return cli.Validation("%v", err)
	}
	var options provider.WriteOptions
	if encoding.Encrypted {
		if len(identities) == 0 {
			return cli.Validation("encrypted export needs an age identity").
				WithHint("Pass --identity; the bundle is encrypted to its recipients.")
		}
		options.Recipients, err = provider.RecipientsFor(identities)
		if err != nil {
			return cli.Validation("%v", err)
		}
	}
	if err := provider.WriteFile(path, bundle, options); err != nil {
		return cli.Internal("writing bundle %s: %w", path, err)
	}
	logger.Info("bundle exported", "path", path, "format", encoding.String())
	return nil
}

func runPlain(ctx context.Context, route string, source *provider.BundleSource, status, search string) error {
	kind, ok := console.ParseKind(route)
	if !ok {
		return cli.Validation("--plain needs a collection page, not %q", route).
			WithHint("Pass --page with one of: " + kindList())
	}
	count, err := consoleui.WritePlain(ctx, os.Stdout, kind, source, status, search)
	if err != nil {
		return cli.Internal("%v", err)
	}
	if count == 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func runConsole(ctx context.Context, cfg *config.Config, source *provider.BundleSource, options flags) error {
	theme, _ := tui.SelectTheme(cfg.Theme, termenv.NewOutput(os.Stdout))

	// Log records go to the status line, not stderr, which would
	// corrupt the alternate screen.
	tuiHandler := consoleui.NewTUILogHandler(slog.LevelWarn)
	var fileHandler slog.Handler
	if cfg.LogFile != "" {
		handler, closer, err := cli.NewFileHandler(cfg.LogFile, slog.LevelDebug)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", cfg.LogFile, err)
		}
		defer closer.Close()
		fileHandler = handler
	}
	logger := slog.New(cli.NewFanoutHandler(tuiHandler, fileHandler))

	compress := cfg.ExportCompression == config.CompressionZstd
	app := consoleui.NewApp(consoleui.Options{
		Source: source,
		Theme:  theme,
		Timing: listview.Timing{
			EnterDelay:   cfg.EnterDelay.Std(),
			ExitDuration: cfg.ExitDuration.Std(),
		},
		PanelWidth:      cfg.PanelWidth,
		StartRoute:      cfg.StartPage,
		StartStatus:     options.status,
		StartSearch:     options.search,
		ExportDir:       cfg.ExportDir,
		CompressExports: compress,
		Config:          cfg,
		Logger:          logger,
		Context:         ctx,
	})

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	tuiHandler.SetProgram(program)

	if cfg.Watch {
		if source.Path() == "" {
			logger.Warn("--watch needs a bundle file; nothing to watch")
		} else {
			watchContext, cancel := context.WithCancel(ctx)
			defer cancel()
			_, err := provider.Watch(watchContext, source.Path(), provider.WatchOptions{Logger: logger}, func() {
				program.Send(consoleui.BundleChangedMsg{})
			})
			if err != nil {
				return cli.Transient("watching %s: %w", source.Path(), err)
			}
		}
	}

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Scalefield console: browse deployments, projects, services, logs,
webhooks, API keys, members, invoices and tables in the terminal.

Without --bundle the built-in dataset is shown. Bundles are decoded by
extension: .json, .jsonc, .yaml, .cbor, then .zst or .lz4, then .age.

Usage:
  scalefield-console [flags]

Examples:
  # Browse the built-in dataset
  scalefield-console

  # Open a bundle on the logs page, filtered to errors
  scalefield-console --bundle data.yaml --page logs --status error

  # Reload an encrypted bundle whenever it changes
  scalefield-console --bundle data.cbor.zst.age --identity key.txt --watch

  # Open the analytics page on the last seven days
  scalefield-console --page analytics --status 7d

  # Print failed deployments as text
  scalefield-console --plain --page deployments --status failed

  # List the tables of a SQLite database
  scalefield-console --database app.db --page database

Keys:
  ↑/↓ move  ⏎ open  esc close  a actions  / search  s status
  e export  n new project  p analytics period  : jump to page
  0-9 pages  q quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
