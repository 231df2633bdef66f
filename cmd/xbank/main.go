package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/vidyasagar/xbank/internal/app"
	"github.com/vidyasagar/xbank/internal/auth"
	"github.com/vidyasagar/xbank/internal/locale"
	"github.com/vidyasagar/xbank/internal/logging"
	"github.com/vidyasagar/xbank/internal/storage"
	"github.com/vidyasagar/xbank/internal/theme"
)

var (
	version = "0.1.0"
)

func main() {
	var (
		flagTheme      = pflag.String("theme", "", "color theme ("+strings.Join(theme.List(), ", ")+")")
		flagLocale     = pflag.StringP("locale", "l", "", "interface language (pt-BR, en)")
		flagMaxHistory = pflag.Int("max-history", 0, "how many screens the back stack remembers")
		flagDataDir    = pflag.String("data-dir", "", "directory for the database, log and config")
		flagLogLevel   = pflag.String("log-level", "", "log level (debug, info, warn, error)")
		flagVersion    = pflag.BoolP("version", "v", false, "show version")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "xbank - a terminal banking demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: xbank [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDemo accounts: joao@email.com, maria@email.com (password 123456)\n")
	}
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("xbank %s\n", version)
		os.Exit(0)
	}

	if err := run(runOptions{
		theme:      *flagTheme,
		locale:     *flagLocale,
		maxHistory: *flagMaxHistory,
		dataDir:    *flagDataDir,
		logLevel:   *flagLogLevel,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type runOptions struct {
	theme      string
	locale     string
	maxHistory int
	dataDir    string
	logLevel   string
}

func run(opts runOptions) error {
	dataDir, configDir := opts.dataDir, opts.dataDir
	if dataDir == "" {
		var err error
		if dataDir, err = storage.DataDir(); err != nil {
			return err
		}
		if configDir, err = storage.ConfigDir(); err != nil {
			return err
		}
	}

	cfg, err := storage.LoadConfig(configDir)
	if err != nil {
		return err
	}

	// Flags win over the config file but are not written back.
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}
	if opts.maxHistory != 0 {
		if opts.maxHistory < 1 {
			return fmt.Errorf("--max-history must be at least 1, got %d", opts.maxHistory)
		}
		cfg.MaxHistory = opts.maxHistory
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	if !theme.Set(cfg.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(theme.List(), ", "))
	}

	logger, err := logging.Open(filepath.Join(dataDir, "xbank.log"), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Close()

	db, err := storage.OpenDB(dataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	tr, err := locale.New(cfg.Locale)
	if err != nil {
		return err
	}

	kv := storage.NewKVStore(db)
	logger.Info("starting xbank",
		"version", version,
		"db", db.Path(),
		"config", cfg.Path(),
		"locale", tr.Lang(),
		"max_history", cfg.MaxHistory,
	)

	m := app.New(app.Options{
		Auth:       auth.NewService(kv, logger.Logger),
		Store:      kv,
		Translator: tr,
		Config:     cfg,
		Logger:     logger.Logger,
	})
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	logger.Info("bye")
	return nil
}
