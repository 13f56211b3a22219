package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"termfolio/internal/buffer"
	"termfolio/internal/config"
	"termfolio/internal/domain"
	"termfolio/internal/pages"
	"termfolio/internal/session"
	"termfolio/internal/ui"
)

func main() {
	var (
		configPath  string
		startPage   string
		logPath     string
		printOnly   bool
		rows        int
		cols        int
		writeConfig bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&startPage, "page", "", "Route of the page to open first, e.g. /about")
	flag.StringVar(&logPath, "log", "termfolio.log", "Log file, empty to disable logging")
	flag.BoolVar(&printOnly, "print", false, "Print one frame to stdout and exit (implied when stdout is not a terminal)")
	flag.IntVar(&rows, "rows", 24, "Terminal rows used with -print")
	flag.IntVar(&cols, "cols", 80, "Terminal columns used with -print")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the default config file and exit")
	flag.Parse()

	// Set up logging
	if logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}

	if writeConfig {
		if err := writeDefaultConfig(configSvc); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", configSvc.Path())
		return
	}

	cfg, err := loadConfig(configSvc, configPath != "")
	if err != nil {
		log.Printf("Error loading config: %v", err)
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if startPage != "" {
		cfg.UI.StartPage = startPage
	}

	router := pages.NewRouter(cfg.Site, pages.MeasuresFrom(cfg.Layout))

	if printOnly || !stdoutIsTerminal() {
		if err := printFrame(os.Stdout, cfg, router, rows, cols); err != nil {
			log.Printf("Error printing frame: %v", err)
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	uiModel, err := ui.NewModel(cfg, router)
	if err != nil {
		log.Printf("Error creating UI model: %v", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// stdoutIsTerminal reports whether the interactive UI can take over stdout
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// loadConfig reads the config file. An explicit path must exist; the
// default location falls back to the built-in site.
func loadConfig(svc config.ConfigService, explicit bool) (*config.Config, error) {
	if explicit {
		cfg, err := svc.LoadFromPath(svc.Path())
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded config from %s", svc.Path())
		return cfg, nil
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("Using config %s", svc.Path())
	return cfg, nil
}

func writeDefaultConfig(svc config.ConfigService) error {
	if _, err := os.Stat(svc.Path()); err == nil {
		return fmt.Errorf("failed to write config: %s already exists", svc.Path())
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return svc.Save(config.DefaultConfig())
}

// printFrame renders the start page for a rows x cols terminal without
// taking over the terminal
func printFrame(w io.Writer, cfg *config.Config, router *pages.Router, rows, cols int) error {
	page, err := router.Resolve(cfg.UI.StartPage)
	if err != nil {
		return err
	}
	opts := session.OptionsFrom(cfg)
	s, err := session.New(page, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Apply(domain.ResizeEvent{Viewport: buffer.CellViewport(cols, rows, opts.Metrics)})
	f, err := s.Frame()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.Join(f.Rows, "\n"))
	return err
}
