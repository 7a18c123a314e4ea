// Package main is the entry point for the todolist terminal app.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/todolist/internal/app"
	"github.com/dshills/todolist/internal/config"
	"github.com/dshills/todolist/internal/logging"
	"github.com/dshills/todolist/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitNotATTY  = 2
	exitShowInfo = -1
)

type cliOptions struct {
	configPath string
	logFile    string
	logLevel   string
	debug      bool
	noMouse    bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, code := parseFlags(args, os.Stdout, os.Stderr)
	if code != exitShowInfo {
		return code
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: todolist must run in a terminal")
		return exitNotATTY
	}

	path, explicit := resolveConfigPath(opts.configPath, os.Getenv(config.EnvConfigPath))
	if explicit {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: config file: %v\n", err)
			return exitError
		}
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	applyFlags(cfg, opts)

	logOut, err := logging.OpenFile(cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	defer logOut.Close()

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Output: logOut,
		Prefix: "todolist",
	})
	logger.Info("todolist %s (%s) starting, config %q", version, commit, cfg.Path)
	for _, w := range cfg.Warnings {
		logger.Warn("%s", w)
	}

	application, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: cfg.Path,
		Loader:     loader,
		Logger:     logger,
		NoMouse:    opts.noMouse,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return exitError
	}

	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return exitError
	}
	if err := application.SetBackend(screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return exitError
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		sig, ok := <-signals
		if !ok {
			return
		}
		logger.Info("received %s", sig)
		application.Shutdown()
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	return exitOK
}

// parseFlags parses args. It returns exitShowInfo when the program should
// continue, or an exit code when it should stop (help, version or bad flags).
func parseFlags(args []string, stdout, stderr io.Writer) (cliOptions, int) {
	var opts cliOptions
	var showVersion, showHelp bool

	fs := flag.NewFlagSet("todolist", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.debug, "d", false, "Enable debug logging (shorthand)")
	fs.BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse support")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "todolist - a single-screen to-do list\n\n")
		fmt.Fprintf(stderr, "Usage: todolist [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  %s             Config file path\n", config.EnvConfigPath)
		fmt.Fprintf(stderr, "  %s<SECTION>_<KEY>  Override any setting, e.g. TODOLIST_THEME_STARRED=#FFAA00\n", config.EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, exitOK
		}
		return opts, exitError
	}

	if showHelp {
		fs.Usage()
		return opts, exitOK
	}

	if showVersion {
		fmt.Fprintf(stdout, "todolist %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, exitOK
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments %v\n", fs.Args())
		return opts, exitError
	}

	if opts.logLevel != "" && !logging.ValidLevel(opts.logLevel) {
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		return opts, exitError
	}

	return opts, exitShowInfo
}

// resolveConfigPath picks the config file: flag, then environment, then the
// per-user default. explicit is true when the user named the file.
func resolveConfigPath(flagPath, envPath string) (path string, explicit bool) {
	switch {
	case flagPath != "":
		return flagPath, true
	case envPath != "":
		return envPath, true
	default:
		return config.DefaultPath(), false
	}
}

// applyFlags overlays command line settings, the highest layer.
func applyFlags(cfg *config.Config, opts cliOptions) {
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}
}
