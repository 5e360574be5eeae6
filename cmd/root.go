package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcus/whiptail/internal/config"
	"github.com/spf13/cobra"
)

// Exit codes, as whiptail uses them.
const (
	exitOK     = 0
	exitError  = 1
	exitClosed = 255
)

var (
	version string

	cfgFile  string
	theme    string
	noMouse  bool
	logFile  string
	logLevel string
	toStdout bool

	settings config.Settings
	logger   = slog.New(slog.NewJSONHandler(io.Discard, nil))
	logSink  io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

// ExitError ends the process with Code without printing an error.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var rootCmd = &cobra.Command{
	Use:   "whiptail",
	Short: "Display dialog boxes from shell scripts",
	Long: `whiptail - Terminal dialog boxes for shell scripts.

Draws a titled box with a list of items and a row of buttons, waits for a
choice and reports it as "item-id<TAB>button" on stderr (stdout with --stdout).
Escape exits with status 255.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	closeLog()
	os.Exit(exitCode(err, os.Stderr))
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "settings file (default is $HOME/.config/whiptail/config.yml)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme (classic, mono)")
	pf.BoolVar(&noMouse, "no-mouse", false, "disable mouse support")
	pf.StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&toStdout, "stdout", false, "print the result on stdout and draw the dialog on stderr")
}

// exitCode maps a command error to a process exit status, printing
// anything that is not an *ExitError.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitError
}

// setup loads settings, applies flag overrides and opens the log.
func setup(cmd *cobra.Command) error {
	s, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	fl := cmd.Flags()
	if fl.Changed("theme") {
		s.Theme = theme
	}
	if fl.Changed("no-mouse") {
		s.Mouse = !noMouse
	}
	if fl.Changed("log-file") {
		s.LogFile = logFile
	}
	if fl.Changed("log-level") {
		s.LogLevel = logLevel
	}
	if err := s.Validate(); err != nil {
		return err
	}

	settings = s
	return openLog(s)
}

// openLog points the logger at the configured file. The terminal belongs
// to the dialog, so without a file logs are discarded.
func openLog(s config.Settings) error {
	lvl, err := config.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}

	var w io.Writer = io.Discard
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		closeLog()
		logSink = f
		w = f
	}

	logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	logger.Debug("settings loaded", "theme", s.Theme, "mouse", s.Mouse, "config", cfgFile)
	return nil
}

func closeLog() {
	if logSink != nil {
		logSink.Close()
		logSink = nil
	}
}
