package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of c and its parents to its default so
// commands can be executed more than once per test binary.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	for ; c != nil; c = c.Parent() {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

// execute runs the root command with args in an isolated HOME.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(menuCmd)
	resetFlags(runCmd)
	t.Cleanup(closeLog)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		want      int
		wantPrint bool
	}{
		{"success", nil, exitOK, false},
		{"closed", &ExitError{Code: exitClosed}, exitClosed, false},
		{"wrapped exit", errors.Join(errors.New("ctx"), &ExitError{Code: 3}), 3, false},
		{"plain error", errors.New("boom"), exitError, true},
		{"no terminal", ErrNoTerminal, exitError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := exitCode(tt.err, &stderr); got != tt.want {
				t.Errorf("exitCode = %d, want %d", got, tt.want)
			}
			if printed := stderr.Len() > 0; printed != tt.wantPrint {
				t.Errorf("printed %q, wantPrint %v", stderr.String(), tt.wantPrint)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("") })

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "whiptail 1.2.3 ") {
		t.Errorf("output = %q", out)
	}
}

func TestFlagsOverrideSettings(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "whiptail.log")
	_, err := execute(t, "--theme", "mono", "--no-mouse", "--log-file", logPath, "--log-level", "debug", "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if settings.Theme != "mono" || settings.Mouse || settings.LogLevel != "debug" {
		t.Errorf("settings = %+v", settings)
	}
	closeLog()
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"settings loaded"`) {
		t.Errorf("log = %q, want a JSON settings record", data)
	}
}

func TestInvalidThemeFlag(t *testing.T) {
	if _, err := execute(t, "--theme", "neon", "version"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}
