package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/whiptail/internal/config"
	"github.com/marcus/whiptail/pkg/dialog"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the dialog has no terminal to draw on.
var ErrNoTerminal = errors.New("whiptail: a terminal is required to display the dialog")

const mainSlot = "main"

var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Result is the outcome of one dialog run.
type Result struct {
	Item     *dialog.Node
	Button   *dialog.Node
	Selected bool
}

// Line formats the result as "item-id<TAB>button". The item id falls back
// to the item's label; the button is empty when none was involved.
func (r Result) Line() string {
	var id, button string
	if r.Item != nil {
		id = r.Item.ID()
		if id == "" {
			id = r.Item.PlainLabel()
		}
	}
	if r.Button != nil {
		button = r.Button.PlainLabel()
	}
	return id + "\t" + button
}

// streams says where the dialog reads and draws and where the result goes.
type streams struct {
	in     *os.File
	ui     *os.File
	result io.Writer
}

func defaultStreams() streams {
	if toStdout {
		return streams{in: os.Stdin, ui: os.Stderr, result: os.Stdout}
	}
	return streams{in: os.Stdin, ui: os.Stdout, result: os.Stderr}
}

// newDialog mounts cfg on a fresh single-slot screen. Selecting or closing
// records into res and ends the program.
func newDialog(cfg dialog.Config, s config.Settings, res *Result) (*dialog.Screen, error) {
	t, ok := dialog.ThemeByName(s.Theme)
	if !ok {
		t = dialog.ClassicTheme()
	}

	screen := dialog.NewScreen(mainSlot)
	screen.SetBackdrop(t.Screen)

	cfg.Selector = "#" + mainSlot
	cfg.Focus = true
	cfg.OnSelect = func(item, button *dialog.Node) {
		res.Item, res.Button, res.Selected = item, button, true
		screen.RequestQuit()
	}
	cfg.OnClose = screen.RequestQuit

	if _, err := dialog.New(screen, cfg, dialog.WithTheme(t), dialog.WithLogger(logger)); err != nil {
		return nil, fmt.Errorf("mount dialog: %w", err)
	}
	return screen, nil
}

// runDialog shows cfg until the user selects or closes, then reports.
func runDialog(cfg dialog.Config, st streams) error {
	if !isTerminal(st.in) || !isTerminal(st.ui) {
		return ErrNoTerminal
	}

	// Styles must probe the stream the dialog is drawn on.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(st.ui))

	var res Result
	screen, err := newDialog(cfg, settings, &res)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithInput(st.in), tea.WithOutput(st.ui)}
	if settings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(screen, opts...).Run(); err != nil {
		return fmt.Errorf("run dialog: %w", err)
	}
	return report(res, st.result)
}

// report writes a selection to w. Anything else exits with status 255.
func report(res Result, w io.Writer) error {
	if !res.Selected {
		logger.Info("dialog closed")
		return &ExitError{Code: exitClosed}
	}
	line := res.Line()
	logger.Info("dialog selected", "result", line)
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
