package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap is the widget's key bindings with built-in help text.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Home   key.Binding
	End    key.Binding
	Select key.Binding
	Toggle key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the classic dialog bindings. Tab and Shift+Tab act
// as Right and Left.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←", "back"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→/tab", "buttons"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "press button"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Right, k.Select, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Left, k.Right},
		{k.Select, k.Toggle, k.Close},
	}
}

// input maps a key message onto a controller input.
func (k KeyMap) input(msg tea.KeyMsg) (Input, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return InputUp, true
	case key.Matches(msg, k.Down):
		return InputDown, true
	case key.Matches(msg, k.Left):
		return InputLeft, true
	case key.Matches(msg, k.Right):
		return InputRight, true
	case key.Matches(msg, k.Home):
		return InputHome, true
	case key.Matches(msg, k.End):
		return InputEnd, true
	case key.Matches(msg, k.Select):
		return InputEnter, true
	case key.Matches(msg, k.Toggle):
		return InputSpace, true
	case key.Matches(msg, k.Close):
		return InputEscape, true
	}
	return 0, false
}
