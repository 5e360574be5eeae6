package dialog

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Classic whiptail palette.
var (
	screenBlue = lipgloss.Color("4")
	dialogGrey = lipgloss.Color("7")
	black      = lipgloss.Color("0")
	white      = lipgloss.Color("15")
	focusRed   = lipgloss.Color("1")
	activeBlue = lipgloss.Color("4")
	mutedGrey  = lipgloss.Color("8")
)

// Theme is the set of styles a widget is drawn with.
type Theme struct {
	Screen        lipgloss.Style // Backdrop behind the box
	Dialog        lipgloss.Style // Box body
	Border        lipgloss.Style
	BorderShape   lipgloss.Border
	Title         lipgloss.Style
	Text          lipgloss.Style
	Item          lipgloss.Style
	ItemFocused   lipgloss.Style
	ItemActive    lipgloss.Style
	ItemHover     lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonHover   lipgloss.Style
	Muted         lipgloss.Style
	Hint          lipgloss.Style

	MarkdownStyle string // glamour standard style for Markdown body text
}

// ClassicTheme mimics newt/whiptail: grey box on blue, red focus.
func ClassicTheme() Theme {
	body := lipgloss.NewStyle().Foreground(black).Background(dialogGrey)
	return Theme{
		Screen:      lipgloss.NewStyle().Background(screenBlue),
		Dialog:      body,
		Border:      body,
		BorderShape: lipgloss.NormalBorder(),
		Title:       body.Foreground(focusRed),
		Text:        body,
		Item:        body,
		ItemFocused: lipgloss.NewStyle().
			Foreground(white).
			Background(focusRed),
		ItemActive: lipgloss.NewStyle().
			Foreground(white).
			Background(activeBlue),
		ItemHover: body.Underline(true),
		Button:    body.Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(white).
			Background(focusRed).
			Bold(true).
			Padding(0, 1),
		ButtonHover:   body.Foreground(focusRed).Padding(0, 1),
		Muted:         body.Foreground(mutedGrey),
		Hint:          lipgloss.NewStyle().Foreground(white),
		MarkdownStyle: "light",
	}
}

// MonoTheme draws without colour, using reverse video for focus.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Screen:        plain,
		Dialog:        plain,
		Border:        plain,
		BorderShape:   lipgloss.NormalBorder(),
		Title:         plain.Bold(true),
		Text:          plain,
		Item:          plain,
		ItemFocused:   plain.Reverse(true),
		ItemActive:    plain.Underline(true),
		ItemHover:     plain.Bold(true),
		Button:        plain.Padding(0, 1),
		ButtonFocused: plain.Reverse(true).Bold(true).Padding(0, 1),
		ButtonHover:   plain.Bold(true).Padding(0, 1),
		Muted:         plain.Faint(true),
		Hint:          plain.Faint(true),
		MarkdownStyle: "notty",
	}
}

var themes = map[string]func() Theme{
	"classic": ClassicTheme,
	"mono":    MonoTheme,
}

// ThemeByName returns a registered theme.
func ThemeByName(name string) (Theme, bool) {
	fn, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return fn(), true
}

// ThemeNames lists the registered themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (t Theme) itemStyle(m Marker, hovered bool) lipgloss.Style {
	switch {
	case m == MarkerFocus:
		return t.ItemFocused
	case m == MarkerActive:
		return t.ItemActive
	case hovered:
		return t.ItemHover
	default:
		return t.Item
	}
}

func (t Theme) buttonStyle(m Marker, hovered bool) lipgloss.Style {
	switch {
	case m == MarkerFocus:
		return t.ButtonFocused
	case hovered:
		return t.ButtonHover
	default:
		return t.Button
	}
}
