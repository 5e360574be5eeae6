package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/whiptail/pkg/dialog/mouse"
)

// Region IDs registered for each rendered row.
const (
	regionItem   = "dialog-item"   // Data: hitTarget
	regionButton = "dialog-button" // Data: hitTarget
)

// hitTarget identifies the row under a region.
type hitTarget struct {
	widget int
	kind   Kind
	index  int
}

// frame is one rendered widget. Regions are relative to the frame origin.
type frame struct {
	content string
	width   int
	height  int
	regions []mouse.Region
}

// boxWidth resolves the configured width against the space available.
func (w *Widget) boxWidth(avail int) int {
	width := w.cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if avail > 0 && width > avail {
		width = avail
	}
	return max(width, minWidth)
}

// View renders the widget at its configured width.
func (w *Widget) View() string {
	if w.destroyed {
		return ""
	}
	return w.render(0).content
}

// render draws the box. Markers come from the controller; nothing in the
// built structure records focus.
func (w *Widget) render(avail int) frame {
	width := w.boxWidth(avail)
	inner := width - 4 // two border cells, two padding cells

	var lines []string
	var regions []mouse.Region
	rowY := func() int { return 1 + len(lines) } // below the top border

	if w.cfg.Text != "" {
		lines = append(lines, w.bodyLines(inner)...)
		lines = append(lines, "")
	}

	visible := w.visibleRows()
	if w.scroll > 0 {
		lines = append(lines, w.theme.Muted.Render("↑ more above"))
	}
	for i := w.scroll; i < w.scroll+visible; i++ {
		label := ansi.Truncate(singleLine(w.items[i].label), inner, "…")
		row := w.theme.itemStyle(w.ctrl.ItemMarker(i), w.Hovered(w.items[i])).Width(inner).Render(label)
		regions = append(regions, mouse.Region{
			ID:   regionItem,
			Rect: mouse.Rect{X: 2, Y: rowY(), W: inner, H: 1},
			Data: hitTarget{widget: w.id, kind: KindItem, index: i},
		})
		lines = append(lines, row)
	}
	if w.scroll+visible < len(w.items) {
		lines = append(lines, w.theme.Muted.Render("↓ more below"))
	}

	if len(w.buttons) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		row, spans := w.buttonRow()
		row = ansi.Truncate(row, inner, "")
		pad := max(0, (inner-ansi.StringWidth(row))/2)
		y := rowY()
		for i, sp := range spans {
			if sp.x >= inner {
				break
			}
			regions = append(regions, mouse.Region{
				ID:   regionButton,
				Rect: mouse.Rect{X: 2 + pad + sp.x, Y: y, W: min(sp.w, inner-sp.x), H: 1},
				Data: hitTarget{widget: w.id, kind: KindButton, index: i},
			})
		}
		lines = append(lines, strings.Repeat(" ", pad)+row)
	}

	if len(lines) == 0 {
		lines = []string{""}
	}

	body := w.theme.Dialog.Width(width - 2).Padding(0, 1).Render(strings.Join(lines, "\n"))

	b := w.theme.BorderShape
	bs := w.theme.Border

	var out []string
	out = append(out, w.topBorder(width))
	for _, line := range strings.Split(body, "\n") {
		out = append(out, bs.Render(b.Left)+line+bs.Render(b.Right))
	}
	out = append(out, bs.Render(b.BottomLeft+strings.Repeat(b.Bottom, width-2)+b.BottomRight))

	if w.cfg.Hints {
		h := help.New()
		h.Width = width
		out = append(out, w.theme.Hint.Render(ansi.Truncate(h.View(w.keys), width, "")))
	}

	return frame{
		content: strings.Join(out, "\n"),
		width:   width,
		height:  len(out),
		regions: regions,
	}
}

// topBorder draws the top edge with the title centred in it.
func (w *Widget) topBorder(width int) string {
	b := w.theme.BorderShape
	bs := w.theme.Border

	title := ""
	if w.cfg.Title != "" {
		title = " " + ansi.Truncate(singleLine(w.cfg.Title), width-4, "…") + " "
	}
	tw := ansi.StringWidth(title)
	left := (width - 2 - tw) / 2
	right := width - 2 - tw - left

	return bs.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		w.theme.Title.Render(title) +
		bs.Render(strings.Repeat(b.Top, right)+b.TopRight)
}

type span struct{ x, w int }

// buttonSpacing separates footer buttons.
const buttonSpacing = 2

// buttonRow renders the footer buttons side by side and returns each
// button's horizontal span within the row.
func (w *Widget) buttonRow() (string, []span) {
	var sb strings.Builder
	spans := make([]span, 0, len(w.buttons))
	x := 0
	for i, btn := range w.buttons {
		if i > 0 {
			sb.WriteString(w.theme.Dialog.Render(strings.Repeat(" ", buttonSpacing)))
			x += buttonSpacing
		}
		rendered := w.theme.buttonStyle(w.ctrl.ButtonMarker(i), w.Hovered(btn)).Render("<" + singleLine(btn.label) + ">")
		bw := ansi.StringWidth(rendered)
		spans = append(spans, span{x: x, w: bw})
		sb.WriteString(rendered)
		x += bw
	}
	return sb.String(), spans
}

// bodyLines wraps the body text to width, rendering Markdown when asked.
// The result is cached per width.
func (w *Widget) bodyLines(width int) []string {
	if w.body != nil && w.bodyWidth == width {
		return w.body
	}

	var out string
	if w.cfg.TextFormat == TextMarkdown {
		rendered, err := renderMarkdown(w.cfg.Text, width, w.theme.MarkdownStyle)
		if err != nil {
			w.logger.Warn("markdown render failed, showing plain text", "widget", w.id, "err", err)
			out = ansi.Wrap(w.cfg.Text, width, "")
		} else {
			out = rendered
		}
	} else {
		out = ansi.Wrap(w.cfg.Text, width, "")
	}

	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = w.theme.Text.Render(ansi.Truncate(l, width, ""))
	}
	w.body, w.bodyWidth = lines, width
	return lines
}

func renderMarkdown(text string, width int, style string) (string, error) {
	if style == "" {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(text)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

func singleLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
