package dialog

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/whiptail/pkg/dialog/mouse"
)

// Screen hosts widgets in named slots. It routes keys to a single keyboard
// owner and clicks to whichever widget drew the region under the pointer,
// so several live widgets never compete for the same input.
type Screen struct {
	slots   []string
	mounted map[string]*Widget
	order   []*Widget // live widgets in mount order
	owner   *Widget   // explicit keyboard owner, nil for the default
	nextID  int

	mouse    *mouse.Handler
	backdrop lipgloss.Style
	width    int
	height   int
	quitting bool
}

// NewScreen returns a screen with the given slot names, drawn top to bottom.
// A leading '#' on a name is dropped.
func NewScreen(slots ...string) *Screen {
	names := make([]string, len(slots))
	for i, slot := range slots {
		names[i] = slotName(slot)
	}
	return &Screen{
		slots:   names,
		mounted: make(map[string]*Widget),
		mouse:   mouse.NewHandler(),
	}
}

// SetBackdrop sets the style painted behind the widgets.
func (s *Screen) SetBackdrop(style lipgloss.Style) {
	s.backdrop = style
}

// SetSize sets the screen dimensions; tea.WindowSizeMsg does the same.
func (s *Screen) SetSize(width, height int) {
	s.width, s.height = width, height
}

// RequestQuit ends the program after the current update.
func (s *Screen) RequestQuit() {
	s.quitting = true
}

// Widget returns the live widget mounted in slot, if any.
func (s *Screen) Widget(slot string) *Widget {
	return s.mounted[slotName(slot)]
}

// Widgets returns the live widgets in mount order.
func (s *Screen) Widgets() []*Widget {
	return slices.Clone(s.order)
}

func slotName(selector string) string {
	return strings.TrimPrefix(strings.TrimSpace(selector), "#")
}

// resolve maps a selector onto exactly one slot. A name declared twice
// resolves to nothing.
func (s *Screen) resolve(selector string) (string, bool) {
	name := slotName(selector)
	if name == "" {
		return "", false
	}
	matches := 0
	for _, slot := range s.slots {
		if slot == name {
			matches++
		}
	}
	if matches != 1 {
		return "", false
	}
	return name, true
}

// mount clears the widget's slot and registers it.
func (s *Screen) mount(w *Widget) {
	if prev := s.mounted[w.slot]; prev != nil {
		prev.Destroy()
	}
	s.nextID++
	w.id = s.nextID
	s.mounted[w.slot] = w
	s.order = append(s.order, w)
}

func (s *Screen) unmount(w *Widget) {
	if s.mounted[w.slot] == w {
		delete(s.mounted, w.slot)
	}
	s.order = slices.DeleteFunc(s.order, func(o *Widget) bool { return o == w })
	if s.owner == w {
		s.owner = nil
	}
}

func (s *Screen) setOwner(w *Widget) {
	s.owner = w
}

// keyboardOwner is the widget that last called Focus, else the most
// recently mounted live widget.
func (s *Screen) keyboardOwner() *Widget {
	if s.owner != nil {
		return s.owner
	}
	if len(s.order) == 0 {
		return nil
	}
	return s.order[len(s.order)-1]
}

func (s *Screen) byID(id int) *Widget {
	for _, w := range s.order {
		if w.id == id {
			return w
		}
	}
	return nil
}

// Init implements tea.Model.
func (s *Screen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return s, tea.Quit
		}
		if w := s.keyboardOwner(); w != nil {
			w.HandleKey(msg)
		}

	case tea.MouseMsg:
		s.handleMouse(msg)
	}

	if s.quitting {
		return s, tea.Quit
	}
	return s, nil
}

func (s *Screen) handleMouse(msg tea.MouseMsg) {
	action := s.mouse.HandleMouse(msg)

	var target hitTarget
	var w *Widget
	if action.Region != nil {
		target, _ = action.Region.Data.(hitTarget)
		w = s.byID(target.widget)
	}

	switch action.Type {
	case mouse.ActionHover:
		for _, o := range s.order {
			if o != w {
				o.Hover(KindContainer, -1)
			}
		}
		if w != nil {
			w.Hover(target.kind, target.index)
		}
	case mouse.ActionClick:
		if w == nil {
			return
		}
		switch target.kind {
		case KindItem:
			w.TapItem(target.index)
		case KindButton:
			w.TapButton(target.index)
		}
	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if w == nil {
			w = s.keyboardOwner()
		}
		if w == nil {
			return
		}
		if action.Type == mouse.ActionScrollUp {
			w.Scroll(-1)
		} else {
			w.Scroll(1)
		}
	}
}

// View implements tea.Model. It stacks the mounted slots, centres them and
// rebuilds the hit map from what it drew.
func (s *Screen) View() string {
	s.mouse.Clear()

	var frames []frame
	for _, slot := range s.slots {
		if w := s.mounted[slot]; w != nil {
			frames = append(frames, w.render(s.width))
		}
	}

	total := 0
	for _, f := range frames {
		total += f.height
	}
	top := 0
	if s.height > total {
		top = (s.height - total) / 2
	}

	var out []string
	for range top {
		out = append(out, s.fill(s.width))
	}
	for _, f := range frames {
		left := 0
		if s.width > f.width {
			left = (s.width - f.width) / 2
		}
		for _, r := range f.regions {
			r.Rect = r.Rect.Offset(left, len(out))
			s.mouse.HitMap.Add(r)
		}
		for _, line := range strings.Split(f.content, "\n") {
			right := s.width - left - ansi.StringWidth(line)
			out = append(out, s.fill(left)+line+s.fill(right))
		}
	}
	for len(out) < s.height {
		out = append(out, s.fill(s.width))
	}
	return strings.Join(out, "\n")
}

// fill paints n backdrop cells.
func (s *Screen) fill(n int) string {
	if n <= 0 {
		return ""
	}
	return s.backdrop.Render(strings.Repeat(" ", n))
}
