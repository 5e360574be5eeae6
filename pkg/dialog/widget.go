package dialog

import (
	"log/slog"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// Status is a snapshot of the focused-or-active item and the focused
// footer button. Either may be nil.
type Status struct {
	Item   *Node
	Footer *Node
}

// Option configures a Widget.
type Option func(*Widget)

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithTheme sets the styles the widget is drawn with.
func WithTheme(t Theme) Option {
	return func(w *Widget) {
		w.theme = t
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(w *Widget) {
		w.keys = k
	}
}

// Widget is a mounted dialog: a built structure plus the controller that
// drives it.
type Widget struct {
	id      int
	screen  *Screen
	slot    string
	cfg     Config
	root    *Node
	items   []*Node
	buttons []*Node
	ctrl    *Controller

	keys   KeyMap
	theme  Theme
	logger *slog.Logger

	typed     string // type-ahead buffer
	scroll    int    // first visible item row
	hover     hitTarget
	hovering  bool
	body      []string
	bodyWidth int

	destroyed bool
}

// New builds the dialog described by cfg and mounts it on screen, replacing
// whatever the target slot held. It fails with ErrNoScreen when screen is
// nil and with a *MountError when the selector matches no slot.
func New(screen *Screen, cfg Config, opts ...Option) (*Widget, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}
	slot, ok := screen.resolve(cfg.Selector)
	if !ok {
		return nil, &MountError{Selector: cfg.Selector}
	}

	w := &Widget{
		screen: screen,
		slot:   slot,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		theme:  ClassicTheme(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.root = Build(cfg)
	w.items = w.root.Items()
	w.buttons = w.root.Buttons()
	w.ctrl = NewController(len(w.items), len(w.buttons))

	screen.mount(w)
	w.warnDeclaredFlags()
	w.logger.Debug("dialog mounted", "widget", w.id, "slot", slot, "items", len(w.items), "buttons", len(w.buttons))

	if cfg.Focus {
		w.Focus()
	}
	return w, nil
}

// Get returns the built structure, or nil after Destroy.
func (w *Widget) Get() *Node {
	if w.destroyed {
		return nil
	}
	return w.root
}

// Focus makes this widget the screen's keyboard owner.
func (w *Widget) Focus() {
	if w.destroyed {
		return
	}
	w.screen.setOwner(w)
}

// Focused reports whether this widget currently receives keyboard input.
func (w *Widget) Focused() bool {
	return !w.destroyed && w.screen.keyboardOwner() == w
}

// Status returns the current item and footer button without changing state.
func (w *Widget) Status() Status {
	var st Status
	if w.destroyed {
		return st
	}
	if len(w.items) > 0 {
		st.Item = w.items[w.ctrl.ItemIndex()]
	}
	if w.ctrl.InFooter() {
		st.Footer = w.buttons[w.ctrl.FooterIndex()]
	}
	return st
}

// State returns the controller state.
func (w *Widget) State() State {
	return w.ctrl.State()
}

// Marker returns the derived visual state of an item or button row.
func (w *Widget) Marker(n *Node) Marker {
	if w.destroyed || n == nil {
		return MarkerNone
	}
	switch n.kind {
	case KindItem:
		return w.ctrl.ItemMarker(n.index)
	case KindButton:
		return w.ctrl.ButtonMarker(n.index)
	}
	return MarkerNone
}

// Destroy unregisters the widget from its screen and removes its
// structure. Calling it again does nothing.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.screen.unmount(w)
	w.root = nil
	w.logger.Debug("dialog destroyed", "widget", w.id, "slot", w.slot)
}

// Destroyed reports whether Destroy has run.
func (w *Widget) Destroyed() bool { return w.destroyed }

// HandleKey runs a key press through the controller. It reports whether the
// key was consumed.
func (w *Widget) HandleKey(msg tea.KeyMsg) bool {
	if w.destroyed {
		return false
	}
	in, ok := w.keys.input(msg)
	if !ok {
		if s := w.typedText(msg); s != "" {
			return w.typeAhead(s)
		}
		return false
	}

	ev, handled := w.ctrl.Apply(in)
	if !handled {
		// Space falls through in item mode and can extend a search.
		if s := w.typedText(msg); s == " " {
			return w.typeAhead(s)
		}
		return false
	}
	w.typed = ""
	w.moved("key", msg.String())
	w.fire(ev)
	return true
}

// typedText is the text msg adds to the type-ahead buffer, or "". A space
// only counts once a search has started.
func (w *Widget) typedText(msg tea.KeyMsg) string {
	if !w.cfg.TypeAhead {
		return ""
	}
	switch msg.Type {
	case tea.KeyRunes:
		if s := string(msg.Runes); s != " " || w.typed != "" {
			return s
		}
	case tea.KeySpace:
		if w.typed != "" {
			return " "
		}
	}
	return ""
}

// TapItem handles a click on item row k.
func (w *Widget) TapItem(k int) {
	if w.destroyed || k < 0 || k >= len(w.items) {
		return
	}
	w.typed = ""
	w.ctrl.TapItem(k)
	w.moved("tap", "item")
}

// TapButton handles a click on footer button k; it always selects.
func (w *Widget) TapButton(k int) {
	if w.destroyed || k < 0 || k >= len(w.buttons) {
		return
	}
	w.typed = ""
	ev := w.ctrl.TapButton(k)
	w.moved("tap", "button")
	w.fire(ev)
}

// Hover marks the row under the pointer; index < 0 clears it. Hover is
// purely visual and never moves the controller.
func (w *Widget) Hover(kind Kind, index int) {
	if w.destroyed || index < 0 || (kind != KindItem && kind != KindButton) {
		w.hovering = false
		return
	}
	w.hover = hitTarget{widget: w.id, kind: kind, index: index}
	w.hovering = true
}

// Hovered reports whether n is the row under the pointer.
func (w *Widget) Hovered(n *Node) bool {
	return w.hovering && n != nil && w.hover.kind == n.kind && w.hover.index == n.index
}

// Scroll moves focus like Up (delta < 0) or Down (delta > 0).
func (w *Widget) Scroll(delta int) {
	if w.destroyed || delta == 0 {
		return
	}
	in := InputDown
	if delta < 0 {
		in = InputUp
	}
	w.ctrl.Apply(in)
	w.moved("wheel", in.String())
}

func (w *Widget) typeAhead(s string) bool {
	w.typed += s
	labels := make([]string, len(w.items))
	for i, it := range w.items {
		labels[i] = it.PlainLabel()
	}
	matches := fuzzy.Find(w.typed, labels)
	if len(matches) == 0 && s != " " {
		w.typed = s
		matches = fuzzy.Find(w.typed, labels)
	}
	if len(matches) == 0 {
		w.typed = ""
		return true
	}
	w.ctrl.FocusItem(matches[0].Index)
	w.moved("type-ahead", w.typed)
	return true
}

func (w *Widget) fire(ev Event) {
	switch ev {
	case EventSelect:
		st := w.Status()
		w.logger.Debug("dialog select", "widget", w.id, "item", w.ctrl.ItemIndex(), "footer", st.Footer != nil)
		if w.cfg.OnSelect != nil {
			w.cfg.OnSelect(st.Item, st.Footer)
		}
	case EventClose:
		w.logger.Debug("dialog close", "widget", w.id)
		if w.cfg.OnClose != nil {
			w.cfg.OnClose()
		}
	}
}

func (w *Widget) moved(source, detail string) {
	w.ensureVisible()
	st := w.ctrl.State()
	w.logger.Debug("dialog focus",
		"widget", w.id,
		"source", source,
		"input", detail,
		"mode", st.Mode.String(),
		"item", st.ItemIndex,
		"footer", st.FooterIndex,
	)
}

// visibleRows is the number of item rows drawn at once.
func (w *Widget) visibleRows() int {
	if w.cfg.MaxVisible <= 0 || w.cfg.MaxVisible > len(w.items) {
		return len(w.items)
	}
	return w.cfg.MaxVisible
}

// ensureVisible keeps the current item inside the scroll window.
func (w *Widget) ensureVisible() {
	visible := w.visibleRows()
	i := w.ctrl.ItemIndex()
	if i < w.scroll {
		w.scroll = i
	} else if i >= w.scroll+visible {
		w.scroll = i - visible + 1
	}
	w.scroll = clamp(w.scroll, 0, max(0, len(w.items)-visible))
}

// warnDeclaredFlags logs declarative focus/active flags that disagree with
// the controller's start state. The flags never move the controller.
func (w *Widget) warnDeclaredFlags() {
	for _, n := range slices.Concat(w.items, w.buttons) {
		if !n.declaredFocus && !n.declaredActive {
			continue
		}
		if n.kind == KindItem && n.index == 0 && n.declaredFocus && !n.declaredActive {
			continue
		}
		w.logger.Warn("declared focus/active flag ignored; controller starts on first item",
			"widget", w.id,
			"kind", n.kind.String(),
			"index", n.index,
			"focus", n.declaredFocus,
			"active", n.declaredActive,
		)
	}
}
