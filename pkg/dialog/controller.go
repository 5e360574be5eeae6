package dialog

// Mode is the controller's focus mode.
type Mode int

const (
	ModeItems  Mode = iota // An item row has focus
	ModeFooter             // A footer button has focus; the current item is active
)

func (m Mode) String() string {
	if m == ModeFooter {
		return "footer"
	}
	return "items"
}

// Input is a directional or action input understood by the Controller.
type Input int

const (
	InputUp Input = iota
	InputDown
	InputLeft
	InputRight
	InputHome
	InputEnd
	InputEnter
	InputSpace
	InputEscape
)

func (in Input) String() string {
	switch in {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputHome:
		return "home"
	case InputEnd:
		return "end"
	case InputEnter:
		return "enter"
	case InputSpace:
		return "space"
	case InputEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Event is what a transition asks the widget to fire.
type Event int

const (
	EventNone Event = iota
	EventSelect
	EventClose
)

// Marker is the visual state of a row, derived from the controller.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerFocus
	MarkerActive
)

// State is a snapshot of the controller.
type State struct {
	Mode        Mode
	ItemIndex   int
	FooterIndex int
}

// Controller is the focus/selection state machine. It holds the explicit
// state; everything visual is derived from it. Index moves clamp to the
// collection bounds and never wrap.
type Controller struct {
	itemCount   int
	footerCount int
	itemIndex   int
	footerIndex int
	inFooter    bool
}

// NewController starts in item mode at item 0 and button 0.
func NewController(itemCount, footerCount int) *Controller {
	return &Controller{itemCount: max(itemCount, 0), footerCount: max(footerCount, 0)}
}

// State returns the current state.
func (c *Controller) State() State {
	mode := ModeItems
	if c.inFooter {
		mode = ModeFooter
	}
	return State{Mode: mode, ItemIndex: c.itemIndex, FooterIndex: c.footerIndex}
}

// InFooter reports whether a footer button has focus.
func (c *Controller) InFooter() bool { return c.inFooter }

// ItemIndex returns the current item position.
func (c *Controller) ItemIndex() int { return c.itemIndex }

// FooterIndex returns the current button position.
func (c *Controller) FooterIndex() int { return c.footerIndex }

// Apply runs one input. It returns the event to fire and whether the input
// was consumed. Left in item mode and Space in item mode are not consumed.
func (c *Controller) Apply(in Input) (Event, bool) {
	switch in {
	case InputUp:
		if !c.inFooter {
			c.setItem(c.itemIndex - 1)
		} else if c.footerIndex == 0 {
			c.exitFooter()
		} else {
			c.setFooter(c.footerIndex - 1)
		}
	case InputDown:
		if !c.inFooter {
			c.setItem(c.itemIndex + 1)
		} else {
			c.setFooter(c.footerIndex + 1)
		}
	case InputLeft:
		if !c.inFooter {
			return EventNone, false
		}
		if c.footerIndex == 0 {
			c.exitFooter()
		} else {
			c.setFooter(c.footerIndex - 1)
		}
	case InputRight:
		if !c.inFooter {
			c.enterFooter()
		} else {
			c.setFooter(c.footerIndex + 1)
		}
	case InputHome:
		if c.inFooter {
			c.setFooter(0)
		} else {
			c.setItem(0)
		}
	case InputEnd:
		if c.inFooter {
			c.setFooter(c.footerCount - 1)
		} else {
			c.setItem(c.itemCount - 1)
		}
	case InputEnter:
		return EventSelect, true
	case InputSpace:
		if !c.inFooter {
			return EventNone, false
		}
		return EventSelect, true
	case InputEscape:
		return EventClose, true
	default:
		return EventNone, false
	}
	return EventNone, true
}

// TapItem focuses item k, leaving footer mode first when needed.
func (c *Controller) TapItem(k int) {
	if c.inFooter {
		c.exitFooter()
	}
	c.setItem(k)
}

// TapButton focuses button k, entering footer mode first when needed, and
// asks for a selection. It is a no-op without buttons.
func (c *Controller) TapButton(k int) Event {
	if c.footerCount == 0 {
		return EventNone
	}
	if !c.inFooter {
		c.enterFooter()
	}
	c.setFooter(k)
	return EventSelect
}

// FocusItem moves item focus to i from either mode.
func (c *Controller) FocusItem(i int) {
	c.TapItem(i)
}

// ItemMarker returns the visual state of item i.
func (c *Controller) ItemMarker(i int) Marker {
	if c.itemCount == 0 || i != c.itemIndex {
		return MarkerNone
	}
	if c.inFooter {
		return MarkerActive
	}
	return MarkerFocus
}

// ButtonMarker returns the visual state of button i.
func (c *Controller) ButtonMarker(i int) Marker {
	if c.inFooter && i == c.footerIndex {
		return MarkerFocus
	}
	return MarkerNone
}

func (c *Controller) setItem(i int) {
	if c.itemCount == 0 {
		return
	}
	c.itemIndex = clamp(i, 0, c.itemCount-1)
}

func (c *Controller) setFooter(i int) {
	if c.footerCount == 0 {
		return
	}
	c.footerIndex = clamp(i, 0, c.footerCount-1)
}

func (c *Controller) enterFooter() {
	if c.footerCount == 0 {
		return
	}
	c.inFooter = true
	c.footerIndex = 0
}

// exitFooter keeps footer focus when there is no item to return to.
func (c *Controller) exitFooter() {
	if c.itemCount == 0 {
		return
	}
	c.inFooter = false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
