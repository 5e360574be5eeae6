// Package mouse maps terminal mouse events onto rectangular hit regions.
//
// Regions are registered after each render (render-then-measure), so the
// rectangles always match what is on screen. Later regions win when they
// overlap earlier ones.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle. W and H are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Region is a named clickable area.
type Region struct {
	ID   string
	Rect Rect
	Data any // Caller-defined payload, e.g. a row index
}

// HitMap holds the regions for the current frame.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region.
func (h *HitMap) Add(r Region) {
	h.regions = append(h.regions, r)
}

// AddRect registers a region from its coordinates.
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	h.Add(Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: height}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Clear drops every region.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Regions returns the registered regions in insertion order.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// Action is the result of HandleMouse.
type Action struct {
	Type   ActionType
	Region *Region // nil when the event hit no region
	X, Y   int
}

// Handler resolves mouse messages against a hit map.
type Handler struct {
	HitMap *HitMap
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse classifies msg and finds the region under the pointer.
// Releases and unsupported buttons yield ActionNone.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	action := Action{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			action.Type = ActionClick
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
	}

	return action
}

// Clear drops all regions.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
