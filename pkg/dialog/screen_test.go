package dialog

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/whiptail/pkg/dialog/mouse"
)

func mount(t *testing.T, s *Screen, slot string, rec *recorder, items ...string) *Widget {
	t.Helper()
	w, err := New(s, Config{
		Selector: slot,
		Title:    slot,
		Items:    entries(items...),
		Footer:   entries("OK", "Cancel"),
		OnSelect: rec.onSelect,
		OnClose:  rec.onClose,
	}, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New(%s): %v", slot, err)
	}
	return w
}

func TestScreenRoutesKeysToOwner(t *testing.T) {
	s := NewScreen("top", "bottom")
	recTop, recBottom := &recorder{}, &recorder{}
	top := mount(t, s, "top", recTop, "a", "b")
	bottom := mount(t, s, "bottom", recBottom, "c", "d")

	if !bottom.Focused() || top.Focused() {
		t.Fatal("newest widget should own the keyboard by default")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	if bottom.State().ItemIndex != 1 || top.State().ItemIndex != 0 {
		t.Errorf("down went to the wrong widget: top=%d bottom=%d", top.State().ItemIndex, bottom.State().ItemIndex)
	}

	top.Focus()
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(recTop.selects) != 1 || len(recBottom.selects) != 0 {
		t.Errorf("enter after Focus: top=%d bottom=%d selects", len(recTop.selects), len(recBottom.selects))
	}

	top.Destroy()
	if !bottom.Focused() {
		t.Error("keyboard should fall back to the remaining widget")
	}
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if recBottom.closes != 1 || recTop.closes != 0 {
		t.Errorf("escape after destroy: top=%d bottom=%d closes", recTop.closes, recBottom.closes)
	}
}

func TestScreenQuit(t *testing.T) {
	s := NewScreen("main")
	rec := &recorder{}
	mount(t, s, "main", rec, "a")

	if _, cmd := s.Update(tea.KeyMsg{Type: tea.KeyDown}); cmd != nil {
		t.Error("plain move should not return a command")
	}
	if _, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c should quit")
	}

	s.RequestQuit()
	if _, cmd := s.Update(tea.KeyMsg{Type: tea.KeyDown}); cmd == nil {
		t.Error("RequestQuit should end the program on the next update")
	}
}

// regionFor finds the rendered region of a row.
func regionFor(t *testing.T, s *Screen, kind Kind, index int) mouse.Rect {
	t.Helper()
	for _, r := range s.mouse.HitMap.Regions() {
		if target, ok := r.Data.(hitTarget); ok && target.kind == kind && target.index == index {
			return r.Rect
		}
	}
	t.Fatalf("no region for %s %d", kind, index)
	return mouse.Rect{}
}

func click(s *Screen, r mouse.Rect) {
	s.Update(tea.MouseMsg{
		X:      r.X + r.W/2,
		Y:      r.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
}

func TestScreenClicks(t *testing.T) {
	s := NewScreen("main")
	s.SetSize(80, 24)
	rec := &recorder{}
	w := mount(t, s, "main", rec, "a", "b", "c")

	s.View()
	click(s, regionFor(t, s, KindItem, 2))
	if st := w.State(); st.Mode != ModeItems || st.ItemIndex != 2 {
		t.Fatalf("state after item click = %+v", st)
	}
	if len(rec.selects) != 0 {
		t.Fatal("item click should not select")
	}

	s.View()
	click(s, regionFor(t, s, KindButton, 1))
	if len(rec.selects) != 1 {
		t.Fatalf("button click selects = %d, want 1", len(rec.selects))
	}
	if got := rec.selects[0]; got.item != "c" || got.button != "Cancel" {
		t.Errorf("select = %+v, want c/Cancel", got)
	}
}

func TestScreenHoverMarksRowOnly(t *testing.T) {
	s := NewScreen("main")
	s.SetSize(80, 24)
	rec := &recorder{}
	w := mount(t, s, "main", rec, "a", "b")
	buttons := w.Get().Buttons()

	s.View()
	r := regionFor(t, s, KindButton, 1)
	s.Update(tea.MouseMsg{X: r.X, Y: r.Y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if !w.Hovered(buttons[1]) || w.Hovered(buttons[0]) {
		t.Error("the button under the pointer should be hovered")
	}
	if st := w.State(); st.Mode != ModeItems || st.ItemIndex != 0 {
		t.Errorf("hover moved the controller: %+v", st)
	}
	if len(rec.selects) != 0 {
		t.Error("hover should not select")
	}

	s.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if w.Hovered(buttons[1]) {
		t.Error("moving off every region should clear hover")
	}
}

func TestScreenIgnoresClicksOnDestroyedWidget(t *testing.T) {
	s := NewScreen("main")
	rec := &recorder{}
	w := mount(t, s, "main", rec, "a")

	s.View()
	r := regionFor(t, s, KindButton, 0)
	w.Destroy()
	click(s, r)

	if len(rec.selects) != 0 {
		t.Error("stale region reached a destroyed widget")
	}
}

func TestScreenWheelMovesFocus(t *testing.T) {
	s := NewScreen("main")
	rec := &recorder{}
	w := mount(t, s, "main", rec, "a", "b", "c")
	s.View()

	s.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	s.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if w.State().ItemIndex != 2 {
		t.Errorf("itemIndex = %d after two wheel downs, want 2", w.State().ItemIndex)
	}

	s.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if w.State().ItemIndex != 1 {
		t.Errorf("itemIndex = %d after wheel up, want 1", w.State().ItemIndex)
	}
}

func TestScreenCentresContent(t *testing.T) {
	s := NewScreen("main")
	s.SetSize(80, 24)
	rec := &recorder{}
	mount(t, s, "main", rec, "a")

	s.View()
	r := regionFor(t, s, KindItem, 0)
	// 50 wide box centred in 80 columns starts at 15; rows start inside the border and padding.
	if r.X != 17 {
		t.Errorf("item region X = %d, want 17", r.X)
	}
	if r.Y <= 1 {
		t.Errorf("item region Y = %d, want the box vertically centred", r.Y)
	}

	s.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	s.View()
	if r := regionFor(t, s, KindItem, 0); r.X != 2 || r.W != 36 {
		t.Errorf("narrow screen region = %+v, want X=2 W=36", r)
	}
}
