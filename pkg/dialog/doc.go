// Package dialog provides a whiptail-style terminal dialog: a titled box
// with optional body text, a list of selectable items and a row of footer
// buttons, driven by arrow keys, Enter, Space, Escape or mouse clicks.
//
// # Quick Start
//
//	screen := dialog.NewScreen("main")
//	w, err := dialog.New(screen, dialog.Config{
//	    Selector: "#main",
//	    Title:    "Pick a shell",
//	    Items:    []dialog.Entry{{Label: "bash"}, {Label: "zsh"}},
//	    Footer:   []dialog.Entry{{Label: "Ok"}, {Label: "Cancel"}},
//	    OnSelect: func(item, button *dialog.Node) {
//	        chosen = item.PlainLabel()
//	        screen.RequestQuit()
//	    },
//	    OnClose: screen.RequestQuit,
//	    Focus:   true,
//	})
//	if err != nil {
//	    return err
//	}
//	_, err = tea.NewProgram(screen, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
//
// # Focus model
//
// A Controller owns the state: the focus mode (items or footer), the item
// index and the footer index. Up/Down move within the focused collection,
// Right enters the footer, Left/Up on the first button leave it. Moves clamp
// at the ends. Enter selects the current item (plus the current button when
// in the footer); Space selects only in the footer; Escape closes. Clicking
// a button enters the footer and selects in one step.
//
// Focus and active highlighting are derived from the controller at render
// time. The Focus/Active flags of an Entry are kept on the built Node as
// declared attributes and never move the controller, which always starts on
// the first item.
//
// # Screens
//
// A Screen is the host: it owns named slots, sends keys to one keyboard
// owner (the widget that last called Focus, else the newest one) and sends
// clicks to the widget that drew the region under the pointer.
package dialog
