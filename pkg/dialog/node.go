package dialog

import (
	"slices"

	"github.com/charmbracelet/x/ansi"
)

// Kind identifies the role of a Node in the built structure.
type Kind int

const (
	KindContainer Kind = iota
	KindHeader
	KindContent
	KindItems
	KindText
	KindItem
	KindFooter
	KindButton
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindHeader:
		return "header"
	case KindContent:
		return "content"
	case KindItems:
		return "items"
	case KindText:
		return "text"
	case KindItem:
		return "item"
	case KindFooter:
		return "footer"
	case KindButton:
		return "button"
	default:
		return "unknown"
	}
}

// Node is one element of the built dialog structure. Nodes are read-only
// once built; focus and active state live in the Controller, not here.
type Node struct {
	kind           Kind
	index          int
	id             string
	classes        []string
	label          string
	declaredFocus  bool
	declaredActive bool
	children       []*Node
}

// Kind returns the node's role.
func (n *Node) Kind() Kind { return n.kind }

// Index is the position of an item or button within its own collection.
// It is -1 for structural nodes.
func (n *Node) Index() int { return n.index }

// ID returns the configured identifier, if any.
func (n *Node) ID() string { return n.id }

// Label returns the markup label (title for the header, body for text nodes).
func (n *Node) Label() string { return n.label }

// PlainLabel returns the label with ANSI sequences removed.
func (n *Node) PlainLabel() string { return ansi.Strip(n.label) }

// Classes returns a copy of the node's class names.
func (n *Node) Classes() []string { return slices.Clone(n.classes) }

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool { return slices.Contains(n.classes, c) }

// DeclaredFocus reports the focus flag given in the configuration.
func (n *Node) DeclaredFocus() bool { return n.declaredFocus }

// DeclaredActive reports the active flag given in the configuration.
func (n *Node) DeclaredActive() bool { return n.declaredActive }

// Children returns the node's direct children.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Find returns every descendant of the given kind in document order.
func (n *Node) Find(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.kind == kind {
			out = append(out, c)
		}
		out = append(out, c.Find(kind)...)
	}
	return out
}

// Title returns the header label of a container node.
func (n *Node) Title() string {
	if h := n.Find(KindHeader); len(h) > 0 {
		return h[0].label
	}
	return ""
}

// Items returns the item rows of a container node.
func (n *Node) Items() []*Node { return n.Find(KindItem) }

// Buttons returns the footer rows of a container node.
func (n *Node) Buttons() []*Node { return n.Find(KindButton) }

// Build turns a configuration into a static dialog structure. It has no
// behaviour of its own; the Widget attaches a Controller to the result.
func Build(cfg Config) *Node {
	root := &Node{
		kind:    KindContainer,
		index:   -1,
		id:      slotName(cfg.Selector),
		classes: []string{"whiptail", "container"},
	}

	header := &Node{kind: KindHeader, index: -1, classes: []string{"header"}, label: cfg.Title}

	items := &Node{kind: KindItems, index: -1, classes: []string{"items"}}
	if cfg.Text != "" {
		items.children = append(items.children, &Node{kind: KindText, index: -1, label: cfg.Text})
	}
	for i, e := range cfg.Items {
		items.children = append(items.children, entryNode(KindItem, i, e))
	}

	footer := &Node{kind: KindFooter, index: -1, classes: []string{"footer"}}
	for i, e := range cfg.Footer {
		footer.children = append(footer.children, entryNode(KindButton, i, e))
	}

	content := &Node{kind: KindContent, index: -1, classes: []string{"content"}, children: []*Node{items, footer}}
	root.children = []*Node{header, content}
	return root
}

func entryNode(kind Kind, index int, e Entry) *Node {
	classes := []string{"item"}
	if e.Class != "" {
		classes = append(classes, e.Class)
	}
	return &Node{
		kind:           kind,
		index:          index,
		id:             e.ID,
		classes:        classes,
		label:          e.Label,
		declaredFocus:  e.Focus,
		declaredActive: e.Active,
	}
}
