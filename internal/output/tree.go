package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/whiptail/pkg/dialog"
)

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth    int                              // 0 = unlimited
	ShowClasses bool                             // Whether to show ".class" suffixes
	ShowFlags   bool                             // Whether to show declared focus/active flags
	Marker      func(*dialog.Node) dialog.Marker // Derived state to mark rows with, may be nil
	LabelWidth  int                              // Truncate labels to this width, 0 = no limit
}

// markerMark returns a marker indicator symbol
func markerMark(m dialog.Marker) string {
	switch m {
	case dialog.MarkerFocus:
		return " \u25cf" // ●
	case dialog.MarkerActive:
		return " \u25cb" // ○
	default:
		return ""
	}
}

// RenderTree renders a dialog structure including its root
func RenderTree(root *dialog.Node, opts TreeRenderOptions) string {
	if root == nil {
		return ""
	}
	lines := append([]string{nodeLine(root, opts)}, renderTreeNodes(root.Children(), opts, 1, "")...)
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders nodes and returns individual lines
func RenderTreeLines(nodes []*dialog.Node, opts TreeRenderOptions) []string {
	return renderTreeNodes(nodes, opts, 0, "")
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []*dialog.Node, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "\u251c\u2500\u2500 " // ├──
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
		}

		lines = append(lines, prefix+connector+nodeLine(node, opts))

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "\u2502   " // │
		}

		lines = append(lines, renderTreeNodes(node.Children(), opts, depth+1, childPrefix)...)
	}

	return lines
}

// nodeLine formats one node as kind[index]#id.class "label" flags mark.
func nodeLine(n *dialog.Node, opts TreeRenderOptions) string {
	var b strings.Builder
	b.WriteString(n.Kind().String())
	if n.Index() >= 0 {
		fmt.Fprintf(&b, "[%d]", n.Index())
	}
	if n.ID() != "" {
		b.WriteString("#" + n.ID())
	}
	if opts.ShowClasses {
		for _, c := range n.Classes() {
			b.WriteString("." + c)
		}
	}

	if label := n.PlainLabel(); label != "" {
		label = strings.Join(strings.Fields(label), " ")
		if opts.LabelWidth > 0 {
			label = ansi.Truncate(label, opts.LabelWidth, "…")
		}
		fmt.Fprintf(&b, " %q", label)
	}

	if opts.ShowFlags {
		var flags []string
		if n.DeclaredFocus() {
			flags = append(flags, "focus")
		}
		if n.DeclaredActive() {
			flags = append(flags, "active")
		}
		if len(flags) > 0 {
			b.WriteString(" [" + strings.Join(flags, ",") + "]")
		}
	}

	if opts.Marker != nil {
		b.WriteString(markerMark(opts.Marker(n)))
	}
	return b.String()
}
