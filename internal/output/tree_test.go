package output

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marcus/whiptail/pkg/dialog"
)

func sampleDialog() *dialog.Node {
	return dialog.Build(dialog.Config{
		Selector: "#main",
		Title:    "Shell",
		Items: []dialog.Entry{
			{Label: "bash", ID: "bash"},
			{Label: "zsh", Class: "fancy", Active: true},
		},
		Footer: []dialog.Entry{{Label: "Ok"}},
	})
}

func TestRenderTreeLines_Empty(t *testing.T) {
	lines := RenderTreeLines(nil, TreeRenderOptions{})
	if len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderTree_Nil(t *testing.T) {
	if got := RenderTree(nil, TreeRenderOptions{}); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderTree_Structure(t *testing.T) {
	got := strings.Split(RenderTree(sampleDialog(), TreeRenderOptions{ShowFlags: true}), "\n")
	want := []string{
		`container#main`,
		`├── header "Shell"`,
		`└── content`,
		`    ├── items`,
		`    │   ├── item[0]#bash "bash"`,
		`    │   └── item[1] "zsh" [active]`,
		`    └── footer`,
		`        └── button[0] "Ok"`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestRenderTree_MaxDepth(t *testing.T) {
	got := RenderTree(sampleDialog(), TreeRenderOptions{MaxDepth: 3})
	if strings.Contains(got, "item[") {
		t.Errorf("rows below max depth should be hidden:\n%s", got)
	}
	if !strings.Contains(got, "items") {
		t.Errorf("regions above max depth should be shown:\n%s", got)
	}
}

func TestRenderTree_Classes(t *testing.T) {
	got := RenderTree(sampleDialog(), TreeRenderOptions{ShowClasses: true})
	if !strings.Contains(got, "container#main.whiptail.container") {
		t.Errorf("expected root classes:\n%s", got)
	}
	if !strings.Contains(got, `item[1].item.fancy "zsh"`) {
		t.Errorf("expected item classes:\n%s", got)
	}
}

func TestRenderTree_Markers(t *testing.T) {
	root := sampleDialog()
	focused := root.Items()[0]
	marker := func(n *dialog.Node) dialog.Marker {
		switch {
		case n == focused:
			return dialog.MarkerFocus
		case n.Kind() == dialog.KindButton:
			return dialog.MarkerActive
		}
		return dialog.MarkerNone
	}

	got := RenderTree(root, TreeRenderOptions{Marker: marker})
	if !strings.Contains(got, `item[0]#bash "bash" ●`) {
		t.Errorf("expected focus mark:\n%s", got)
	}
	if !strings.Contains(got, `button[0] "Ok" ○`) {
		t.Errorf("expected active mark:\n%s", got)
	}
	if strings.Contains(got, `"zsh" ●`) || strings.Contains(got, `"zsh" ○`) {
		t.Errorf("unmarked row should have no symbol:\n%s", got)
	}
}

func TestRenderTree_LabelWidth(t *testing.T) {
	root := dialog.Build(dialog.Config{Items: []dialog.Entry{{Label: "a very long label indeed"}}})
	got := RenderTree(root, TreeRenderOptions{LabelWidth: 6})
	if !strings.Contains(got, `"a ver…"`) {
		t.Errorf("expected truncated label:\n%s", got)
	}
}
