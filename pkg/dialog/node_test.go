package dialog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildStructure(t *testing.T) {
	root := Build(Config{
		Selector: "#main",
		Title:    "Title",
		Text:     "Intro",
		Items: []Entry{
			{Label: "One", ID: "one"},
			{Label: "Two", Class: "accent", Active: true},
		},
		Footer: []Entry{{Label: "Ok", Focus: true}},
	})

	if root.Kind() != KindContainer || root.ID() != "main" {
		t.Fatalf("root = %s %q, want container main", root.Kind(), root.ID())
	}
	if !root.HasClass("whiptail") || !root.HasClass("container") {
		t.Errorf("root classes = %v", root.Classes())
	}
	if root.Title() != "Title" {
		t.Errorf("Title = %q", root.Title())
	}

	var kinds []Kind
	for _, c := range root.Children() {
		kinds = append(kinds, c.Kind())
	}
	if diff := cmp.Diff([]Kind{KindHeader, KindContent}, kinds); diff != "" {
		t.Errorf("root children (-want +got):\n%s", diff)
	}

	region := root.Find(KindItems)
	if len(region) != 1 {
		t.Fatalf("items regions = %d, want 1", len(region))
	}
	rows := region[0].Children()
	if rows[0].Kind() != KindText || rows[0].Label() != "Intro" {
		t.Errorf("first items child = %s %q, want the intro text", rows[0].Kind(), rows[0].Label())
	}

	items := root.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	// Index counts items only, not the intro text before them.
	if items[0].Index() != 0 || items[1].Index() != 1 {
		t.Errorf("item indices = %d, %d", items[0].Index(), items[1].Index())
	}
	if items[0].ID() != "one" {
		t.Errorf("item 0 id = %q", items[0].ID())
	}
	if diff := cmp.Diff([]string{"item", "accent"}, items[1].Classes()); diff != "" {
		t.Errorf("item 1 classes (-want +got):\n%s", diff)
	}
	if !items[1].DeclaredActive() || items[1].DeclaredFocus() {
		t.Errorf("item 1 declared flags wrong")
	}

	buttons := root.Buttons()
	if len(buttons) != 1 || buttons[0].Kind() != KindButton || !buttons[0].DeclaredFocus() {
		t.Errorf("buttons = %+v", buttons)
	}
}

func TestBuildWithoutOptionalParts(t *testing.T) {
	root := Build(Config{Selector: "main", Title: "Bare"})

	if len(root.Items()) != 0 || len(root.Buttons()) != 0 {
		t.Error("expected no rows")
	}
	if len(root.Find(KindText)) != 0 {
		t.Error("no text node expected without body text")
	}
	if len(root.Find(KindFooter)) != 1 {
		t.Error("footer region should exist even when empty")
	}
}

func TestPlainLabel(t *testing.T) {
	root := Build(Config{Items: []Entry{{Label: "\x1b[1mBold\x1b[0m"}}})
	if got := root.Items()[0].PlainLabel(); got != "Bold" {
		t.Errorf("PlainLabel = %q, want Bold", got)
	}
}
