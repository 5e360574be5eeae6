package config

import (
	"fmt"
	"io"

	"github.com/marcus/whiptail/pkg/dialog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EntryDef is an item or button in a dialog definition file.
type EntryDef struct {
	Label  string `mapstructure:"label" yaml:"label"`
	ID     string `mapstructure:"id" yaml:"id,omitempty"`
	Class  string `mapstructure:"class" yaml:"class,omitempty"`
	Focus  bool   `mapstructure:"focus" yaml:"focus,omitempty"`
	Active bool   `mapstructure:"active" yaml:"active,omitempty"`
}

// Definition is a dialog described in a yaml, json or toml file.
type Definition struct {
	Title      string     `mapstructure:"title" yaml:"title"`
	Text       string     `mapstructure:"text" yaml:"text,omitempty"`
	TextFormat string     `mapstructure:"text-format" yaml:"text-format,omitempty"`
	Items      []EntryDef `mapstructure:"items" yaml:"items,omitempty"`
	Footer     []EntryDef `mapstructure:"footer" yaml:"footer,omitempty"`
	Width      int        `mapstructure:"width" yaml:"width,omitempty"`
	MaxVisible int        `mapstructure:"max-visible" yaml:"max-visible,omitempty"`
	TypeAhead  bool       `mapstructure:"type-ahead" yaml:"type-ahead,omitempty"`
	Hints      bool       `mapstructure:"hints" yaml:"hints,omitempty"`
}

// LoadDefinition reads and validates a dialog definition. The format
// follows the file extension.
func LoadDefinition(path string) (Definition, error) {
	var d Definition

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return d, fmt.Errorf("read dialog %s: %w", path, err)
	}
	if err := v.Unmarshal(&d); err != nil {
		return d, fmt.Errorf("decode dialog %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// Validate reports every structural problem at once.
func (d Definition) Validate() error {
	verr := &ValidationError{Source: "dialog"}

	if d.Title == "" {
		verr.Add(fmt.Errorf("title is required"))
	}
	if len(d.Items) == 0 && len(d.Footer) == 0 {
		verr.Add(fmt.Errorf("at least one item or footer button is required"))
	}
	switch dialog.TextFormat(d.TextFormat) {
	case "", dialog.TextPlain, dialog.TextMarkdown:
	default:
		verr.Add(fmt.Errorf("text-format %q must be plain or markdown", d.TextFormat))
	}
	for i, e := range d.Items {
		if e.Label == "" {
			verr.Add(fmt.Errorf("items[%d]: label is required", i))
		}
	}
	for i, e := range d.Footer {
		if e.Label == "" {
			verr.Add(fmt.Errorf("footer[%d]: label is required", i))
		}
	}
	if d.Width < 0 {
		verr.Add(fmt.Errorf("width must not be negative"))
	}
	if d.MaxVisible < 0 {
		verr.Add(fmt.Errorf("max-visible must not be negative"))
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// WithSettings fills options the definition leaves unset from s.
func (d Definition) WithSettings(s Settings) Definition {
	if d.Width == 0 {
		d.Width = s.Width
	}
	if d.MaxVisible == 0 {
		d.MaxVisible = s.MaxVisible
	}
	d.TypeAhead = d.TypeAhead || s.TypeAhead
	d.Hints = d.Hints || s.Hints
	return d
}

// Config converts the definition into a widget configuration mounted at
// selector. Callbacks are left for the caller.
func (d Definition) Config(selector string) dialog.Config {
	return dialog.Config{
		Selector:   selector,
		Title:      d.Title,
		Text:       d.Text,
		TextFormat: dialog.TextFormat(d.TextFormat),
		Items:      entries(d.Items),
		Footer:     entries(d.Footer),
		Width:      d.Width,
		MaxVisible: d.MaxVisible,
		TypeAhead:  d.TypeAhead,
		Hints:      d.Hints,
	}
}

// WriteYAML encodes the definition as yaml.
func (d Definition) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode dialog: %w", err)
	}
	return enc.Close()
}

func entries(defs []EntryDef) []dialog.Entry {
	if len(defs) == 0 {
		return nil
	}
	out := make([]dialog.Entry, len(defs))
	for i, e := range defs {
		out[i] = dialog.Entry{
			Label:  e.Label,
			ID:     e.ID,
			Class:  e.Class,
			Focus:  e.Focus,
			Active: e.Active,
		}
	}
	return out
}
