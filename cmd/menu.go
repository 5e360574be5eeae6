package cmd

import (
	"strings"

	"github.com/marcus/whiptail/internal/config"
	"github.com/spf13/cobra"
)

var defaultButtons = []string{"Ok", "Cancel"}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show a menu built from flags",
	Long: `Show a menu built from flags.

Each --item is LABEL or LABEL=ID; the id is what gets printed on selection.
Buttons default to Ok and Cancel.`,
	Example: `  whiptail menu --title "Shell" --item bash --item "Z shell=zsh"
  whiptail menu --title "Shell" --item bash --emit-yaml > shell.yml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := menuDefinition(cmd)
		if err != nil {
			return err
		}

		if emit, _ := cmd.Flags().GetBool("emit-yaml"); emit {
			return d.WriteYAML(cmd.OutOrStdout())
		}
		return runDialog(d.WithSettings(settings).Config(""), defaultStreams())
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.Flags().String("title", "", "dialog title")
	menuCmd.Flags().String("text", "", "text shown above the items")
	menuCmd.Flags().Bool("markdown", false, "render --text as Markdown")
	menuCmd.Flags().StringArray("item", nil, "menu item as LABEL or LABEL=ID (repeatable)")
	menuCmd.Flags().StringArray("button", nil, "footer button label (repeatable, default Ok and Cancel)")
	menuCmd.Flags().Int("width", 0, "box width in columns")
	menuCmd.Flags().Int("height", 0, "maximum item rows shown at once")
	menuCmd.Flags().Bool("type-ahead", false, "jump to items by typing")
	menuCmd.Flags().Bool("hints", false, "show key hints below the box")
	menuCmd.Flags().Bool("emit-yaml", false, "print the dialog as yaml instead of showing it")
}

// menuDefinition turns the menu flags into a validated definition.
func menuDefinition(cmd *cobra.Command) (config.Definition, error) {
	fl := cmd.Flags()
	title, _ := fl.GetString("title")
	text, _ := fl.GetString("text")
	markdown, _ := fl.GetBool("markdown")
	items, _ := fl.GetStringArray("item")
	buttons, _ := fl.GetStringArray("button")
	width, _ := fl.GetInt("width")
	height, _ := fl.GetInt("height")
	typeAhead, _ := fl.GetBool("type-ahead")
	hints, _ := fl.GetBool("hints")

	if len(buttons) == 0 {
		buttons = defaultButtons
	}

	d := config.Definition{
		Title:      title,
		Text:       text,
		Width:      width,
		MaxVisible: height,
		TypeAhead:  typeAhead,
		Hints:      hints,
	}
	if markdown {
		d.TextFormat = "markdown"
	}
	for _, it := range items {
		d.Items = append(d.Items, parseItem(it))
	}
	for _, b := range buttons {
		d.Footer = append(d.Footer, config.EntryDef{Label: b})
	}

	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// parseItem splits LABEL=ID at the last '='.
func parseItem(s string) config.EntryDef {
	if i := strings.LastIndex(s, "="); i > 0 && i < len(s)-1 {
		return config.EntryDef{Label: s[:i], ID: s[i+1:]}
	}
	return config.EntryDef{Label: s}
}
