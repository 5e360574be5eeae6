package cmd

import (
	"fmt"

	"github.com/marcus/whiptail/internal/config"
	"github.com/marcus/whiptail/internal/output"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Print the structure a dialog file builds, without a terminal",
	Long: `Print the structure a dialog file builds, without a terminal.

Rows are marked with their state when the dialog opens: ● focused, ○ active.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := config.LoadDefinition(args[0])
		if err != nil {
			return err
		}

		var res Result
		screen, err := newDialog(d.WithSettings(settings).Config(""), settings, &res)
		if err != nil {
			return err
		}
		w := screen.Widget(mainSlot)

		depth, _ := cmd.Flags().GetInt("depth")
		classes, _ := cmd.Flags().GetBool("classes")
		tree := output.RenderTree(w.Get(), output.TreeRenderOptions{
			MaxDepth:    depth,
			ShowClasses: classes,
			ShowFlags:   true,
			Marker:      w.Marker,
			LabelWidth:  60,
		})
		fmt.Fprintln(cmd.OutOrStdout(), tree)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Int("depth", 0, "maximum depth to print (0 = unlimited)")
	inspectCmd.Flags().Bool("classes", false, "show node classes")
}
