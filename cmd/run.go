package cmd

import (
	"github.com/marcus/whiptail/internal/config"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Show a dialog described in a yaml, json or toml file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := config.LoadDefinition(args[0])
		if err != nil {
			return err
		}
		logger.Debug("dialog file loaded", "path", args[0], "items", len(d.Items), "buttons", len(d.Footer))
		return runDialog(d.WithSettings(settings).Config(""), defaultStreams())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
