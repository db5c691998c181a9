package commands

import (
	"github.com/ByteMirror/journal/config"
	"github.com/ByteMirror/journal/journal"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks with their positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(store *journal.Store, cfg *config.Config) error {
				name := formatFlag
				if name == "" {
					name = cfg.ListFormat
				}
				format, err := journal.ParseFormat(name)
				if err != nil {
					return err
				}
				return store.ListTasksFormat(format)
			})
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "",
		"Output format: text, json or yaml (defaults to list_format in the config)")
	return cmd
}
