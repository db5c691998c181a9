package commands

import (
	"strings"

	"github.com/ByteMirror/journal/config"
	"github.com/ByteMirror/journal/journal"

	"github.com/spf13/cobra"
)

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to the end of the journal",
		Long: `Add a task to the end of the journal.
All arguments are joined with spaces, so quoting the text is optional.
The journal file is created if it does not exist yet.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := journal.NewTask(strings.Join(args, " "))
			return opts.run(cmd, func(store *journal.Store, _ *config.Config) error {
				return store.AddTask(task)
			})
		},
	}
}
