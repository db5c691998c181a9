package commands

import (
	"fmt"
	"strconv"

	"github.com/ByteMirror/journal/config"
	"github.com/ByteMirror/journal/journal"

	"github.com/spf13/cobra"
)

func newDoneCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "done <position>",
		Short: "Remove a task by its position in the listing",
		Long: `Remove the task at the given 1-based position, as shown by list.
Every task after it moves up by one position.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", journal.ErrInvalidPosition, args[0])
			}
			return opts.run(cmd, func(store *journal.Store, _ *config.Config) error {
				return store.CompleteTask(position)
			})
		},
	}
}
