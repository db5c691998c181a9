package commands

import (
	"errors"
	"fmt"

	"github.com/ByteMirror/journal/config"
	"github.com/ByteMirror/journal/journal"
	"github.com/ByteMirror/journal/ui"

	"github.com/spf13/cobra"
)

var errJournalInvalid = errors.New("journal failed validation")

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the journal file without changing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(store *journal.Store, _ *config.Config) error {
				result, err := journal.Check(store.Path())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if result.Valid {
					fmt.Fprintln(out, ui.Render(out, ui.SuccessStyle, fmt.Sprintf("journal OK (%d tasks)", result.Tasks)))
					return nil
				}
				for _, problem := range result.Problems {
					fmt.Fprintln(out, ui.Render(out, ui.WarningStyle, problem.String()))
				}
				return fmt.Errorf("%w: %d problem(s) in %s", errJournalInvalid, len(result.Problems), store.Path())
			})
		},
	}
}
