package commands

import (
	"github.com/ByteMirror/journal/config"
	"github.com/ByteMirror/journal/journal"
	"github.com/ByteMirror/journal/log"

	"github.com/spf13/cobra"
)

// options holds flags shared by every journal subcommand.
type options struct {
	journalFile string
}

// Register adds the journal subcommands and the --journal-file flag to root.
func Register(root *cobra.Command) {
	opts := &options{}
	root.PersistentFlags().StringVarP(&opts.journalFile, "journal-file", "j", "",
		"Journal file to use (defaults to default_journal in ~/.journal/"+config.ConfigFileName+")")

	root.AddCommand(newAddCmd(opts))
	root.AddCommand(newDoneCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newCheckCmd(opts))
}

// run loads the config, resolves the journal and calls fn with a store
// writing to the command's output.
func (o *options) run(cmd *cobra.Command, fn func(store *journal.Store, cfg *config.Config) error) error {
	log.Initialize()
	defer log.Close()

	cfg := config.LoadConfig()
	path, err := config.ResolveJournalPath(o.journalFile, cfg)
	if err != nil {
		log.ErrorLog.Printf("%v", err)
		return err
	}

	store := journal.NewStore(path)
	store.Out = cmd.OutOrStdout()

	if err := fn(store, cfg); err != nil {
		log.ErrorLog.Printf("%s %s: %v", cmd.Name(), path, err)
		return err
	}
	return nil
}
