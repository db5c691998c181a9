package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ByteMirror/journal/commands"
	"github.com/ByteMirror/journal/config"
	"github.com/ByteMirror/journal/log"
	"github.com/ByteMirror/journal/ui"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
	rootCmd = &cobra.Command{
		Use:   "journal",
		Short: "journal - a command line task journal",
		Long: `journal keeps a list of short text tasks in a single JSON file.
Add tasks, list them with their positions and mark them done by position.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config and log paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Fprintf(cmd.OutOrStdout(), "Log: %s\n", log.FileName())

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of journal",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "journal version %s\n", version)
		},
	}
)

func init() {
	commands.Register(rootCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit status. Errors
// are reported on stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, ui.Render(stderr, ui.ErrorStyle, "Error: "+err.Error()))
		return 1
	}
	return 0
}
