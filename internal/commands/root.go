package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "wealthtrack",
		Short:   "Personal finance ledger with event-driven balance reconciliation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReplayCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}
