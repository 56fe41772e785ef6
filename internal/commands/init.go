package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/config"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/gitops"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new WealthTrack ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "ledger name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	// Write wealthtrack.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "wealthtrack.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write empty aggregate CSVs.
	if err := store.Save(dir, store.NewMemory()); err != nil {
		return fmt.Errorf("writing ledger files: %w", err)
	}

	// Write .gitignore.
	gitignore := "exports/\n.wealthtrack-cache/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Initialize git and create initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: Initialize "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized WealthTrack ledger at %s (%s)\n", dir, hash)
	return nil
}
