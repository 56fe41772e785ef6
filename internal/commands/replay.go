package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/auditlog"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/config"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/eventlog"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/gitops"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/log"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/reconcile"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

func newReplayCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "replay <events.jsonl>",
		Short: "Apply an event log to the ledger through the reconciliation engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(ledgerDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runReplay(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&ledgerDir, "ledger", ".", "ledger directory")

	return cmd
}

func runReplay(ledgerRoot, eventsPath string) error {
	cfg, err := config.Load(filepath.Join(ledgerRoot, "wealthtrack.yaml"))
	if err != nil {
		return err
	}
	logger := log.New(log.ParseLevel(cfg.Logging.Level), "replay")

	scope, err := store.Load(ledgerRoot)
	if err != nil {
		return err
	}

	f, err := os.Open(eventsPath)
	if err != nil {
		return fmt.Errorf("opening event log: %w", err)
	}
	events, err := eventlog.Read(f)
	f.Close()
	if err != nil {
		return err
	}

	engine := reconcile.NewEngine(logger.WithComponent("reconcile"))

	var entries []auditlog.Entry
	for i, e := range events {
		if err := engine.Apply(scope, e); err != nil {
			return fmt.Errorf("event %d (%s): %w", i+1, e.Kind(), err)
		}
		if err := projectEntity(scope, e); err != nil {
			return fmt.Errorf("event %d (%s): %w", i+1, e.Kind(), err)
		}
		entries = append(entries, auditlog.Entry{
			Timestamp: time.Now().UTC(),
			Kind:      string(e.Kind()),
			EntityID:  event.EntityID(e).String(),
		})
	}

	if err := store.Save(ledgerRoot, scope); err != nil {
		return err
	}

	// Snapshot the ledger before writing audit rows so each row can carry
	// the commit hash it belongs to.
	hash := ""
	if cfg.Git.AutoCommit && gitops.IsRepo(ledgerRoot) {
		changed, err := gitops.HasChanges(ledgerRoot)
		if err != nil {
			return err
		}
		if changed {
			message := fmt.Sprintf("replay: apply %d events", len(events))
			hash, err = gitops.CommitAll(ledgerRoot, message, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
			if err != nil {
				return err
			}
		}
	}

	for i := range entries {
		entries[i].CommitHash = hash
	}
	if len(entries) > 0 {
		if err := auditlog.Append(ledgerRoot, entries); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
		}
	}

	fmt.Printf("Applied %d events to %s\n", len(events), ledgerRoot)
	return nil
}
