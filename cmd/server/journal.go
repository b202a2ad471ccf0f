package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jengzang/sendnow-backend-go/internal/database"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"github.com/jengzang/sendnow-backend-go/internal/repository"
	"github.com/spf13/cobra"
)

var (
	journalKind  string
	journalLimit int
	configForce  bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the submission journal",
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journaled submissions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to --config",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	journalListCmd.Flags().StringVar(&journalKind, "kind", "", "filter by kind: contact or newsletter")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum entries to show")
	journalCmd.AddCommand(journalListCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runJournalList(cmd *cobra.Command, args []string) error {
	if !cfg.Journal.Enabled {
		return errors.New("the submission journal is disabled; set journal.enabled or JOURNAL_PATH")
	}
	switch models.SubmissionKind(journalKind) {
	case "", models.KindContact, models.KindNewsletter:
	default:
		return fmt.Errorf("unknown kind %q", journalKind)
	}

	ctx := cmd.Context()
	db, err := database.Open(ctx, database.Config{Path: cfg.Journal.Path}, logger.Named("database"))
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewSubmissionRepository(db)
	kind := models.SubmissionKind(journalKind)
	subs, err := repo.List(ctx, models.SubmissionFilter{Kind: kind, Limit: journalLimit})
	if err != nil {
		return err
	}
	total, err := repo.Count(ctx, kind)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tKIND\tEMAIL\tNAME\tMESSAGE")
	for _, s := range subs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.CreatedAt.Format(time.RFC3339), s.Kind, s.Email, s.Name, preview(s.Message, 40))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d submissions\n", len(subs), total)
	return nil
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return fmt.Errorf("%s already exists; use --force to overwrite", configPath)
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}
