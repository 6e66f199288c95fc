package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Amankrah/green-means-go-sub001/internal/config"
	"github.com/Amankrah/green-means-go-sub001/internal/store"
)

var (
	sessionsDBOverride string
	sessionsJSONOutput bool
	sessionsLimit      int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect wizard sessions",
	Long:  "List persisted wizard sessions without running the server.",
}

func init() {
	sessionsCmd.PersistentFlags().StringVar(&sessionsDBOverride, "db", "",
		"Database path (overrides config and GREENMEANS_DB_PATH)")
	sessionsCmd.PersistentFlags().BoolVar(&sessionsJSONOutput, "json", false,
		"Output in JSON format")

	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 50,
		"Maximum number of sessions to list (most recent first)")

	sessionsCmd.AddCommand(sessionsListCmd)
}

// resolveStore opens the session store from config with an optional
// --db override.
func resolveStore() (*store.SQLiteStore, error) {
	dbPath := sessionsDBOverride
	if dbPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		dbPath = cfg.Database.Path
	}

	return store.NewSQLiteStore(dbPath)
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	db, err := resolveStore()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.ListSessions(ctx, sessionsLimit)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	if sessionsJSONOutput {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"sessions": sessions,
			"count":    len(sessions),
		})
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTEP\tCOMPLETE\tUPDATED")
	for _, s := range sessions {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n",
			s.ID, s.Step, s.Complete, s.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}
