package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roach88/kquery/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	App      string
	Limit    int
	ID       string // show one entry instead of listing
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded queries",
		Long: `List queries recorded with "build --record", oldest first.

With --limit only the most recent entries are shown. With --id only the
entry with that id is shown.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "journal database path (required)")
	cmd.Flags().StringVar(&opts.App, "app", "", "only show entries for this app id")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show at most this many recent entries (0 = all)")
	cmd.Flags().StringVar(&opts.ID, "id", "", "show the entry with this id")
	cmd.MarkFlagsMutuallyExclusive("id", "app")
	cmd.MarkFlagsMutuallyExclusive("id", "limit")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	// Opening would create an empty journal; a missing file is a user error.
	if _, err := os.Stat(opts.Database); errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(&journalError{err: fmt.Errorf("journal not found: %s", opts.Database)})
	}
	if opts.Limit < 0 {
		return formatter.Fail(fmt.Errorf("--limit must be >= 0, got %d", opts.Limit))
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(&journalError{err: fmt.Errorf("open journal: %w", err)})
	}
	defer st.Close()

	if opts.ID != "" {
		return showEntry(formatter, st, opts.ID, cmd)
	}

	entries, err := st.List(cmd.Context(), store.ListOptions{App: opts.App, Limit: opts.Limit})
	if err != nil {
		return formatter.Fail(&journalError{err: err})
	}

	if formatter.Format == "json" {
		return formatter.Success(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "No recorded queries")
		return nil
	}
	for _, e := range entries {
		printEntry(formatter, e)
	}
	return nil
}

func showEntry(formatter *OutputFormatter, st *store.Store, id string, cmd *cobra.Command) error {
	entry, err := st.Get(cmd.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return formatter.Fail(&journalError{code: ErrCodeEntryNotFound, err: err})
	}
	if err != nil {
		return formatter.Fail(&journalError{err: err})
	}

	if formatter.Format == "json" {
		return formatter.Success(entry)
	}
	fmt.Fprintf(formatter.Writer, "id: %s\n", entry.ID)
	printEntry(formatter, entry)
	return nil
}

func printEntry(formatter *OutputFormatter, e store.Entry) {
	app := e.App
	if app == "" {
		app = "-"
	}
	formatter.paint(color.FgCyan).Fprintf(formatter.Writer, "%d", e.Seq)
	fmt.Fprintf(formatter.Writer, "\t%s\tapp=%s\t%s\n", e.CreatedAt, app, e.Source)
	fmt.Fprintf(formatter.Writer, "  %s\n", e.Query)
}
