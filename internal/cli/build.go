package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/kquery/internal/document"
	"github.com/roach88/kquery/internal/store"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Record string // journal path; empty disables recording
	App    string // app id stored with the journal entry
}

// BuildResult is the JSON payload of a successful build.
type BuildResult struct {
	Name   string       `json:"name,omitempty"`
	Source string       `json:"source"`
	Query  string       `json:"query"`
	Entry  *store.Entry `json:"entry,omitempty"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Build a query string from a document",
		Long: `Build a query string from a YAML, JSON, or CUE query document.

The query is printed to stdout. With --record the query is also appended
to a SQLite journal.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Record, "record", "", "append the query to this journal database")
	cmd.Flags().StringVar(&opts.App, "app", "", "app id stored with the journal entry")

	return cmd
}

func runBuild(opts *BuildOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	doc, err := document.LoadFile(path)
	if err != nil {
		return formatter.Fail(err)
	}

	q, err := doc.Build()
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("Built %s from %s", doc.Name, path)

	result := BuildResult{Name: doc.Name, Source: path, Query: q}

	if opts.Record != "" {
		entry, err := recordQuery(cmd, opts.Record, opts.App, path, q)
		if err != nil {
			return formatter.Fail(err)
		}
		result.Entry = &entry
		formatter.VerboseLog("Recorded seq %d (%s) in %s", entry.Seq, entry.ID, opts.Record)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(q)
}

func recordQuery(cmd *cobra.Command, dbPath, app, source, q string) (store.Entry, error) {
	slog.Debug("opening journal", "path", dbPath)
	st, err := store.Open(dbPath)
	if err != nil {
		return store.Entry{}, &journalError{err: fmt.Errorf("open journal: %w", err)}
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing journal", "error", closeErr)
		}
	}()

	entry, err := st.Record(cmd.Context(), app, source, q)
	if err != nil {
		return store.Entry{}, &journalError{err: err}
	}
	return entry, nil
}
