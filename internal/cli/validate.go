package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roach88/kquery/internal/document"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Source string `json:"source"`
	Valid  bool   `json:"valid"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a document builds",
		Long: `Load a query document and check every field code, operator, value,
and sort key without printing the query.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	doc, err := document.LoadFile(path)
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("Loaded %d clause(s), %d sort key(s) from %s", len(doc.Where), len(doc.OrderBy), path)

	if _, err := doc.Build(); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Source: path, Valid: true})
	}
	return formatter.Success(formatter.paint(color.FgGreen).Sprintf("✓ %s is valid", path))
}
