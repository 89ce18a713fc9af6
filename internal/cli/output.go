package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/roach88/kquery/internal/document"
	"github.com/roach88/kquery/query"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Query rejected (invalid field, operator, value, ...)
	ExitCommandError = 2 // Command error (unreadable document, journal unavailable, ...)
)

// CLI-level error codes. Document load errors keep their own E00x codes
// and query errors keep their INVALID_* codes.
const (
	ErrCodeGeneric       = "E000" // Generic/unknown error
	ErrCodeJournal       = "E010" // Journal open/read/write failed
	ErrCodeEntryNotFound = "E011" // No journal entry with the given id
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError (2) if the error is not an ExitError: flag
// parsing and argument count errors come from cobra unwrapped.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
	Color     bool // colorize text output
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "INVALID_OPERATOR", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// Text output prints data with fmt.Println.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	f.paint(color.FgRed, color.Bold).Fprintf(f.Writer, "Error [%s]:", code)
	fmt.Fprintf(f.Writer, " %s\n", message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Goes to ErrWriter when set so JSON output stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// paint returns a color that is a no-op unless f.Color is set.
func (f *OutputFormatter) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if f.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// Fail reports err through the formatter and returns the matching
// ExitError. Load errors and journal errors exit 2, rejected queries exit 1.
func (f *OutputFormatter) Fail(err error) error {
	code, message, details, exit := classify(err)
	_ = f.Error(code, message, details)
	return WrapExitError(exit, code, err)
}

func classify(err error) (code, message string, details any, exit int) {
	var loadErr *document.LoadError
	if errors.As(err, &loadErr) {
		if loadErr.Pos.IsValid() {
			details = map[string]any{
				"file":   loadErr.Pos.Filename(),
				"line":   loadErr.Pos.Line(),
				"column": loadErr.Pos.Column(),
			}
		}
		return loadErr.Code, loadErr.Message, details, ExitCommandError
	}

	var queryErr *query.Error
	if errors.As(err, &queryErr) {
		if queryErr.Value != "" {
			details = map[string]string{"value": queryErr.Value}
		}
		return string(queryErr.Code), err.Error(), details, ExitFailure
	}

	var journalErr *journalError
	if errors.As(err, &journalErr) {
		code := journalErr.code
		if code == "" {
			code = ErrCodeJournal
		}
		return code, err.Error(), nil, ExitCommandError
	}

	return ErrCodeGeneric, err.Error(), nil, ExitCommandError
}

// journalError marks failures of the SQLite journal. code defaults to
// ErrCodeJournal.
type journalError struct {
	code string
	err  error
}

func (e *journalError) Error() string { return e.err.Error() }
func (e *journalError) Unwrap() error { return e.err }
