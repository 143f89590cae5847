// SPDX-License-Identifier: MIT
// Package: pairsum/internal/cli
//
// output.go — exit codes, result rendering and the logger.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Exit codes for the pairsum command.
const (
	ExitSuccess      = 0 // Total printed
	ExitFailure      = 1 // Computation failed
	ExitCommandError = 2 // Bad flags or arguments
)

// ExitError carries the exit code Execute returns for a failed run:
// ExitCommandError for rejected flags, formats or positional arguments,
// ExitFailure when aggregate.Run reports an error.
type ExitError struct {
	Code    int    // ExitFailure or ExitCommandError
	Message string // what pairsum was doing, e.g. "computation failed"
	Err     error  // cobra or aggregate error, may be nil
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

// NewExitError reports a usage problem pairsum detected itself, such as an
// unknown --format value.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code to an error from cobra's argument and
// flag parsing or from the aggregation.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps an error returned by the root command to a process exit
// code. Errors without an ExitError in their chain count as ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ResultView is the structured (json/yaml) form of a run.
type ResultView struct {
	RunID     string   `json:"run_id" yaml:"run_id"`
	Bound     int      `json:"bound" yaml:"bound"`
	Pairs     int64    `json:"pairs" yaml:"pairs"`
	Total     int64    `json:"total" yaml:"total"`
	ElapsedMS *float64 `json:"elapsed_ms,omitempty" yaml:"elapsed_ms,omitempty"`
}

// OutputFormatter writes the result in the configured format.
type OutputFormatter struct {
	Format string
	Group  bool
	Writer io.Writer
}

// Write renders v. Text output is the total alone so stdout stays a single integer.
func (f *OutputFormatter) Write(v ResultView) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	if f.Group {
		_, err := message.NewPrinter(language.English).Fprintf(f.Writer, "%d\n", v.Total)
		return err
	}
	_, err := fmt.Fprintln(f.Writer, v.Total)
	return err
}

// newLogger returns a text slog logger on w; debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
