// SPDX-License-Identifier: MIT
// Package: pairsum/internal/cli
//
// root.go — the pairsum cobra command and Execute.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// RootOptions holds the flags of the pairsum command.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Time    bool
	Group   bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the pairsum command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pairsum",
		Short: "Sum GCD+LCM over every pair in [1,1000]",
		Long: `Sum GCD(i,j) + LCM(i,j) over every pair of integers 1 <= i < j <= 1000
and print the total.

With no flags the output is the bare integer followed by a newline.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return WrapExitError(ExitCommandError, "invalid arguments", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPairSum(opts, cmd)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flag", err)
	})

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.Flags().BoolVar(&opts.Time, "time", false, "report elapsed computation time")
	cmd.Flags().BoolVar(&opts.Group, "group", false, "group digits of the total in text output")

	return cmd
}

// Execute runs the command with args and returns the process exit code.
// Errors are written to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
