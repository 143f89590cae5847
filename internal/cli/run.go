// SPDX-License-Identifier: MIT
// Package: pairsum/internal/cli
//
// run.go — runs the aggregation for the root command.

package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairsum/aggregate"
	"github.com/katalvlaran/pairsum/pairs"
)

func runPairSum(opts *RootOptions, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	runID := uuid.NewString()

	logger.Debug("computing pair sum",
		"run_id", runID,
		"bound", pairs.DefaultBound,
	)

	rep, err := aggregate.Run(pairs.DefaultBound)
	if err != nil {
		logger.Error("pair sum failed", "run_id", runID, "error", err)
		return WrapExitError(ExitFailure, "computation failed", err)
	}

	logger.Debug("pair sum computed",
		"run_id", runID,
		"pairs", rep.Pairs,
		"total", rep.Total,
	)

	view := ResultView{
		RunID: runID,
		Bound: rep.Bound,
		Pairs: rep.Pairs,
		Total: rep.Total,
	}
	if opts.Time {
		ms := float64(rep.Elapsed.Microseconds()) / 1000
		if opts.Format == "text" {
			logger.Info("elapsed", "run_id", runID, "duration", rep.Elapsed)
		} else {
			view.ElapsedMS = &ms
		}
	}

	formatter := &OutputFormatter{
		Format: opts.Format,
		Group:  opts.Group,
		Writer: cmd.OutOrStdout(),
	}
	return formatter.Write(view)
}
