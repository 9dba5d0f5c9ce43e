package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/Philanthropists/results/internal/logging"
	"github.com/Philanthropists/results/pkg/result"
)

var errFailedValues = errs.Class("map")

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map [values...]",
		Short: "Parse each value as an integer and multiply it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := mapValues(cmd.Context(), cmd.OutOrStdout(), args, cfg.Multiplier())
			if failed > 0 {
				return errFailedValues.New("%d of %d values failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().Int("multiplier", 1, "factor applied to every parsed value")

	return cmd
}

// parse wraps strconv.Atoi so that a bad input becomes an Error result.
func parse(s string) result.Of[int] {
	return result.FromFunc(func() (int, error) {
		return strconv.Atoi(s)
	})
}

// mapValues writes one line per input with the payloads of the mapped
// Result and returns how many inputs failed.
func mapValues(ctx context.Context, out io.Writer, args []string, multiplier int) int {
	log := logging.FromContext(ctx)
	defer func() { _ = log.Sync() }()

	start := time.Now()

	var failed int
	for _, arg := range args {
		r := result.Map(parse(arg), func(n int) int {
			return n * multiplier
		})

		if r.IsError() {
			failed++
			log.Warn("value failed", logging.String("input", arg), logging.Bool("ok", false), logging.Result("result", r))
		} else {
			log.Debug("value mapped", logging.String("input", arg), logging.Bool("ok", true), logging.Result("result", r))
		}

		fmt.Fprintf(out, "%s\t%v\n", arg, result.Collect(r))
	}

	log.Info("mapped values",
		logging.Int("count", len(args)),
		logging.Int("failures", failed),
		logging.Duration("elapsed", time.Since(start)),
	)

	return failed
}
