// Command logtime prints the logarithmic-time demonstration: a narrated
// binary search over 1,000 and then 1,000,000 elements, followed by how
// little the step count grew.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/charlesakinnurun/logarithmic-time/bsearch"
	"github.com/charlesakinnurun/logarithmic-time/demo"
	"github.com/charlesakinnurun/logarithmic-time/logger"
)

func main() {
	kingpin.Parse()

	level, err := logger.ParseLevel(*flagLogLevel)
	if err != nil {
		logger.Fatal("bad log level", zap.Error(err))
	}
	logger.SetLevel(level)
	defer logger.Sync()

	strategy, err := bsearch.ParseStrategy(*flagStrategy)
	if err != nil {
		logger.Fatal("bad strategy", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting demonstration", zap.Stringer("strategy", strategy))

	rep, err := demo.Run(os.Stdout,
		bsearch.WithContext(ctx),
		bsearch.WithStrategy(strategy),
		bsearch.WithLogger(logger.L()),
	)
	if err != nil {
		logger.Fatal("demonstration failed", zap.Error(err))
	}

	logger.Info("demonstration complete",
		zap.Int("small_steps", rep.Small.Outcome.Steps),
		zap.Int("large_steps", rep.Large.Outcome.Steps),
		zap.Int("multiplier", rep.Multiplier),
		zap.Int("additional_steps", rep.AdditionalSteps),
	)
}
