package main

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	flagStrategy = kingpin.Flag("strategy", `branch rule for a midpoint above the target: "reference" keeps high = mid + 1, "corrected" uses high = mid - 1`).Default("reference").Enum("reference", "corrected")
	flagLogLevel = kingpin.Flag("log-level", `level of diagnostics written to stderr`).Default("warn").Enum("debug", "info", "warn", "error")
)
