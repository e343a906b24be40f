// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command sqrtdemo calculates the square root of a number two ways: with a fixed-point
// coprocessor operating on Q31 fractions, and with the standard library,
// and prints both results with three fractional digits.
//
// Usage:
//
//	sqrtdemo [-config sqrtdemo.yaml] [-json] [-v]
//
// Without a config file the square root of 0.25 is calculated.
// The coprocessor is emulated with exact integer arithmetic.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/avdva/qfrac/cordic"
	"github.com/avdva/qfrac/decfmt"
	"github.com/avdva/qfrac/internal/config"
	"github.com/avdva/qfrac/sqrtcmp"
)

const (
	title = "XMC MCU: MATH SQRT example"
	// clearScreen moves the cursor home and clears the terminal.
	clearScreen = "\x1b[2J\x1b[;H"
)

func main() {
	var configPath string
	var asJSON bool
	var verbose bool

	flag.StringVar(&configPath, "config", "", "yaml config file")
	flag.BoolVar(&asJSON, "json", false, "print the result as json")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("%v: %v", configPath, err)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if !cfg.InRange() {
		logger.Warn("input is outside [0, 1) and wraps around in Q31", slog.Float64("input", cfg.Input))
	}

	if err := run(cfg, logger, asJSON, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config, logger *slog.Logger, asJSON bool, w io.Writer) error {
	d := sqrtcmp.New(cordic.Exact{},
		sqrtcmp.WithCapacity(cfg.Capacity),
		sqrtcmp.WithFormatter(decfmt.Formatter{Boundary: cfg.Boundary}),
		sqrtcmp.WithLogger(logger))

	if asJSON {
		res, err := d.Run(cfg.Input, sqrtcmp.ReporterFunc(func(string) error { return nil }))
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if err := banner(w, cfg.EOL); err != nil {
		return err
	}
	_, err := d.Run(cfg.Input, sqrtcmp.NewLineReporter(w, cfg.EOL))
	return err
}

func banner(w io.Writer, eol string) error {
	rule := strings.Repeat("=", 63)
	_, err := fmt.Fprint(w, clearScreen, rule, eol, title, eol, rule, eol, "\n")
	return err
}
