package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/uncertain/internal/logging"
	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/internal/worksheet"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("uncertain", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "", "Worksheet format (yaml, toml, json); inferred from the extension by default")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	logLevel := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	maxSteps := fs.Int("max-steps", 0, "Reject worksheets with more steps (0 = unlimited)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: uncertain [flags] <worksheet>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	logger, err := logging.New(logging.CLIConfig(*logLevel))
	if err != nil {
		fmt.Fprintf(stderr, "uncertain: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	var f worksheet.Format
	if *format != "" {
		f, err = worksheet.ParseFormat(*format)
	} else {
		f, err = worksheet.FormatFromPath(path)
	}
	if err != nil {
		fmt.Fprintf(stderr, "uncertain: %v\n", err)
		return 2
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "uncertain: %v\n", err)
		return 1
	}
	logger.Debug("worksheet loaded", zap.String("path", path), zap.String("format", string(f)), zap.Int("bytes", len(data)))

	sheet, err := worksheet.Decode(data, f)
	if err != nil {
		fmt.Fprintf(stderr, "uncertain: %v\n", err)
		return 1
	}

	results, err := worksheet.Evaluate(context.Background(), sheet, worksheet.Limits{MaxSteps: *maxSteps})
	if err != nil {
		logger.Debug("evaluation failed", zap.Error(err))
		fmt.Fprintf(stderr, "uncertain: %v\n", err)
		return 1
	}

	if *asJSON {
		out := make([]types.QuantityData, len(results))
		for i, r := range results {
			out[i] = types.QuantityData{
				Name:        r.Name,
				Value:       r.Quantity.Value(),
				Uncertainty: r.Quantity.Uncertainty(),
				Text:        r.Quantity.String(),
			}
		}
		b, err := sonic.ConfigDefault.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "uncertain: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(b))
		return 0
	}

	for _, r := range results {
		fmt.Fprintf(stdout, "%s = %s\n", r.Name, r.Quantity)
	}
	return 0
}
