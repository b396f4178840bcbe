package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thai-numerals/pkg/thainum"
)

type options struct {
	inputPath  string
	outputPath string
	jsonOut    bool
	limit      int
	threads    int
}

// lineResult is one converted input line for --json output.
type lineResult struct {
	Input string `json:"input"`
	Value int64  `json:"value"`
	Error string `json:"error,omitempty"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "thainum [numeral ...]",
		Short: "Convert spelled-out Thai numerals to integers",
		Example: strings.Join([]string{
			"thainum สองล้านสามแสนหกร้อยสิบสอง",
			"thainum --input numerals.txt --output values.jsonl --json",
		}, "\n"),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return convertArgs(cmd, args)
			}
			if opts.inputPath == "" {
				return fmt.Errorf("either numeral arguments or --input is required")
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runBatch(logger, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "input file, one numeral per line")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit one JSON object per line")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 0, "limit number of lines (0 = unlimited)")
	cmd.Flags().IntVarP(&opts.threads, "threads", "t", 0, "number of worker goroutines (0 = all CPUs)")

	return cmd
}

// convertArgs handles the one-shot form: each argument is a numeral.
func convertArgs(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		value, err := thainum.ThaiwordToNum(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

func runBatch(logger *zap.Logger, opts *options) error {
	start := time.Now()

	lines, err := readLines(opts.inputPath, opts.limit)
	if err != nil {
		return err
	}
	numLines := len(lines)

	numWorkers := opts.threads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	logger.Info("converting",
		zap.String("input", opts.inputPath),
		zap.Int("lines", numLines),
		zap.Int("workers", numWorkers),
	)

	// Pre-allocate so workers can write their slots without coordination.
	results := make([]string, numLines)
	failures := make([]bool, numLines)

	var wg sync.WaitGroup
	jobs := make(chan int, numLines)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], failures[i] = convertLine(lines[i], opts.jsonOut)
			}
		}()
	}
	for i := 0; i < numLines; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	numFailed := 0
	for i, failed := range failures {
		if failed {
			numFailed++
			logger.Warn("invalid numeral", zap.Int("line", i+1), zap.String("input", lines[i]))
		}
	}

	if err := writeLines(opts.outputPath, results); err != nil {
		return err
	}

	logger.Info("done",
		zap.Int("converted", numLines-numFailed),
		zap.Int("failed", numFailed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// convertLine renders one output line and reports whether conversion failed.
// Text mode is "numeral<TAB>value"; failed lines get "-" so line numbers
// still align with the input.
func convertLine(line string, jsonOut bool) (string, bool) {
	value, err := thainum.ThaiwordToNum(line)

	if jsonOut {
		r := lineResult{Input: line, Value: value}
		if err != nil {
			r.Error = err.Error()
		}
		encoded, marshalErr := json.Marshal(r)
		if marshalErr != nil {
			return "", true
		}
		return string(encoded), err != nil
	}

	if err != nil {
		return line + "\t-", true
	}
	return line + "\t" + strconv.FormatInt(value, 10), false
}

func readLines(path string, limit int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input file not found: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
		if limit > 0 && len(lines) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func writeLines(path string, lines []string) error {
	out := os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	writer := bufio.NewWriter(out)
	for _, line := range lines {
		writer.WriteString(line)
		writer.WriteByte('\n')
	}
	return writer.Flush()
}
