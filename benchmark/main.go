// Package main provides a performance benchmarking tool for the SizeCard CLI.
// It measures execution times of the size and download commands against each
// results source, running each test multiple times, treating the first successful
// run as cold and averaging the rest as warm, and writes a CSV summary.
//
// Prerequisites:
// - sizecard binary installed and available in PATH
// - A sample directory laid out like examples/samoa (project/, sketches/, results/)
//
// Usage: go run benchmark/main.go [sample-dir]
//
//	sample-dir: Directory holding the project, sketches and results
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Sketch   string
	Command  string
	Source   string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	SampleDir string
	StoreDB   string
	Timeout   time.Duration
	Runs      int
	Sketches  []string
	Sources   []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [sample-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		SampleDir: os.Args[1],
		StoreDB:   filepath.Join(os.TempDir(), "sizecard_benchmark.db"),
		Timeout:   time.Minute,
		Runs:      5,
		Sketches:  []string{"single.json", "collection.json"},
		Sources:   []string{"file", "store"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Importing results into %s...\n", config.StoreDB)
	_ = os.Remove(config.StoreDB)
	importCmd := exec.Command("sizecard", "results", "import", filepath.Join(config.SampleDir, "results"),
		"--store-db-connect", config.StoreDB)
	if output, err := importCmd.CombinedOutput(); err != nil {
		fmt.Printf("Failed to import results: %v\nOutput: %s\n", err, string(output))
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the sizecard binary and the sample layout exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("sizecard"); err != nil {
		return fmt.Errorf("sizecard binary not found in PATH")
	}
	for _, dir := range []string{"project", "sketches", "results"} {
		p := filepath.Join(config.SampleDir, dir)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("%s not found at %s", dir, p)
		}
	}
	return nil
}

// runBenchmarks executes every command against every sketch and source
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sketches, %d sources, %v timeout, %d runs\n",
		len(config.Sketches), len(config.Sources), config.Timeout, config.Runs)

	for _, sketch := range config.Sketches {
		for _, source := range config.Sources {
			for _, command := range []string{"size", "download"} {
				results = append(results, runBenchmarkSuite(config, sketch, command, source))
			}
		}
	}
	return results
}

// runBenchmarkSuite times one command and summarizes its runs
func runBenchmarkSuite(config BenchmarkConfig, sketch, command, source string) BenchmarkResult {
	fmt.Printf("Running %s on %s (%s source)\n", command, sketch, source)

	cold, warm := runBenchmark(config, sketch, command, source)

	coldTime := "TIMEOUT"
	if cold > 0 {
		coldTime = fmt.Sprintf("%.3fs", cold)
	}
	warmTime := "TIMEOUT"
	if len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		warmTime = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTime, warmTime)

	return BenchmarkResult{
		Sketch:   sketch,
		Command:  command,
		Source:   source,
		ColdTime: coldTime,
		WarmTime: warmTime,
	}
}

// runBenchmark executes a sizecard command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, sketch, command, source string) (coldTime float64, warmTimes []float64) {
	args := []string{
		command, filepath.Join(config.SampleDir, "sketches", sketch),
		"--project", filepath.Join(config.SampleDir, "project"),
		"--results-dir", filepath.Join(config.SampleDir, "results"),
		"--source", source,
		"--store-db-connect", config.StoreDB,
		"--color", "no",
	}
	if command == "download" {
		args = append(args, "--output-file", filepath.Join(os.TempDir(), "sizecard_benchmark.csv"))
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("sizecard", args...)

		done := make(chan error, 1)
		go func() {
			_, err := cmd.CombinedOutput()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("sizecard_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"sketch", "cmd", "source", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Sketch, result.Command, result.Source, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-16s %-9s %-6s Cold: %s, Warm: %s\n", result.Sketch, result.Command, result.Source, result.ColdTime, result.WarmTime)
	}
}
