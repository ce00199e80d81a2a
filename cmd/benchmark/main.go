// ABOUTME: Command-line benchmark runner for recommendation quality
// ABOUTME: Executes retrieval scenarios and outputs JSON results
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/harper/recommend/benchmarks/ragas"
	"github.com/harper/recommend/internal/app"
	"github.com/harper/recommend/internal/config"
	"github.com/harper/recommend/internal/logging"
)

func main() {
	testID := flag.String("test", "", "Run specific test (video, battery, nomatch, search, followup). If empty, runs all tests.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	catalogPath := flag.String("catalog", "", "Catalog file; defaults to the built-in catalog")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if cfg.EnhancementEnabled() {
		log.Println("OPENAI_API_KEY is set: enhanced responses are not deterministic and may fail phrase checks")
	}

	logger, err := logging.New("warn", os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	a, err := app.Build(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build recommender: %v", err)
	}

	fmt.Println("========================================")
	fmt.Println("Recommender Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	runner := ragas.NewBenchmarkRunner(a.Core, *verbose, os.Stdout)
	ctx := context.Background()

	var results []ragas.TestResult
	if *testID == "" {
		fmt.Println("Running all benchmark tests...")
		results, err = runner.RunAllTests(ctx)
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
	} else {
		scenario, ok := ragas.GetTestByID(*testID)
		if !ok {
			log.Fatalf("Unknown test ID: %s (valid options: video, battery, nomatch, search, followup)", *testID)
		}

		fmt.Printf("Running test: %s\n", scenario.Name)
		result, err := runner.RunTest(ctx, scenario)
		if err != nil {
			log.Fatalf("Test failed: %v", err)
		}
		results = []ragas.TestResult{result}
	}

	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	summary := ragas.Summarize(results)
	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.TestID, result.TestName)
		fmt.Printf("  Faithfulness: %.2f\n", result.FaithfulnessScore)
		fmt.Printf("  Context Recall: %.2f\n", result.ContextRecallScore)
		fmt.Printf("  Overall: %.2f\n", result.OverallScore)
		fmt.Printf("  Status: %s\n", result.Status)
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Tests: %d\n", summary.TotalTests)
	fmt.Printf("Passed: %d\n", summary.Passed)
	fmt.Printf("Failed: %d\n", summary.Failed)
	fmt.Println("========================================")

	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}
	fmt.Printf("Results exported to: %s\n", *outputPath)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
