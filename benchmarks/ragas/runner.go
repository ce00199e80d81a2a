// ABOUTME: Test runner for recommendation benchmarks - executes scenarios and collects results
// ABOUTME: Drives RAGCore operations and scores responses and retrieved products
package ragas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/harper/recommend/internal/core"
	"github.com/harper/recommend/internal/models"
)

// Recommender is the subset of RAGCore the benchmarks exercise
type Recommender interface {
	ProcessQuery(ctx context.Context, query string, opts core.QueryOptions) models.QueryResult
	ProcessSearch(ctx context.Context, query string) models.QueryResult
	ProcessFollowupQuery(ctx context.Context, originalQuery, followupQuery string) models.FollowupResult
}

// BenchmarkRunner executes benchmark tests
type BenchmarkRunner struct {
	rec     Recommender
	metrics *MetricsCalculator
	verbose bool
	out     io.Writer
}

// NewBenchmarkRunner creates a runner; progress is written to out when verbose
func NewBenchmarkRunner(rec Recommender, verbose bool, out io.Writer) *BenchmarkRunner {
	if out == nil {
		out = io.Discard
	}
	return &BenchmarkRunner{
		rec:     rec,
		metrics: NewMetricsCalculator(),
		verbose: verbose,
		out:     out,
	}
}

// RunTest executes a single benchmark test
func (r *BenchmarkRunner) RunTest(ctx context.Context, scenario TestScenario) (TestResult, error) {
	if r.verbose {
		fmt.Fprintf(r.out, "\n========================================\n")
		fmt.Fprintf(r.out, "RUNNING: %s\n", scenario.Name)
		fmt.Fprintf(r.out, "========================================\n")
		fmt.Fprintf(r.out, "Description: %s\n\n", scenario.Description)
	}

	start := time.Now()
	var response string
	var retrieved []string

	switch scenario.Kind {
	case KindQuery, "":
		result := r.rec.ProcessQuery(ctx, scenario.Query, core.QueryOptions{})
		response, retrieved = result.Response, productNames(result.Products)
	case KindSearch:
		result := r.rec.ProcessSearch(ctx, scenario.Query)
		response, retrieved = result.Response, productNames(result.Products)
	case KindFollowup:
		original := r.rec.ProcessQuery(ctx, scenario.Query, core.QueryOptions{})
		retrieved = productNames(original.Products)
		if len(retrieved) > core.MaxContextProducts {
			retrieved = retrieved[:core.MaxContextProducts]
		}
		response = r.rec.ProcessFollowupQuery(ctx, scenario.Query, scenario.FollowupQuery).Response
	default:
		return TestResult{}, fmt.Errorf("unknown scenario kind %q", scenario.Kind)
	}

	if r.verbose {
		fmt.Fprintf(r.out, "Query: %s\n", scenario.Query)
		fmt.Fprintf(r.out, "Retrieved: %v\n", retrieved)
		fmt.Fprintf(r.out, "Response: %s\n", preview(response, 150))
	}

	result := r.metrics.EvaluateTest(scenario, response, retrieved)
	result.Details["elapsed_ms"] = time.Since(start).Milliseconds()

	if r.verbose {
		fmt.Fprintf(r.out, "\nFaithfulness: %.2f\nContext Recall: %.2f\nStatus: %s\n",
			result.FaithfulnessScore, result.ContextRecallScore, result.Status)
	}

	return result, nil
}

// RunAllTests executes all benchmark tests
func (r *BenchmarkRunner) RunAllTests(ctx context.Context) ([]TestResult, error) {
	scenarios := GetAllTests()
	results := make([]TestResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := r.RunTest(ctx, scenario)
		if err != nil {
			return nil, fmt.Errorf("test %s failed: %w", scenario.ID, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// Summary is the exported results document
type Summary struct {
	Timestamp  string       `json:"timestamp"`
	TotalTests int          `json:"total_tests"`
	Passed     int          `json:"passed"`
	Failed     int          `json:"failed"`
	Results    []TestResult `json:"results"`
}

// Summarize counts passes and failures
func Summarize(results []TestResult) Summary {
	s := Summary{
		Timestamp:  time.Now().Format(time.RFC3339),
		TotalTests: len(results),
		Results:    results,
	}
	for _, result := range results {
		if result.Status == "PASS" {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// ExportResults exports test results to JSON
func (r *BenchmarkRunner) ExportResults(results []TestResult, outputPath string) error {
	jsonData, err := json.MarshalIndent(Summarize(results), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	return nil
}

func productNames(products []models.RankedProduct) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}
