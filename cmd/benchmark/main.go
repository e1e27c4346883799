package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

type modelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

type documentResponse struct {
	Result    string `json:"result"`
	Model     string `json:"model"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type result struct {
	Sample    string `json:"sample"`
	Chars     int    `json:"chars"`
	Model     string `json:"model"`
	Run       int    `json:"run"`
	ElapsedMs int64  `json:"elapsed_ms"`
	WallMs    int64  `json:"wall_ms"`
	OutChars  int    `json:"out_chars"`
	Error     string `json:"error,omitempty"`
}

type options struct {
	url      string
	runs     int
	model    string
	endpoint string
	quality  bool
	jsonOut  string
	warmup   bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Measure end-to-end latency of a running regassist server",
	Long: `benchmark posts sample 510(k) documents to a running server and
reports per-sample latency and output size.

Examples:
  benchmark --url http://localhost:5000 --runs 5
  benchmark --endpoint transform_checklist --model gemini-1.5-flash
  benchmark --quality`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.url, "url", "http://localhost:5000", "API base URL")
	f.IntVar(&opts.runs, "runs", 3, "number of runs per sample")
	f.StringVar(&opts.model, "model", "", "model ID to use (default: first listed)")
	f.StringVar(&opts.endpoint, "endpoint", "transform_submission", "transform_submission, transform_checklist or run_review")
	f.BoolVar(&opts.quality, "quality", false, "show input/output for each sample (1 run, no timing table)")
	f.StringVar(&opts.jsonOut, "json", "", "write results to JSON file (e.g. results.json)")
	f.BoolVar(&opts.warmup, "warmup", false, "run one warmup request per sample before measuring")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	switch opts.endpoint {
	case "transform_submission", "transform_checklist", "run_review":
	default:
		return fmt.Errorf("unknown endpoint %q", opts.endpoint)
	}

	baseURL := strings.TrimRight(opts.url, "/")
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(180 * time.Second)

	modelID := opts.model
	if modelID == "" {
		m, err := discoverModel(client)
		if err != nil {
			return err
		}
		modelID = m
	}

	if opts.quality {
		return runQualityMode(client, baseURL, modelID)
	}

	fmt.Printf("Benchmarking /%s on %s using model: %s (%d runs per sample", opts.endpoint, baseURL, modelID, opts.runs)
	if opts.warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, sample := range Samples {
		if opts.warmup {
			fmt.Printf("  Warming up %s...", sample.Name)
			w := benchmark(client, modelID, sample, 0)
			if w.Error != "" {
				fmt.Printf(" FAILED (%s)\n", w.Error)
			} else {
				fmt.Printf(" %dms (discarded)\n", w.ElapsedMs)
			}
		}
		for i := 1; i <= opts.runs; i++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, i, opts.runs)
			r := benchmark(client, modelID, sample, i)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.ElapsedMs)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if opts.jsonOut != "" {
		if err := writeJSON(opts.jsonOut, results, baseURL, modelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", opts.jsonOut)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d runs failed", failures, len(results))
	}
	return nil
}

func discoverModel(client *resty.Client) (string, error) {
	var models []modelInfo
	resp, err := client.R().SetResult(&models).Get("/api/models")
	if err != nil {
		return "", fmt.Errorf("fetching models: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("models endpoint returned %d: %s", resp.StatusCode(), resp.String())
	}
	if len(models) == 0 {
		return "", errors.New("no models available")
	}
	return models[0].ID, nil
}

// formFor maps a sample onto the form fields of the selected endpoint.
func formFor(sample Sample, modelID string) map[string]string {
	form := map[string]string{"model": modelID}
	if opts.endpoint == "run_review" {
		form["checklist"] = ReviewChecklist
		form["submission"] = sample.Text
		return form
	}
	form["pasted"] = sample.Text
	return form
}

func call(client *resty.Client, sample Sample, modelID string) (documentResponse, time.Duration, error) {
	var dr documentResponse
	var er errorResponse

	resp, err := client.R().
		SetFormData(formFor(sample, modelID)).
		SetResult(&dr).
		SetError(&er).
		Post("/" + opts.endpoint)
	if err != nil {
		return dr, 0, err
	}
	if resp.IsError() {
		msg := er.Error
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return dr, resp.Time(), fmt.Errorf("HTTP %d: %s", resp.StatusCode(), msg)
	}
	return dr, resp.Time(), nil
}

func benchmark(client *resty.Client, modelID string, sample Sample, run int) result {
	dr, wall, err := call(client, sample, modelID)
	if err != nil {
		return result{Sample: sample.Name, Chars: len(sample.Text), Run: run, Error: err.Error()}
	}

	return result{
		Sample:    sample.Name,
		Chars:     len(sample.Text),
		Model:     dr.Model,
		Run:       run,
		ElapsedMs: dr.ElapsedMs,
		WallMs:    wall.Milliseconds(),
		OutChars:  len(dr.Result),
	}
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Model | Run | Elapsed (ms) | Wall (ms) | Out Chars | Ratio |")
	fmt.Println("|--------|-------|-------|-----|--------------|-----------|-----------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-10s | %5d | %-20s | %d | %12s | %9s | %9s | %5s |\n",
				r.Sample, r.Chars, "-", r.Run, "FAIL", "-", "-", "-")
			continue
		}
		ratio := float64(r.OutChars) / float64(r.Chars)
		fmt.Printf("| %-10s | %5d | %-20s | %d | %12d | %9d | %9d | %5.2f |\n",
			r.Sample, r.Chars, r.Model, r.Run, r.ElapsedMs, r.WallMs, r.OutChars, ratio)
	}
}

func runQualityMode(client *resty.Client, baseURL, modelID string) error {
	fmt.Printf("Quality test of /%s on %s using model: %s\n", opts.endpoint, baseURL, modelID)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range QualitySamples {
		fmt.Printf("\n--- %d/%d: %s (%d chars) ---\n", i+1, len(QualitySamples), sample.Name, len(sample.Text))
		fmt.Printf("IN:\n%s\n", sample.Text)

		dr, _, err := call(client, sample, modelID)
		if err != nil {
			fmt.Printf("ERR: %s\n", err)
			failures++
			continue
		}

		fmt.Printf("OUT:\n%s\n", dr.Result)
		fmt.Printf("     [%dms, %d->%d chars]\n", dr.ElapsedMs, len(sample.Text), len(dr.Result))
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(QualitySamples)-failures, len(QualitySamples))
	if failures > 0 {
		return fmt.Errorf("%d samples failed", failures)
	}
	return nil
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalElapsed int64
	var totalChars int
	minR, maxR := ok[0], ok[0]
	for _, r := range ok {
		totalElapsed += r.ElapsedMs
		totalChars += r.Chars
		if r.ElapsedMs < minR.ElapsedMs {
			minR = r
		}
		if r.ElapsedMs > maxR.ElapsedMs {
			maxR = r
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg ms/char: %.2f\n", float64(totalElapsed)/float64(totalChars))
	fmt.Printf("- Min elapsed: %dms (%s)\n", minR.ElapsedMs, minR.Sample)
	fmt.Printf("- Max elapsed: %dms (%s)\n", maxR.ElapsedMs, maxR.Sample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Endpoint  string   `json:"endpoint"`
	Model     string   `json:"model"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL, modelID string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Endpoint:  opts.endpoint,
		Model:     modelID,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
