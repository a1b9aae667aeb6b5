// README: Bench cases: health, request validation, live generation and concurrent resubmission.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Live bool
	Run  func(ctx context.Context, r *Runner) Result
}

var samplePreferences = map[string]string{
	"location":     "Paris",
	"duration":     "3 days",
	"budget":       "medium",
	"travelerType": "couple",
	"interests":    "art, food",
}

func NewRunner(cfg Config) *Runner {
	// No client timeout: generations are not bounded locally, the overall ctx is.
	return &Runner{cfg: cfg, httpc: &http.Client{}}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		var res Result
		if tc.Live && !r.cfg.Live {
			res = Result{Status: "SKIP", Note: "live=false"}
		} else {
			res = tc.Run(ctx, r)
		}
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "API: health",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodGet, base+"/health", nil)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return expect(status, latency, http.StatusOK)
			},
		},
		{
			Name: "Itinerary: invalid json -> 400",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodPost, base+"/api/itineraries", []byte("not json"))
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return expect(status, latency, http.StatusBadRequest)
			},
		},
		{
			Name: "Itinerary: Paris sample",
			Live: true,
			Run: func(ctx context.Context, r *Runner) Result {
				body, _ := json.Marshal(samplePreferences)
				status, resp, latency, err := r.do(ctx, http.MethodPost, base+"/api/itineraries", body)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				res := expect(status, latency, http.StatusOK)
				res.Note = describe(status, resp)
				return res
			},
		},
		{
			Name: "Itinerary: concurrent resubmission",
			Live: true,
			Run:  concurrentSubmit,
		},
	}
}

// concurrentSubmit sends identical submissions at once. Each must reach a terminal
// answer on its own; the calls share nothing and are not deduplicated.
func concurrentSubmit(ctx context.Context, r *Runner) Result {
	body, _ := json.Marshal(samplePreferences)
	var ok, failed atomic.Int64

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Concurrency; i++ {
		g.Go(func() error {
			status, _, _, err := r.do(gctx, http.MethodPost, r.cfg.BaseURL+"/api/itineraries", body)
			if err != nil {
				return err
			}
			switch status {
			case http.StatusOK:
				ok.Add(1)
			case http.StatusBadGateway:
				failed.Add(1)
			default:
				return fmt.Errorf("unexpected status %d", status)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	return Result{Status: "PASS", Latency: time.Since(start), Note: fmt.Sprintf("success=%d failure=%d", ok.Load(), failed.Load())}
}

func (r *Runner) do(ctx context.Context, method, url string, body []byte) (int, []byte, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	return resp.StatusCode, data, time.Since(start), err
}

func expect(status int, latency time.Duration, want int) Result {
	if status == want {
		return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
	}
	return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d want=%d", status, want)}
}

func describe(status int, body []byte) string {
	var resp struct {
		Recognition string `json:"recognition"`
		Kind        string `json:"kind"`
		Error       string `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Sprintf("status=%d unreadable body", status)
	}
	if resp.Error != "" {
		return fmt.Sprintf("status=%d kind=%s error=%s", status, resp.Kind, resp.Error)
	}
	return fmt.Sprintf("status=%d recognition=%s", status, resp.Recognition)
}
