// Package apiclient talks to the upstream bazi calculation service.
// Chart computation errors are surfaced to the caller; the full-analysis
// flow is expected to degrade to the demo dataset at the service layer.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"hongling-sanctuary-be/pkg/bazi"

	"github.com/goccy/go-json"
)

const DefaultBaseURL = "https://rainbow-sanctuary-bazu-production.up.railway.app"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type analysisRequest struct {
	bazi.BirthInput
	Tone string `json:"tone"`
}

type reportRequest struct {
	Pillars map[bazi.Position]bazi.Pillar `json:"pillars"`
	Tone    string                        `json:"tone"`
}

// ComputeChart asks the upstream calculator for a four-pillar chart.
// Upstream failures are returned as-is; there is no fallback chart.
func (c *Client) ComputeChart(ctx context.Context, input bazi.BirthInput) (*bazi.Chart, error) {
	var chart bazi.Chart
	if err := c.post(ctx, "/bazi/calculate", input, &chart); err != nil {
		return nil, fmt.Errorf("compute chart: %w", err)
	}
	normalizeChart(&chart)
	return &chart, nil
}

// FullAnalysis fetches the chart plus generated narrative in one call.
func (c *Client) FullAnalysis(ctx context.Context, input bazi.BirthInput, tone bazi.Tone) (*bazi.Analysis, error) {
	req := analysisRequest{BirthInput: input, Tone: string(tone)}
	var analysis bazi.Analysis
	if err := c.post(ctx, "/bazi/analysis", req, &analysis); err != nil {
		return nil, fmt.Errorf("full analysis: %w", err)
	}
	normalizeChart(&analysis.Chart)
	return &analysis, nil
}

// RenderReport asks upstream for a narrative report over precomputed pillars.
func (c *Client) RenderReport(ctx context.Context, pillars map[bazi.Position]bazi.Pillar, tone bazi.Tone) (bazi.NarrativeReport, error) {
	req := reportRequest{Pillars: pillars, Tone: string(tone)}
	var report bazi.NarrativeReport
	if err := c.post(ctx, "/report", req, &report); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return report, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// normalizeChart backfills element and polarity counts when the upstream
// response omits them, so downstream rendering always has data to plot.
func normalizeChart(chart *bazi.Chart) {
	if chart.Pillars == nil {
		return
	}
	if len(chart.FiveElements) == 0 || len(chart.YinYang) == 0 {
		elements, yinYang := bazi.DeriveCounts(chart.Pillars)
		if len(chart.FiveElements) == 0 {
			chart.FiveElements = elements
		}
		if len(chart.YinYang) == 0 {
			chart.YinYang = yinYang
		}
	}
}
