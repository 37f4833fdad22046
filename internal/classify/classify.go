// Package classify scores records for SaaS-security relevance via an
// OpenAI-compatible chat endpoint. The classifier is an external
// collaborator: any failure degrades to a conservative default score,
// never to a blocked pipeline.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Rishita317/saas-security-signal-engine/internal/config"
)

// DefaultScore is substituted whenever the remote classifier fails.
const DefaultScore = 0.7

type Result struct {
	Score      float64
	Category   string
	Confidence string
}

type Input struct {
	Company  string
	Title    string
	Body     string
	Matched  []string // keyword matches found during scraping
	Category string   // best guess before classification
}

type Client struct {
	endpoint   string
	model      string
	apiKey     string
	categories []string
	hc         *http.Client
	mock       bool
}

// New builds a classifier client. Without an API key it runs in mock
// mode, scoring by keyword-match heuristics only.
func New(cfg config.Config) *Client {
	return &Client{
		endpoint:   cfg.Classify.Endpoint,
		model:      cfg.Classify.Model,
		apiKey:     cfg.Classify.APIKey,
		categories: cfg.HiringCategories(),
		hc:         &http.Client{Timeout: 20 * time.Second},
		mock:       !cfg.Classify.Enabled || cfg.Classify.APIKey == "",
	}
}

// Classify never returns an error: remote failures fall back to the
// default score with low confidence.
func (c *Client) Classify(ctx context.Context, in Input) Result {
	if c.mock {
		return c.mockClassify(in)
	}
	res, err := c.classifyRemote(ctx, in)
	if err != nil {
		return Result{Score: DefaultScore, Category: in.Category, Confidence: "low"}
	}
	return res
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type verdict struct {
	RelevanceScore float64 `json:"relevance_score"`
	Category       string  `json:"category"`
	Confidence     string  `json:"confidence"`
}

func (c *Client) classifyRemote(ctx context.Context, in Input) (Result, error) {
	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are an expert in cybersecurity signal classification, specializing in SaaS security, SSPM, and compliance."},
			{"role": "user", "content": c.prompt(in)},
		},
		"temperature":     0.1,
		"max_tokens":      150,
		"response_format": map[string]string{"type": "json_object"},
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal classify payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("classify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Result{}, fmt.Errorf("classifier %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return Result{}, fmt.Errorf("empty response")
	}

	var v verdict
	if err := json.Unmarshal([]byte(cr.Choices[0].Message.Content), &v); err != nil {
		return Result{}, fmt.Errorf("decode verdict: %w", err)
	}
	if v.Category == "" {
		v.Category = in.Category
	}
	if v.Confidence == "" {
		v.Confidence = "medium"
	}
	return Result{Score: v.RelevanceScore, Category: v.Category, Confidence: v.Confidence}, nil
}

func (c *Client) prompt(in Input) string {
	body := in.Body
	if len(body) > 500 {
		body = body[:500]
	}
	return fmt.Sprintf(`Analyze this record for relevance to SaaS Security:

Company: %s
Title: %s
Matched Keywords: %s
Text: %s

Evaluate:
1. Relevance score (0.0 to 1.0) for SaaS security, SSPM, SaaS compliance, or AI agent security.
2. Best category: %s
3. Confidence level: high, medium, or low

Return JSON: {"relevance_score": 0.85, "category": "SSPM", "confidence": "high"}`,
		in.Company, in.Title, strings.Join(in.Matched, ", "), body, strings.Join(c.categories, ", "))
}

// mockClassify mirrors the remote scoring shape from keyword matches
// alone, useful for runs without credentials and for tests.
func (c *Client) mockClassify(in Input) Result {
	var score float64
	switch {
	case len(in.Matched) >= 3:
		score = 0.9
	case len(in.Matched) == 2:
		score = 0.8
	case len(in.Matched) == 1:
		score = 0.7
	default:
		score = 0.6
	}
	if in.Category == "SSPM" || in.Category == "AI Agent Security" {
		score += 0.1
		if score > 1.0 {
			score = 1.0
		}
	}
	return Result{Score: score, Category: in.Category, Confidence: "mock"}
}

// MatchedKeywords returns the configured terms present in text.
func MatchedKeywords(text string, keywords []string) []string {
	low := strings.ToLower(text)
	var out []string
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if strings.Contains(low, strings.ToLower(k)) {
			out = append(out, k)
		}
	}
	return out
}
