// Package client talks to a running mock API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

// previewConcurrency bounds parallel preview requests.
const previewConcurrency = 4

// APIError is a non-2xx answer carrying the API's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ScanResponse struct {
	Success  bool               `json:"success"`
	StoreURL string             `json:"storeUrl"`
	ScanID   string             `json:"scanId"`
	Results  models.ScanResults `json:"results"`
}

type DiagnosticResponse struct {
	ScanID    string             `json:"scanId"`
	Results   models.ScanResults `json:"results"`
	Timestamp time.Time          `json:"timestamp"`
}

type FixResponse struct {
	Success         bool   `json:"success"`
	IssueID         string `json:"issueId"`
	PreviewMode     bool   `json:"previewMode"`
	Message         string `json:"message"`
	EstimatedImpact string `json:"estimatedImpact"`
	FixApplied      bool   `json:"fixApplied"`
}

type FixAllResponse struct {
	Success              bool     `json:"success"`
	FixedIssues          []string `json:"fixedIssues"`
	TotalEstimatedImpact string   `json:"totalEstimatedImpact"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp := new(HealthResponse)
	err := c.do(ctx, http.MethodGet, "/api/health", nil, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Scan(ctx context.Context, storeURL string) (*ScanResponse, error) {
	resp := new(ScanResponse)
	err := c.do(ctx, http.MethodPost, "/api/scan", map[string]string{"storeUrl": storeURL}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Diagnostic(ctx context.Context, scanID string) (*DiagnosticResponse, error) {
	resp := new(DiagnosticResponse)
	err := c.do(ctx, http.MethodGet, "/api/diagnostic/"+url.PathEscape(scanID), nil, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Fix(ctx context.Context, issueID string, previewMode bool) (*FixResponse, error) {
	resp := new(FixResponse)
	body := map[string]bool{"previewMode": previewMode}
	err := c.do(ctx, http.MethodPost, "/api/fix/"+url.PathEscape(issueID), body, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Preview(ctx context.Context, issueID string) (*models.Preview, error) {
	resp := new(models.Preview)
	err := c.do(ctx, http.MethodGet, "/api/preview/"+url.PathEscape(issueID), nil, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Previews fetches the previews of several issues concurrently. The
// first failure cancels the remaining requests.
func (c *Client) Previews(ctx context.Context, issueIDs []string) (map[string]*models.Preview, error) {
	var mu sync.Mutex
	previews := make(map[string]*models.Preview, len(issueIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(previewConcurrency)
	for _, id := range issueIDs {
		id := id
		g.Go(func() error {
			preview, err := c.Preview(gctx, id)
			if err != nil {
				return fmt.Errorf("preview %s: %w", id, err)
			}

			mu.Lock()
			previews[id] = preview
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return previews, nil
}

func (c *Client) FixAll(ctx context.Context, issueIDs []string) (*FixAllResponse, error) {
	if issueIDs == nil {
		issueIDs = []string{}
	}

	resp := new(FixAllResponse)
	err := c.do(ctx, http.MethodPost, "/api/fix-all", map[string][]string{"issueIds": issueIDs}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
