package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultEndpoint = "http://localhost:8000/analyze-rfp"
	DefaultTimeout  = 30 * time.Second
	FormField       = "file"
)

// ErrStatus is wrapped by every StatusError.
var ErrStatus = errors.New("analysis service returned an error status")

// StatusError reports a non-2xx response from the analysis service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("analysis request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("analysis request failed with status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}

// Client uploads documents to the analysis service.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient creates a client for endpoint. An empty endpoint uses
// DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint: endpoint,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		UserAgent: "VectorPrime/1.0",
	}
}

// SetTimeout configures the HTTP client timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// AnalyzeFile reads the file at path and uploads it.
func (c *Client) AnalyzeFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	return c.Analyze(ctx, filepath.Base(path), f)
}

// Analyze posts one document as multipart form data and decodes the result.
// Any transport error or non-2xx status is returned as an error; there are
// no retries.
func (c *Client) Analyze(ctx context.Context, filename string, doc io.Reader) (*Result, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile(FormField, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	size, err := io.Copy(part, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	slog.Debug("analysis_request",
		"endpoint", c.Endpoint,
		"filename", filename,
		"document_bytes", size,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Error("analysis_request_failed", "error", err)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		preview := string(payload)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		slog.Error("analysis_status_error",
			"status_code", resp.StatusCode,
			"response_preview", preview,
		)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: preview}
	}

	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	slog.Info("analysis_completed",
		"filename", filename,
		"duration", time.Since(start),
		"requirements", len(result.Requirements),
		"products", len(result.RecommendedProducts),
		"total_estimated_cost", result.TotalEstimatedCost,
	)
	return &result, nil
}
