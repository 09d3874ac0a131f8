package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/autoquote/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client talks to the external AI extraction service that turns raw
// quotation text (emails, spreadsheets pasted as text) into structured
// quote records. The service does the heavy lifting; this client only
// ships text out and records back.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// extractRequest is the wire request to the extraction service.
type extractRequest struct {
	Text string `json:"text"`
}

// extractResponse is the wire response from the extraction service.
type extractResponse struct {
	Items []domain.RawQuote `json:"items"`
}

// NewClient creates an extraction service client. requestsPerMinute
// bounds outbound calls; the service bills per request.
func NewClient(apiKey, baseURL string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// ExtractQuotes sends quotation text to the extraction service and returns
// the raw records it recognized. Transient failures (429, 5xx) are retried
// up to 3 times with exponential backoff.
func (c *Client) ExtractQuotes(ctx context.Context, text string) ([]domain.RawQuote, error) {
	body, err := json.Marshal(extractRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/extract", c.baseURL)
	if c.debug {
		log.Printf("[EXTRACTION] POST %s (%d bytes of text)", reqURL, len(text))
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		items, retryable, err := c.doExtract(ctx, reqURL, body)
		if err == nil {
			return items, nil
		}
		lastErr = err
		if !retryable {
			break
		}

		if c.debug {
			log.Printf("[EXTRACTION] attempt %d failed: %v", attempt, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(exponentialBackoff(attempt)):
		}
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailure, lastErr)
}

// doExtract performs one request. The second return value reports whether
// the failure is worth retrying.
func (c *Client) doExtract(ctx context.Context, reqURL string, body []byte) ([]domain.RawQuote, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "AutoQuote/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fallthrough to decode below
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		return nil, true, fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	default:
		io.Copy(io.Discard, resp.Body)
		return nil, false, fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	var decoded extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, false, fmt.Errorf("failed to decode response: %w", err)
	}

	if c.debug {
		log.Printf("[EXTRACTION] service recognized %d line items", len(decoded.Items))
	}
	return decoded.Items, false, nil
}

// exponentialBackoff returns the wait before the given retry attempt.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}
