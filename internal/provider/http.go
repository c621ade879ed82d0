package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds every provider request
	DefaultTimeout = 4 * time.Second

	maxBodyBytes  = 4 << 20
	maxErrorBytes = 512
	userAgent     = "Mozilla/5.0 (compatible; askroute/1.0)"
)

// HTTPOptions configures the transport shared by the HTTP adapters.
// Zero values select defaults.
type HTTPOptions struct {
	Client  *http.Client
	BaseURL string // overrides the provider's endpoint, mainly for tests
	Timeout time.Duration
	Retry   RetryConfig
}

// httpBase holds the transport pieces every HTTP adapter needs
type httpBase struct {
	client  *http.Client
	baseURL string
	retry   RetryConfig
}

func newHTTPBase(opts HTTPOptions, defaultURL string) httpBase {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultURL
	}

	retry := opts.Retry
	if retry.MaxAttempts == 0 {
		retry = DefaultRetryConfig()
	}

	return httpBase{client: client, baseURL: baseURL, retry: retry}
}

// getJSON issues a GET and decodes the JSON body into out, retrying
// transient failures according to the retry config.
func (b *httpBase) getJSON(ctx context.Context, url string, headers map[string]string, out any) error {
	_, err := retryWithBackoff(ctx, b.retry, func() (struct{}, error) {
		body, err := b.fetch(ctx, url, headers)
		if err != nil {
			return struct{}{}, err
		}
		defer func() {
			_ = body.Close()
		}()

		if err := json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(out); err != nil {
			return struct{}{}, permanent(fmt.Errorf("%w: %v", ErrMalformedResponse, err))
		}
		return struct{}{}, nil
	})
	return err
}

// getText issues a GET and returns the raw body
func (b *httpBase) getText(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return retryWithBackoff(ctx, b.retry, func() ([]byte, error) {
		body, err := b.fetch(ctx, url, headers)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = body.Close()
		}()
		return io.ReadAll(io.LimitReader(body, maxBodyBytes))
	})
}

// fetch performs one request. Non-200 responses become errors; 429 and 5xx
// are retryable, other statuses are permanent.
func (b *httpBase) fetch(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		_ = resp.Body.Close()

		statusErr := fmt.Errorf("%w %d: %s", ErrBadStatus, resp.StatusCode, string(msg))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, statusErr
		}
		return nil, permanent(statusErr)
	}

	return resp.Body, nil
}

func (b *httpBase) close() {
	b.client.CloseIdleConnections()
}
