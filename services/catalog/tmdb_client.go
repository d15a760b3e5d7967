package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"
)

const (
	tmdbBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p"
	tmdbPosterSize   = "w500"
	tmdbBackdropSize = "w1280"
	tmdbSimilarSize  = "w300"
	tmdbProfileSize  = "w185"

	// DemoAPIKey is used when no key is configured. TMDB rejects it.
	DemoAPIKey = "demo_key"

	tmdbAttempts = 3
)

type tmdbClient struct {
	apiKey   string
	language string
	baseURL  string
	httpc    *http.Client
	limiter  *rate.Limiter
	backoff  time.Duration
}

func newTMDBClient(apiKey, language, baseURL string, httpc *http.Client, timeout time.Duration) *tmdbClient {
	if httpc == nil {
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpc = &http.Client{Timeout: timeout}
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		apiKey = DemoAPIKey
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = tmdbBaseURL
	}
	return &tmdbClient{
		apiKey:   apiKey,
		language: language,
		baseURL:  baseURL,
		httpc:    httpc,
		// TMDB allows roughly 50 requests per second.
		limiter: rate.NewLimiter(rate.Every(20*time.Millisecond), 10),
		backoff: 300 * time.Millisecond,
	}
}

// get requests endpoint with params and decodes the JSON body into v. 429 and 5xx
// responses and transport errors are retried with exponential backoff.
func (c *tmdbClient) get(ctx context.Context, endpoint string, params url.Values, v any) error {
	query := url.Values{}
	for k, vals := range params {
		query[k] = vals
	}
	query.Set("api_key", c.apiKey)
	if c.language != "" && query.Get("language") == "" {
		query.Set("language", c.language)
	}
	target := c.baseURL + endpoint + "?" + query.Encode()

	return retry.Do(
		func() error {
			return c.do(ctx, endpoint, target, v)
		},
		retry.Context(ctx),
		retry.Attempts(tmdbAttempts),
		retry.Delay(c.backoff),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var upErr *UpstreamError
			if !errors.As(err, &upErr) {
				return false
			}
			if upErr.Status == 0 {
				// transport failure, unless the caller gave up
				return ctx.Err() == nil && !errors.Is(upErr.Err, errDecode)
			}
			return upErr.retryable()
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("[tmdb] %s failed (attempt %d/%d): %v", endpoint, n+1, tmdbAttempts, err)
		}),
	)
}

var errDecode = errors.New("decode response")

func (c *tmdbClient) do(ctx context.Context, endpoint, target string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: redactKey(err, c.apiKey)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &UpstreamError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("%w: %v", errDecode, err)}
	}
	return nil
}

// redactedError hides the API key that transport errors embed through the request URL.
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redactKey(err error, apiKey string) error {
	msg := err.Error()
	if apiKey == "" || !strings.Contains(msg, apiKey) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(msg, apiKey, "REDACTED"), err: err}
}
