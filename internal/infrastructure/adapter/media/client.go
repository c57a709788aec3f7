package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/external"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/config"
	"github.com/tidwall/gjson"
)

const (
	serviceName     = "media"
	searchPageSize  = 500
	maxSearchPages  = 20
	baseRetryDelay  = 200 * time.Millisecond
	maxResponseBody = 4 << 20
)

// RequestObserver receives the outcome of every remote call
type RequestObserver interface {
	ObserveMediaRequest(operation string, err error, elapsed time.Duration)
}

// statusError carries a non-2xx response from the media API
type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the hosted media service over its REST API
type Client struct {
	cfg          config.MediaConfig
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	observer     RequestObserver
}

// NewClient creates a media client. A nil httpClient gets one bounded by cfg.Timeout.
func NewClient(
	cfg config.MediaConfig,
	httpClient *http.Client,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	observer RequestObserver,
) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		cfg:          cfg,
		httpClient:   httpClient,
		timeProvider: timeProvider,
		logger:       logger,
		observer:     observer,
	}
}

// Folder implements external.MediaService
func (c *Client) Folder() string {
	return c.cfg.Folder
}

// BuildTransformationURL implements external.MediaService
func (c *Client) BuildTransformationURL(publicID string, width, height int, config entity.TransformationConfig) (string, error) {
	return buildDeliveryURL(c.cfg.DeliveryBaseURL, c.cfg.CloudName, publicID, width, height, config)
}

// SearchPublicIDs implements external.MediaService, following next_cursor until exhausted
func (c *Client) SearchPublicIDs(ctx context.Context, expression string) ([]string, error) {
	start := c.timeProvider.Now()
	ids, err := c.search(ctx, expression)
	if c.observer != nil {
		c.observer.ObserveMediaRequest("search", err, c.timeProvider.Since(start).Std())
	}
	if err != nil {
		c.logger.Error("Media search failed", map[string]any{
			"expression": expression,
			"error":      err.Error(),
		})
		return nil, errs.NewExternalServiceError(serviceName, "search", err)
	}

	c.logger.Debug("Media search completed", map[string]any{
		"expression": expression,
		"matches":    len(ids),
	})
	return ids, nil
}

func (c *Client) search(ctx context.Context, expression string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/v1_1/%s/resources/search", strings.TrimRight(c.cfg.APIBaseURL, "/"), c.cfg.CloudName)

	ids := []string{}
	cursor := ""
	for page := 0; page < maxSearchPages; page++ {
		payload := map[string]any{
			"expression":  expression,
			"max_results": searchPageSize,
		}
		if cursor != "" {
			payload["next_cursor"] = cursor
		}

		body, err := c.postWithRetry(ctx, endpoint, payload)
		if err != nil {
			return nil, err
		}

		if !gjson.ValidBytes(body) {
			return nil, errors.New("malformed search response")
		}
		parsed := gjson.ParseBytes(body)
		parsed.Get("resources.#.public_id").ForEach(func(_, value gjson.Result) bool {
			if id := value.String(); id != "" {
				ids = append(ids, id)
			}
			return true
		})

		cursor = parsed.Get("next_cursor").String()
		if cursor == "" {
			return ids, nil
		}
	}

	c.logger.Warn("Media search truncated", map[string]any{
		"expression": expression,
		"pages":      maxSearchPages,
	})
	return ids, nil
}

// postWithRetry retries transport failures, 429 and 5xx responses
func (c *Client) postWithRetry(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	attempts := c.cfg.RetryAttempts + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		body, err := c.post(ctx, endpoint, encoded)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == attempts-1 {
			break
		}

		backoff := baseRetryDelay * (1 << uint(attempt))
		c.logger.Warn("Transient media error, retrying request", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		if err := c.wait(ctx, backoff); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

// wait blocks for d on the injected clock, returning early when ctx ends
func (c *Client) wait(ctx context.Context, d time.Duration) error {
	timer, cancel := c.timeProvider.WithTimeout(ctx, coreport.Duration(d))
	defer cancel()
	<-timer.Done()
	return ctx.Err()
}

func (c *Client) post(ctx context.Context, endpoint string, encoded []byte) ([]byte, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = c.timeProvider.WithTimeout(ctx, coreport.Duration(c.cfg.Timeout))
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.APIKey, c.cfg.APISecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(body, "error.message").String()
		if message == "" {
			message = strings.TrimSpace(string(body))
		}
		return nil, &statusError{StatusCode: resp.StatusCode, Body: message}
	}
	return body, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}
	return true
}

var _ external.MediaService = (*Client)(nil)
