package adapters

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
)

const MaxFetchAttempts = 3

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{},
	}
}

// FetchContent runs the request and returns the response body. Server-side
// failures are retried up to MaxFetchAttempts; client errors are not, since
// resending the same bad request cannot succeed.
func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	var body []byte
	if req.Body != nil {
		payload, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		body = payload
	}

	var lastErr error
	for attempt := 1; attempt <= MaxFetchAttempts; attempt++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		payload, retryable, err := c.fetchOnce(req)
		if err == nil {
			return payload, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}

		c.logger.WarnWithFields("retrying HTTP request", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"attempt": attempt,
		})

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		default:
		}
	}

	return nil, lastErr
}

func (c *contentFetcher) fetchOnce(req *http.Request) (payload []byte, retryable bool, err error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, true, err
	}

	defer func(Body io.ReadCloser) {
		closeErr := Body.Close()
		if closeErr != nil {
			c.logger.Error(closeErr, "failed to close the response body")
		}
	}(res.Body)

	payload, err = io.ReadAll(res.Body)
	if err != nil {
		c.logger.Error(err, "failed to read the response body")
		return nil, true, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logger.ErrorWithFields(nil, "HTTP request returned non-2xx status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(payload),
		})
		return nil, res.StatusCode >= 500, fmt.Errorf("HTTP request returned status code %d: %s", res.StatusCode, string(payload))
	}

	return payload, false, nil
}
