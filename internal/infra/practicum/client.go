// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
)

// Client fetches homework statuses from the Practicum API. It makes exactly one
// request per call; retrying is the scheduler's job.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	logger   *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// FetchStatuses requests every homework updated since fromDate (unix seconds)
// and returns the decoded, unvalidated JSON body.
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (any, error) {
	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %s: %w", c.endpoint, err)
	}
	// Keep any query the endpoint already carries.
	params := reqURL.Query()
	params.Set("from_date", strconv.FormatInt(fromDate, 10))
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request to %s: %w", c.endpoint, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	logCtx := c.logger.WithField("op", "FetchStatuses").WithField("from_date", fromDate)
	logCtx.Debug("Requesting homework statuses")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPStatusError{
			Endpoint:   c.endpoint,
			Headers:    redact(req.Header),
			Params:     params,
			StatusCode: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: c.endpoint, Err: err}
	}

	var payload any
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Endpoint: c.endpoint, Err: err}
	}
	logCtx.WithField("bytes", len(body)).Debug("Homework statuses received")
	return payload, nil
}
