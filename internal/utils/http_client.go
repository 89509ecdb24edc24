package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the full resty API stays available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client bound to baseURL. A non-empty token
// is sent as "Authorization: Bearer <token>" on every request. Idempotent
// requests are retried twice on transport errors and 5xx answers.
func NewHTTPClient(baseURL string, timeout time.Duration, token string) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	if token != "" {
		c.SetAuthToken(token)
	}

	return &HTTPClient{Client: c}
}
