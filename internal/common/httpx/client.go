package httpx

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// NewClient builds the shared HTTP client: one timeout for the whole
// exchange, common headers on every request, no retries. All failures in
// this tool are terminal for the run.
func NewClient(timeout time.Duration, headers map[string]string) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeaders(headers)
	return c
}
