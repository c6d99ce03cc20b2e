package httpclient

import (
	"net/http"
	"time"
)

// HTTPClient interface for mocking http.Client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Default returns the client used for provider calls. Large diffs can
// keep an LLM busy for a while, hence the long timeout.
func Default() *http.Client {
	return &http.Client{Timeout: 120 * time.Second}
}
