package network

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// FetchResponse is the envelope returned to page scripts.
type FetchResponse struct {
	Status     int               `json:"status"`
	StatusText string            `json:"statusText"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
	OK         bool              `json:"ok"`
}

func newResponse(status int, statusText, body string) FetchResponse {
	return FetchResponse{
		Status:     status,
		StatusText: statusText,
		Headers:    map[string]string{},
		Body:       body,
		OK:         status >= 200 && status <= 299,
	}
}

func badRequest(method string) FetchResponse {
	return newResponse(400, "Bad Request", "Unsupported HTTP method: "+method)
}

func networkError(err error) FetchResponse {
	return newResponse(0, "Network Error", fmt.Sprintf("Network error: %v", err))
}

// ResponseToJSON serializes r as {status, statusText, headers, body, ok}.
func ResponseToJSON(r FetchResponse) string {
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}
	out, err := sonic.MarshalString(r)
	if err != nil {
		// Unreachable for this struct; keep the envelope shape anyway.
		return `{"status":0,"statusText":"Network Error","headers":{},"body":"","ok":false}`
	}
	return out
}
