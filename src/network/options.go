package network

import (
	"log/slog"
	"strings"

	"github.com/bytedance/sonic"
)

// FetchOptions mirrors the subset of the browser fetch() init object the bridge honours.
type FetchOptions struct {
	Method  string
	Headers map[string]string
	Body    string
}

// ParseOptions decodes a fetch() init object. Missing or malformed input yields
// defaults (GET, no headers, empty body); fields of the wrong type are ignored.
func ParseOptions(optionsJSON string, logger *slog.Logger) FetchOptions {
	opts := FetchOptions{Method: "GET", Headers: map[string]string{}}
	if strings.TrimSpace(optionsJSON) == "" {
		return opts
	}

	var raw map[string]any
	if err := sonic.Unmarshal([]byte(optionsJSON), &raw); err != nil {
		if logger != nil {
			logger.Error("failed to parse fetch options", "error", err)
		}
		return opts
	}

	if m, ok := raw["method"].(string); ok && m != "" {
		opts.Method = m
	}
	if h, ok := raw["headers"].(map[string]any); ok {
		for k, v := range h {
			if s, ok := v.(string); ok {
				opts.Headers[k] = s
			}
		}
	}
	if b, ok := raw["body"].(string); ok {
		opts.Body = b
	}
	return opts
}
