package network

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"byoa-assistant/src/logutil"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FetchOptions
	}{
		{
			name: "empty",
			in:   "",
			want: FetchOptions{Method: "GET", Headers: map[string]string{}},
		},
		{
			name: "malformed",
			in:   "{not json",
			want: FetchOptions{Method: "GET", Headers: map[string]string{}},
		},
		{
			name: "full",
			in:   `{"method":"POST","headers":{"Content-Type":"application/json","X-N":"1"},"body":"{\"a\":1}"}`,
			want: FetchOptions{
				Method:  "POST",
				Headers: map[string]string{"Content-Type": "application/json", "X-N": "1"},
				Body:    `{"a":1}`,
			},
		},
		{
			name: "wrong types ignored",
			in:   `{"method":5,"headers":{"A":"b","C":7,"D":null},"body":{"x":1}}`,
			want: FetchOptions{Method: "GET", Headers: map[string]string{"A": "b"}},
		},
		{
			name: "headers not an object",
			in:   `{"headers":["a"]}`,
			want: FetchOptions{Method: "GET", Headers: map[string]string{}},
		},
		{
			name: "json null",
			in:   `null`,
			want: FetchOptions{Method: "GET", Headers: map[string]string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOptions(tt.in, logutil.Discard()))
		})
	}
}
