package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	yamlet "github.com/yamlet-format/go-yamlet"
)

const queryDoc = `
server:
  host: localhost
  port: 8080
replicas: 3
tags: [a, b]
`

func TestRun(t *testing.T) {
	doc, err := yamlet.Parse([]byte(queryDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tests := []struct {
		name string
		src  string
		env  map[string]any
		want any
	}{
		{
			name: "field access",
			src:  "server.port",
			want: int64(8080),
		},
		{
			name: "comparison",
			src:  "server.port > 8000",
			want: true,
		},
		{
			name: "sequence projection",
			src:  "tags[1]",
			want: "b",
		},
		{
			name: "get resolves paths",
			src:  `get("server.host")`,
			want: "localhost",
		},
		{
			name: "get on an absent path is nil",
			src:  `get("server.timeout") == nil`,
			want: true,
		},
		{
			name: "env layering",
			src:  "replicas < limit",
			env:  map[string]any{"limit": 10},
			want: true,
		},
		{
			name: "env wins over document entries",
			src:  "replicas",
			env:  map[string]any{"replicas": int64(5)},
			want: int64(5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(doc, tt.src, tt.env)
			if err != nil {
				t.Fatalf("Run(%q): %v", tt.src, err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("Run(%q) (-want +got):\n%s", tt.src, d)
			}
		})
	}
}

func TestRunGetenv(t *testing.T) {
	t.Setenv("YAMLET_QUERY_TEST", "from-env")
	doc, err := yamlet.Parse([]byte("a: 1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := Run(doc, `getenv("YAMLET_QUERY_TEST")`, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != "from-env" {
		t.Errorf("got %v", got)
	}
}

func TestRunErrors(t *testing.T) {
	doc, err := yamlet.Parse([]byte("a: 1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := Run(doc, "1 +", nil); err == nil {
		t.Error("malformed expression: no error")
	}
	if _, err := Run(doc, "get(1)", nil); err == nil {
		t.Error("get with a non-string argument: no error")
	}
}
