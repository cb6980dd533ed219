package net_test

import (
	"context"
	"testing"

	pnet "articlestats/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	cases := []struct {
		name, req, run string
	}{
		{"both ids", "req-123", "run-abc"},
		{"request only", "r-only", ""},
		{"run only", "", "run-only"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := pnet.WithRequest(base, c.req, c.run)
			if got := pnet.RequestID(ctx); got != c.req {
				t.Fatalf("RequestID got %q want %q", got, c.req)
			}
			if got := pnet.RunID(ctx); got != c.run {
				t.Fatalf("RunID got %q want %q", got, c.run)
			}
		})
	}

	t.Run("no ids returns same ctx", func(t *testing.T) {
		if ctx := pnet.WithRequest(base, "", ""); ctx != base {
			t.Fatalf("expected ctx to be unchanged when both ids empty")
		}
	})
}
