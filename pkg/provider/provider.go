// Package provider implements the external etymology reference services.
package provider

import (
	"context"
	"net/http"
	"time"
)

// userAgent identifies the tool to the reference services.
const userAgent = "origintag/0.1"

// DefaultTimeout bounds a single lookup request.
const DefaultTimeout = 8 * time.Second

// Provider is one origin source in the resolver's fallback chain. Lookup
// returns the raw etymology text for a lemma, or "" when the service has no
// usable result. A transport or parse error is reported but callers treat
// it the same as no result.
type Provider interface {
	Name() string
	Confidence() float64
	Lookup(ctx context.Context, lemma string) (string, error)
}

func newClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
