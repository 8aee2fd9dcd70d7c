// Package fold predicts protein structures from amino-acid sequences by
// calling a hosted folding service.
//
// The package validates sequences against the 20-letter amino-acid alphabet,
// sends each one to a remote provider (ESMFold by default), and hands back the
// structural payload untouched. The payload is an opaque blob in whatever
// structural file format the provider emits (PDB for ESMFold); fold never
// parses it.
//
// Predictions run through a pipz pipeline, so reliability behavior (retry,
// backoff, timeout, circuit breaker, rate limiting) is composed from options
// rather than baked in. The client itself performs zero automatic retries.
//
// Batches of sequences are driven by a Coordinator: each entry is validated
// and predicted independently, one failure never aborts the rest, and results
// come back in input order regardless of completion order.
//
// Basic usage:
//
//	provider := esmfold.New(esmfold.Config{})
//	client := fold.NewClient(provider, fold.Config{Style: fold.StyleCartoon})
//	seq, _ := fold.ParseSequence("MKTAYIAKQRQISFVKSHFSRQDILDLWQYFSYGRAL")
//	result := client.Predict(ctx, seq)
//	if result.Err == nil {
//		os.WriteFile("structure.pdb", result.Payload, 0o644)
//	}
package fold

import (
	"context"
	"time"
)

// Provider defines the interface for structure-prediction backends.
// A provider sends one validated sequence to a folding service and returns
// the raw structural payload.
type Provider interface {
	// Fold sends a sequence to the service and returns the structural payload.
	// Errors should be *PredictionError values where the failure can be
	// classified; plain errors are classified by the client.
	Fold(ctx context.Context, seq Sequence) (*ProviderResponse, error)

	// Name returns the provider identifier (e.g., "esmfold").
	Name() string
}

// ProviderResponse contains the response from a folding provider.
type ProviderResponse struct {
	Payload []byte // Raw structural payload (e.g., PDB text), never parsed here
}

// Style selects the rendering style requested for a prediction. The core
// passes it through to the presentation layer; no provider consumes it.
type Style string

// Rendering styles understood by downstream viewers.
const (
	StyleCartoon Style = "cartoon"
	StyleStick   Style = "stick"
)

// Config holds client-level configuration.
type Config struct {
	Style   Style         // Rendering style attached to each request; defaults to StyleCartoon
	Timeout time.Duration // Wall-clock bound per prediction; defaults to DefaultTimeout
}

// DefaultTimeout is the per-request wall-clock bound used when Config.Timeout
// is zero. It matches the upstream ESMFold service's own limit.
const DefaultTimeout = 60 * time.Second

// normalize fills in zero-value config fields.
func (c Config) normalize() Config {
	if c.Style == "" {
		c.Style = StyleCartoon
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
