package fold

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/pipz"
)

// Option modifies a prediction pipeline for reliability features.
//
// The core contract is zero automatic retries against the remote service;
// anything beyond one request per Predict call must be opted into here, where
// it is visible at the construction site.
type Option func(pipz.Chainable[*PredictionRequest]) pipz.Chainable[*PredictionRequest]

// WithRetry adds retry logic to the pipeline.
// Failed predictions are retried up to maxAttempts times.
func WithRetry(maxAttempts int) Option {
	return func(pipeline pipz.Chainable[*PredictionRequest]) pipz.Chainable[*PredictionRequest] {
		return pipz.NewRetry("retry", pipeline, maxAttempts)
	}
}

// WithBackoff adds retry logic with exponential backoff to the pipeline.
// The delay starts at baseDelay and doubles after each failure. Prefer this
// over WithRetry when talking to the public folding service.
func WithBackoff(maxAttempts int, baseDelay time.Duration) Option {
	return func(pipeline pipz.Chainable[*PredictionRequest]) pipz.Chainable[*PredictionRequest] {
		return pipz.NewBackoff("backoff", pipeline, maxAttempts, baseDelay)
	}
}

// WithTimeout adds timeout protection to the pipeline, inside whatever the
// client-level timeout already enforces. Useful to bound a single attempt
// when retries are stacked outside it.
func WithTimeout(duration time.Duration) Option {
	return func(pipeline pipz.Chainable[*PredictionRequest]) pipz.Chainable[*PredictionRequest] {
		return pipz.NewTimeout("timeout", pipeline, duration)
	}
}

// WithCircuitBreaker adds circuit breaker protection to the pipeline.
// After 'failures' consecutive failures, the circuit opens for 'recovery'.
func WithCircuitBreaker(failures int, recovery time.Duration) Option {
	return func(pipeline pipz.Chainable[*PredictionRequest]) pipz.Chainable[*PredictionRequest] {
		return pipz.NewCircuitBreaker("circuit-breaker", pipeline, failures, recovery)
	}
}

// WithRateLimit adds rate limiting to the pipeline.
// rps = requests per second, burst = burst capacity. The hosted ESMFold
// endpoint is a shared public resource; batches of any size should run with
// a rate limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(pipeline pipz.Chainable[*PredictionRequest]) pipz.Chainable[*PredictionRequest] {
		rateLimiter := pipz.NewRateLimiter[*PredictionRequest]("rate-limit", rps, burst)
		return pipz.NewSequence("rate-limited", rateLimiter, pipeline)
	}
}

// WithErrorHandler adds error handling to the pipeline.
// The handler receives error context and can log or alert as needed.
func WithErrorHandler(handler pipz.Chainable[*pipz.Error[*PredictionRequest]]) Option {
	return func(pipeline pipz.Chainable[*PredictionRequest]) pipz.Chainable[*PredictionRequest] {
		return pipz.NewHandle("error-handler", pipeline, handler)
	}
}

// PipelineProvider is implemented by types that can provide a pipeline for
// composition.
type PipelineProvider interface {
	GetPipeline() pipz.Chainable[*PredictionRequest]
}

// WithFallback adds a fallback client for resilience.
// If the primary pipeline fails, the fallback's will be tried.
func WithFallback(fallback PipelineProvider) Option {
	return func(pipeline pipz.Chainable[*PredictionRequest]) pipz.Chainable[*PredictionRequest] {
		return pipz.NewFallback("with-fallback", pipeline, fallback.GetPipeline())
	}
}

// WithDebug prints each request and outcome to stdout.
// Useful when diagnosing what the folding service actually receives.
func WithDebug() Option {
	return func(pipeline pipz.Chainable[*PredictionRequest]) pipz.Chainable[*PredictionRequest] {
		debugger := pipz.Apply("debug", func(ctx context.Context, req *PredictionRequest) (*PredictionRequest, error) {
			fmt.Printf("=== fold debug: %s (%d residues) -> %s ===\n", req.Sequence.ID(), req.Sequence.Len(), req.ProviderName)

			processed, err := pipeline.Process(ctx, req)
			if err != nil {
				fmt.Printf("=== fold debug: %s failed: %v ===\n", req.Sequence.ID(), err)
				return processed, err
			}

			fmt.Printf("=== fold debug: %s ok, %d payload bytes ===\n", req.Sequence.ID(), len(processed.Payload))
			return processed, nil
		})
		return debugger
	}
}
