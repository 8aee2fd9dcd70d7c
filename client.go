package fold

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/pipz"
)

// Client issues structure predictions for single sequences.
// It wraps a pipz pipeline whose terminal stage calls the provider; options
// passed to NewClient stack reliability behavior around that call. The client
// itself never retries: retry, backoff, and rate limiting exist only as
// explicit options so callers cannot trip the remote service's usage limits
// by accident.
//
// A Client is safe for concurrent use and holds no per-request state.
type Client struct {
	pipeline     pipz.Chainable[*PredictionRequest]
	providerName string
	cfg          Config
}

// NewClient creates a Client bound to a provider. Options are applied
// innermost-first, so NewClient(p, cfg, WithRateLimit(1, 1), WithBackoff(3, time.Second))
// retries a rate-limited call.
func NewClient(provider Provider, cfg Config, opts ...Option) *Client {
	pipeline := NewTerminal(provider)
	for _, opt := range opts {
		pipeline = opt(pipeline)
	}
	return &Client{
		pipeline:     pipeline,
		providerName: provider.Name(),
		cfg:          cfg.normalize(),
	}
}

// NewTerminal creates the terminal processor that calls the provider and
// enforces the non-empty payload contract. A success status with no payload
// is a failure: no structure was produced.
func NewTerminal(provider Provider) pipz.Chainable[*PredictionRequest] {
	return pipz.Apply("fold-call", func(ctx context.Context, req *PredictionRequest) (*PredictionRequest, error) {
		resp, err := provider.Fold(ctx, req.Sequence)
		if err != nil {
			return req, err
		}
		if resp == nil || len(resp.Payload) == 0 {
			return req, &PredictionError{Kind: PredictionEmptyResponse}
		}
		req.Payload = resp.Payload
		return req, nil
	})
}

// GetPipeline returns the internal pipeline for composition.
// This is used by WithFallback to combine pipelines.
func (c *Client) GetPipeline() pipz.Chainable[*PredictionRequest] {
	return c.pipeline
}

// Style returns the rendering style attached to this client's requests.
func (c *Client) Style() Style { return c.cfg.Style }

// Predict folds one validated sequence and returns its result. The configured
// timeout bounds the whole call; exceeding it yields a timeout-kind failure.
// Exactly one outbound request is made per call unless retry options were
// stacked at construction.
func (c *Client) Predict(ctx context.Context, seq Sequence) PredictionResult {
	return c.predict(ctx, seq, c.cfg.Style)
}

// PredictStyled is Predict with a per-call style override.
func (c *Client) PredictStyled(ctx context.Context, seq Sequence, style Style) PredictionResult {
	if style == "" {
		style = c.cfg.Style
	}
	return c.predict(ctx, seq, style)
}

func (c *Client) predict(ctx context.Context, seq Sequence, style Style) PredictionResult {
	requestID := uuid.New().String()
	req := &PredictionRequest{
		Sequence:     seq,
		Style:        style,
		RequestID:    requestID,
		ProviderName: c.providerName,
	}

	capitan.Info(ctx, RequestStarted,
		RequestIDKey.Field(requestID),
		SequenceIDKey.Field(seq.ID()),
		SeqLengthKey.Field(seq.Len()),
		StyleKey.Field(string(style)),
		ProviderKey.Field(c.providerName),
	)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	processed, err := c.pipeline.Process(ctx, req)
	duration := time.Since(start)

	if err != nil {
		perr := classifyError(err)
		capitan.Error(ctx, RequestFailed,
			RequestIDKey.Field(requestID),
			SequenceIDKey.Field(seq.ID()),
			ProviderKey.Field(c.providerName),
			ErrorKey.Field(perr.Error()),
			ErrorKindKey.Field(perr.Kind.String()),
			DurationMsKey.Field(int(duration.Milliseconds())),
		)
		return PredictionResult{Identity: seq.ID(), Style: style, Err: perr}
	}

	capitan.Info(ctx, RequestCompleted,
		RequestIDKey.Field(requestID),
		SequenceIDKey.Field(seq.ID()),
		ProviderKey.Field(c.providerName),
		PayloadBytesKey.Field(len(processed.Payload)),
		DurationMsKey.Field(int(duration.Milliseconds())),
	)
	return PredictionResult{Identity: seq.ID(), Style: style, Payload: processed.Payload}
}
