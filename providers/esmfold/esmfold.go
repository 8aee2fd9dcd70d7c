// Package esmfold implements the fold Provider interface for the ESMFold
// Atlas API (https://esmatlas.com/about).
//
// The API takes the raw sequence text as the POST body and answers with PDB
// text. There is no authentication and no request envelope.
package esmfold

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zoobzio/capitan"

	"github.com/proteinscape/fold"
)

// DefaultBaseURL is the hosted ESMFold prediction endpoint.
const DefaultBaseURL = "https://api.esmatlas.com/foldSequence/v1/pdb/"

// Provider calls the ESMFold Atlas API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	name       string
}

// Config holds configuration for the ESMFold provider.
type Config struct {
	BaseURL string        // Optional, defaults to DefaultBaseURL
	Timeout time.Duration // Optional transport-level timeout, defaults to 60s
}

// New creates a new ESMFold provider.
func New(config Config) *Provider {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &Provider{
		baseURL: config.BaseURL,
		name:    "esmfold",
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// Fold sends one sequence to the ESMFold API and returns the PDB payload.
// The payload is passed through verbatim; parsing it is out of scope.
func (p *Provider) Fold(ctx context.Context, seq fold.Sequence) (*fold.ProviderResponse, error) {
	startTime := time.Now()

	capitan.Info(ctx, fold.ProviderCallStarted,
		fold.ProviderKey.Field(p.name),
		fold.SequenceIDKey.Field(seq.ID()),
		fold.SeqLengthKey.Field(seq.Len()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(seq.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		duration := time.Since(startTime)
		capitan.Error(ctx, fold.ProviderCallFailed,
			fold.ProviderKey.Field(p.name),
			fold.SequenceIDKey.Field(seq.ID()),
			fold.ErrorKey.Field(err.Error()),
			fold.DurationMsKey.Field(int(duration.Milliseconds())),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	duration := time.Since(startTime)

	if resp.StatusCode != http.StatusOK {
		capitan.Error(ctx, fold.ProviderCallFailed,
			fold.ProviderKey.Field(p.name),
			fold.SequenceIDKey.Field(seq.ID()),
			fold.HTTPStatusCodeKey.Field(resp.StatusCode),
			fold.ErrorKey.Field(fmt.Sprintf("status %d", resp.StatusCode)),
			fold.DurationMsKey.Field(int(duration.Milliseconds())),
		)
		return nil, &fold.PredictionError{
			Kind:       fold.PredictionService,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	capitan.Info(ctx, fold.ProviderCallCompleted,
		fold.ProviderKey.Field(p.name),
		fold.SequenceIDKey.Field(seq.ID()),
		fold.HTTPStatusCodeKey.Field(resp.StatusCode),
		fold.PayloadBytesKey.Field(len(body)),
		fold.DurationMsKey.Field(int(duration.Milliseconds())),
	)

	return &fold.ProviderResponse{Payload: body}, nil
}
