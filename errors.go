package fold

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// PredictionKind discriminates prediction failures.
type PredictionKind int

// Prediction failure kinds.
const (
	// PredictionNetwork covers transport failures: connection refused, DNS
	// resolution, broken pipes.
	PredictionNetwork PredictionKind = iota
	// PredictionTimeout is a network failure caused by the per-request
	// wall-clock bound being exceeded.
	PredictionTimeout
	// PredictionService means the remote service answered with an error status.
	PredictionService
	// PredictionEmptyResponse means the service answered success but produced
	// no structural payload.
	PredictionEmptyResponse
	// PredictionValidation means the input never reached the service because
	// it failed sequence validation.
	PredictionValidation
)

func (k PredictionKind) String() string {
	switch k {
	case PredictionNetwork:
		return "network"
	case PredictionTimeout:
		return "timeout"
	case PredictionService:
		return "service"
	case PredictionEmptyResponse:
		return "empty_response"
	case PredictionValidation:
		return "validation"
	}
	return "unknown"
}

// PredictionError reports why a prediction failed.
type PredictionError struct {
	Kind       PredictionKind
	StatusCode int    // Service kind only: HTTP status returned by the remote
	Body       string // Service kind only: response body, for diagnostics
	Err        error  // Underlying cause, if any
}

func (e *PredictionError) Error() string {
	switch e.Kind {
	case PredictionService:
		return fmt.Sprintf("prediction service error (%d): %s", e.StatusCode, e.Body)
	case PredictionEmptyResponse:
		return "prediction succeeded but returned no structure"
	case PredictionTimeout:
		return fmt.Sprintf("prediction timed out: %v", e.Err)
	case PredictionValidation:
		return fmt.Sprintf("invalid sequence: %v", e.Err)
	}
	return fmt.Sprintf("prediction network error: %v", e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// classifyError wraps an arbitrary provider or pipeline error as a
// *PredictionError. Already-classified errors pass through unchanged;
// deadline and transport timeouts become PredictionTimeout.
func classifyError(err error) *PredictionError {
	var perr *PredictionError
	if errors.As(err, &perr) {
		return perr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &PredictionError{Kind: PredictionTimeout, Err: err}
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return &PredictionError{Kind: PredictionTimeout, Err: err}
	}
	return &PredictionError{Kind: PredictionNetwork, Err: err}
}
