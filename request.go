package fold

// PredictionRequest flows through the pipz pipeline.
// It wraps one validated sequence plus the requested output style.
type PredictionRequest struct {
	// Input fields
	Sequence Sequence // The validated sequence to fold
	Style    Style    // Rendering style, passed through for the presentation layer

	// Metadata fields
	RequestID    string // Unique identifier for this request
	ProviderName string // Name of the provider being used

	// Output fields (populated by pipeline)
	Payload []byte // Raw structural payload from the provider
}

// PredictionResult is the outcome of one prediction: either a structural
// payload or a classified error, keyed by the originating sequence identity.
type PredictionResult struct {
	Identity string // Sequence identity this result belongs to
	Style    Style  // Style the prediction was requested with
	Payload  []byte // Structural payload; nil when Err is set
	Err      error  // *PredictionError describing the failure; nil on success
}

// OK reports whether the prediction produced a payload.
func (r PredictionResult) OK() bool { return r.Err == nil }
