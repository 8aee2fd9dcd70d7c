package fold

import "github.com/zoobzio/capitan"

// Signals for hook events.
const (
	RequestStarted        = capitan.Signal("fold.request.started")
	RequestCompleted      = capitan.Signal("fold.request.completed")
	RequestFailed         = capitan.Signal("fold.request.failed")
	ProviderCallStarted   = capitan.Signal("fold.provider.call.started")
	ProviderCallCompleted = capitan.Signal("fold.provider.call.completed")
	ProviderCallFailed    = capitan.Signal("fold.provider.call.failed")
	BatchStarted          = capitan.Signal("fold.batch.started")
	BatchCompleted        = capitan.Signal("fold.batch.completed")
)

// Keys for hook event fields.
var (
	// Request identification.
	RequestIDKey  = capitan.NewStringKey("fold.request.id")
	SequenceIDKey = capitan.NewStringKey("fold.sequence.id")
	SeqLengthKey  = capitan.NewIntKey("fold.sequence.length")
	StyleKey      = capitan.NewStringKey("fold.style")

	// Error information.
	ErrorKey     = capitan.NewStringKey("fold.error")
	ErrorKindKey = capitan.NewStringKey("fold.error.kind")

	// Provider information.
	ProviderKey = capitan.NewStringKey("fold.provider")

	// Provider call metrics.
	PayloadBytesKey   = capitan.NewIntKey("fold.payload.bytes")
	DurationMsKey     = capitan.NewIntKey("fold.duration.ms")
	HTTPStatusCodeKey = capitan.NewIntKey("fold.http.status.code")

	// Batch metrics.
	BatchIDKey        = capitan.NewStringKey("fold.batch.id")
	BatchSizeKey      = capitan.NewIntKey("fold.batch.size")
	BatchSucceededKey = capitan.NewIntKey("fold.batch.succeeded")
	BatchFailedKey    = capitan.NewIntKey("fold.batch.failed")
)
