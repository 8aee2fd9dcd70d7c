package fold

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
)

// Entry is one batch input: an identity plus raw, unvalidated sequence text.
// An empty identity gets an ordinal one ("sequence_N") assigned by the run.
type Entry struct {
	Identity string
	Raw      string
}

// DefaultWorkers is the bounded parallelism used when BatchConfig.Workers is
// zero. The remote service is shared, so the default stays modest.
const DefaultWorkers = 4

// BatchConfig holds coordinator-level configuration.
type BatchConfig struct {
	Workers int // Concurrent predictions per batch; 1 means strictly sequential
}

// Coordinator drives a Client across an ordered collection of sequences.
// Each entry runs its own validate-then-predict pipeline independently: a
// validation failure never reaches the provider, a prediction failure never
// aborts the rest, and every entry yields exactly one result.
//
// A Coordinator holds no state across runs; the same instance may serve many
// batches, concurrently if desired.
type Coordinator struct {
	client  *Client
	workers int
}

// NewCoordinator creates a Coordinator over the given client.
func NewCoordinator(client *Client, cfg BatchConfig) *Coordinator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Coordinator{client: client, workers: workers}
}

// BatchResult is the ordered outcome of one batch run. Results appear in
// input order, one per entry, regardless of completion order.
type BatchResult struct {
	ID      string // Unique batch identifier
	Results []PredictionResult
}

// Get returns the result for the given identity.
func (b *BatchResult) Get(identity string) (PredictionResult, bool) {
	for _, r := range b.Results {
		if r.Identity == identity {
			return r, true
		}
	}
	return PredictionResult{}, false
}

// Succeeded returns the number of entries that produced a payload.
func (b *BatchResult) Succeeded() int {
	n := 0
	for _, r := range b.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of entries that did not produce a payload.
func (b *BatchResult) Failed() int { return len(b.Results) - b.Succeeded() }

// Run processes every entry and returns one result per entry, in input order.
//
// Entries are fanned out to a bounded worker pool; each worker writes its
// result to the entry's own index, so ordering never depends on completion
// order. Canceling ctx stops dispatching new predictions (in-flight calls are
// aborted by the transport); entries never dispatched still appear in the
// result, failed with the cancellation cause.
func (c *Coordinator) Run(ctx context.Context, entries []Entry) *BatchResult {
	batchID := uuid.New().String()

	capitan.Info(ctx, BatchStarted,
		BatchIDKey.Field(batchID),
		BatchSizeKey.Field(len(entries)),
		ProviderKey.Field(c.client.providerName),
	)

	results := make([]PredictionResult, len(entries))
	done := make([]bool, len(entries))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.runOne(ctx, i, entries[i])
				done[i] = true
			}
		}()
	}

dispatch:
	for i := range entries {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	// Entries never dispatched still owe a result.
	for i := range entries {
		if !done[i] {
			results[i] = PredictionResult{
				Identity: identityFor(i, entries[i]),
				Style:    c.client.cfg.Style,
				Err:      &PredictionError{Kind: PredictionNetwork, Err: context.Cause(ctx)},
			}
		}
	}

	batch := &BatchResult{ID: batchID, Results: results}
	capitan.Info(ctx, BatchCompleted,
		BatchIDKey.Field(batchID),
		BatchSizeKey.Field(len(entries)),
		BatchSucceededKey.Field(batch.Succeeded()),
		BatchFailedKey.Field(batch.Failed()),
	)
	return batch
}

// runOne is the per-entry pipeline: validate, then predict if valid.
func (c *Coordinator) runOne(ctx context.Context, index int, entry Entry) PredictionResult {
	identity := identityFor(index, entry)

	seq, err := ParseSequence(entry.Raw)
	if err != nil {
		return PredictionResult{
			Identity: identity,
			Style:    c.client.cfg.Style,
			Err:      &PredictionError{Kind: PredictionValidation, Err: err},
		}
	}

	return c.client.Predict(ctx, seq.WithID(identity))
}

// identityFor resolves an entry's identity, generating an ordinal when the
// caller supplied none. Ordinals are 1-based to match FASTA conventions.
func identityFor(index int, entry Entry) string {
	if entry.Identity != "" {
		return entry.Identity
	}
	return fmt.Sprintf("sequence_%d", index+1)
}
