package fold

import (
	"context"
	"sync"
	"time"
)

// MockProvider simulates a folding service for testing.
// It returns a deterministic placeholder payload and counts calls, so tests
// can verify that invalid entries never reach the provider.
type MockProvider struct {
	name    string
	payload []byte
	err     error

	mu    sync.Mutex
	calls int
}

// NewMockProvider creates a mock that succeeds with a placeholder payload.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		name:    "mock",
		payload: []byte("HEADER    MOCK STRUCTURE\nEND\n"),
	}
}

// NewMockProviderWithPayload creates a mock that always returns the given
// payload. An empty payload exercises the empty-response path.
func NewMockProviderWithPayload(payload []byte) *MockProvider {
	return &MockProvider{name: "mock-fixed", payload: payload}
}

// NewMockProviderWithError creates a mock that always fails with err.
func NewMockProviderWithError(err error) *MockProvider {
	return &MockProvider{name: "mock-failing", err: err}
}

// Fold returns the configured payload or error.
func (m *MockProvider) Fold(_ context.Context, _ Sequence) (*ProviderResponse, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &ProviderResponse{Payload: m.payload}, nil
}

// Name returns the provider identifier.
func (m *MockProvider) Name() string { return m.name }

// Calls returns how many times Fold has been invoked.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// NewMockProviderWithCallback creates a mock that delegates to a function.
// The callback sees the sequence, so per-identity behavior (fail entry j,
// delay entry k) lives in the test, not here.
func NewMockProviderWithCallback(callback func(ctx context.Context, seq Sequence) (*ProviderResponse, error)) Provider {
	return &mockProviderCallback{callback: callback}
}

type mockProviderCallback struct {
	callback func(context.Context, Sequence) (*ProviderResponse, error)
}

func (m *mockProviderCallback) Fold(ctx context.Context, seq Sequence) (*ProviderResponse, error) {
	return m.callback(ctx, seq)
}

func (m *mockProviderCallback) Name() string { return "mock-callback" }

// NewMockProviderWithDelay creates a mock whose per-sequence delay is looked
// up by identity. Entries without a configured delay respond immediately.
// Useful for proving result order is independent of completion order.
func NewMockProviderWithDelay(payload []byte, delays map[string]time.Duration) Provider {
	return NewMockProviderWithCallback(func(ctx context.Context, seq Sequence) (*ProviderResponse, error) {
		if d, ok := delays[seq.ID()]; ok {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return &ProviderResponse{Payload: payload}, nil
	})
}
