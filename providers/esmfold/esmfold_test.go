package esmfold

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/proteinscape/fold"
)

func testSequence(t *testing.T) fold.Sequence {
	t.Helper()
	seq, err := fold.ParseSequence("MKTAYIAKQRQISFVKSHFSRQDILDLWQYFSYGRAL")
	if err != nil {
		t.Fatalf("ParseSequence failed: %v", err)
	}
	return seq.WithID("test")
}

func TestProviderFold(t *testing.T) {
	const pdb = "HEADER    PREDICTED STRUCTURE\nATOM      1  N   MET A   1\nEND\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Expected form content type, got %s", ct)
		}

		// The body is the raw sequence text, no envelope.
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("Failed to read body: %v", err)
		}
		if string(body) != "MKTAYIAKQRQISFVKSHFSRQDILDLWQYFSYGRAL" {
			t.Errorf("Unexpected body: %q", body)
		}

		w.Write([]byte(pdb))
	}))
	defer server.Close()

	provider := New(Config{BaseURL: server.URL})

	resp, err := provider.Fold(context.Background(), testSequence(t))
	if err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if string(resp.Payload) != pdb {
		t.Errorf("Payload not passed through verbatim: %q", resp.Payload)
	}
}

func TestProviderServiceError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"internal error", http.StatusInternalServerError, "INTERNAL SERVER ERROR"},
		{"rate limited", http.StatusTooManyRequests, "too many requests"},
		{"rejected sequence", http.StatusBadRequest, "sequence too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			provider := New(Config{BaseURL: server.URL})

			_, err := provider.Fold(context.Background(), testSequence(t))
			if err == nil {
				t.Fatal("Expected error")
			}

			var perr *fold.PredictionError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *fold.PredictionError, got %T: %v", err, err)
			}
			if perr.Kind != fold.PredictionService {
				t.Errorf("Expected service kind, got %v", perr.Kind)
			}
			if perr.StatusCode != tt.statusCode {
				t.Errorf("Expected status %d, got %d", tt.statusCode, perr.StatusCode)
			}
			if perr.Body != tt.body {
				t.Errorf("Expected body %q, got %q", tt.body, perr.Body)
			}
		})
	}
}

func TestProviderTimeout(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	provider := New(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond})

	_, err := provider.Fold(context.Background(), testSequence(t))
	if err == nil {
		t.Fatal("Expected timeout error")
	}

	var nerr interface{ Timeout() bool }
	if !errors.As(err, &nerr) || !nerr.Timeout() {
		t.Errorf("Expected a transport timeout, got %v", err)
	}
}

func TestProviderDefaults(t *testing.T) {
	provider := New(Config{})
	if provider.Name() != "esmfold" {
		t.Errorf("Expected name esmfold, got %q", provider.Name())
	}
	if provider.baseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL, got %q", provider.baseURL)
	}
}

// TestProviderThroughClient checks end-to-end classification: a transport
// timeout surfaces as a timeout-kind prediction failure.
func TestProviderThroughClient(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	provider := New(Config{BaseURL: server.URL})
	client := fold.NewClient(provider, fold.Config{Timeout: 20 * time.Millisecond})

	result := client.Predict(context.Background(), testSequence(t))
	if result.OK() {
		t.Fatal("Expected failure")
	}
	var perr *fold.PredictionError
	if !errors.As(result.Err, &perr) {
		t.Fatalf("Expected *fold.PredictionError, got %T", result.Err)
	}
	if perr.Kind != fold.PredictionTimeout {
		t.Errorf("Expected timeout kind, got %v", perr.Kind)
	}
}
