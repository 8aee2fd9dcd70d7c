package fold

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSequence(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		seq, err := ParseSequence("MKTAYIAKQRQISFVKSHFSRQDILDLWQYFSYGRAL")
		if err != nil {
			t.Fatalf("ParseSequence failed: %v", err)
		}
		if seq.String() != "MKTAYIAKQRQISFVKSHFSRQDILDLWQYFSYGRAL" {
			t.Errorf("Unexpected residues: %s", seq.String())
		}
		if seq.Len() != 37 {
			t.Errorf("Expected length 37, got %d", seq.Len())
		}
	})

	t.Run("mixed case normalized", func(t *testing.T) {
		seq, err := ParseSequence("mktAyIak")
		if err != nil {
			t.Fatalf("ParseSequence failed: %v", err)
		}
		if seq.String() != "MKTAYIAK" {
			t.Errorf("Expected uppercased MKTAYIAK, got %s", seq.String())
		}
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		seq, err := ParseSequence("  MKTA\n")
		if err != nil {
			t.Fatalf("ParseSequence failed: %v", err)
		}
		if seq.String() != "MKTA" {
			t.Errorf("Expected MKTA, got %s", seq.String())
		}
	})

	t.Run("full alphabet", func(t *testing.T) {
		seq, err := ParseSequence(Alphabet)
		if err != nil {
			t.Fatalf("Alphabet itself should validate: %v", err)
		}
		if seq.String() != Alphabet {
			t.Errorf("Expected %s, got %s", Alphabet, seq.String())
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseSequence("")
		assertValidationKind(t, err, ValidationEmpty)
	})

	t.Run("whitespace only is empty", func(t *testing.T) {
		_, err := ParseSequence("  \n\t ")
		assertValidationKind(t, err, ValidationEmpty)
	})

	t.Run("invalid character", func(t *testing.T) {
		_, err := ParseSequence("MKT1YZ")
		verr := assertValidationKind(t, err, ValidationInvalidCharacter)
		if verr.Position != 3 {
			t.Errorf("Expected position 3, got %d", verr.Position)
		}
		if verr.Char != '1' {
			t.Errorf("Expected char '1', got %q", verr.Char)
		}
	})

	t.Run("internal whitespace rejected", func(t *testing.T) {
		_, err := ParseSequence("MKT AYI")
		verr := assertValidationKind(t, err, ValidationInvalidCharacter)
		if verr.Position != 3 {
			t.Errorf("Expected position 3, got %d", verr.Position)
		}
	})

	t.Run("first invalid position reported", func(t *testing.T) {
		// B and J are both invalid; the first one wins.
		_, err := ParseSequence("ABJ")
		verr := assertValidationKind(t, err, ValidationInvalidCharacter)
		if verr.Position != 1 || verr.Char != 'B' {
			t.Errorf("Expected 'B' at 1, got %q at %d", verr.Char, verr.Position)
		}
	})

	t.Run("boundary length accepted", func(t *testing.T) {
		seq, err := ParseSequence(strings.Repeat("A", MaxSequenceLength))
		if err != nil {
			t.Fatalf("Length %d should be accepted: %v", MaxSequenceLength, err)
		}
		if seq.Len() != MaxSequenceLength {
			t.Errorf("Expected length %d, got %d", MaxSequenceLength, seq.Len())
		}
	})

	t.Run("over boundary rejected", func(t *testing.T) {
		_, err := ParseSequence(strings.Repeat("A", MaxSequenceLength+1))
		verr := assertValidationKind(t, err, ValidationTooLong)
		if verr.Length != MaxSequenceLength+1 {
			t.Errorf("Expected length %d, got %d", MaxSequenceLength+1, verr.Length)
		}
		if verr.Max != MaxSequenceLength {
			t.Errorf("Expected max %d, got %d", MaxSequenceLength, verr.Max)
		}
	})
}

func TestSequenceIdentity(t *testing.T) {
	seq, err := ParseSequence("MKTA")
	if err != nil {
		t.Fatalf("ParseSequence failed: %v", err)
	}
	if seq.ID() != "" {
		t.Errorf("Fresh sequence should have empty identity, got %q", seq.ID())
	}

	labeled := seq.WithID("spike")
	if labeled.ID() != "spike" {
		t.Errorf("Expected identity spike, got %q", labeled.ID())
	}
	if seq.ID() != "" {
		t.Error("WithID must not mutate the original")
	}
}

func TestValidationErrorMessages(t *testing.T) {
	_, err := ParseSequence("MK9")
	if err == nil {
		t.Fatal("Expected error")
	}
	// Positions are human-facing 1-based in the message.
	if !strings.Contains(err.Error(), "at 3") {
		t.Errorf("Expected 1-based position in message, got %q", err.Error())
	}
}

func assertValidationKind(t *testing.T, err error, kind ValidationKind) *ValidationError {
	t.Helper()
	if err == nil {
		t.Fatal("Expected a validation error, got nil")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Kind != kind {
		t.Fatalf("Expected kind %v, got %v", kind, verr.Kind)
	}
	return verr
}
