package fold

import (
	"fmt"
	"strings"
)

// MaxSequenceLength is the longest sequence accepted for prediction. The
// ESMFold public endpoint rejects anything longer.
const MaxSequenceLength = 1500

// Alphabet is the set of residue letters a valid sequence may contain:
// the 20 standard amino acids in one-letter code.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

var validResidue = func() [256]bool {
	var t [256]bool
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = true
	}
	return t
}()

// Sequence is a validated amino-acid sequence. It is immutable once built:
// construct one through ParseSequence or ParseFASTA, never directly.
type Sequence struct {
	id       string
	residues string
}

// ID returns the sequence identity: a FASTA header, a caller-supplied label,
// or a generated ordinal.
func (s Sequence) ID() string { return s.id }

// String returns the uppercased residue string.
func (s Sequence) String() string { return s.residues }

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s.residues) }

// WithID returns a copy of the sequence carrying the given identity.
func (s Sequence) WithID(id string) Sequence {
	s.id = id
	return s
}

// ValidationKind discriminates validation failures.
type ValidationKind int

// Validation failure kinds.
const (
	ValidationEmpty ValidationKind = iota
	ValidationInvalidCharacter
	ValidationTooLong
)

func (k ValidationKind) String() string {
	switch k {
	case ValidationEmpty:
		return "empty"
	case ValidationInvalidCharacter:
		return "invalid_character"
	case ValidationTooLong:
		return "too_long"
	}
	return "unknown"
}

// ValidationError reports why a raw string is not a valid sequence.
type ValidationError struct {
	Kind     ValidationKind
	Position int  // 0-based index of the offending character (InvalidCharacter only)
	Char     rune // The offending character (InvalidCharacter only)
	Length   int  // Observed length (TooLong only)
	Max      int  // Configured maximum (TooLong only)
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ValidationEmpty:
		return "empty sequence"
	case ValidationInvalidCharacter:
		return fmt.Sprintf("invalid residue %q at %d; allowed: %s", e.Char, e.Position+1, Alphabet)
	case ValidationTooLong:
		return fmt.Sprintf("sequence length %d exceeds maximum %d", e.Length, e.Max)
	}
	return "invalid sequence"
}

// ParseSequence validates raw text as an amino-acid sequence.
// Surrounding whitespace is trimmed and letters are uppercased; mixed-case
// input is normalized, not rejected. On failure the returned error is a
// *ValidationError. The zero-value identity is empty; attach one with WithID.
func ParseSequence(raw string) (Sequence, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return Sequence{}, &ValidationError{Kind: ValidationEmpty}
	}
	if len(s) > MaxSequenceLength {
		return Sequence{}, &ValidationError{Kind: ValidationTooLong, Length: len(s), Max: MaxSequenceLength}
	}
	pos := 0
	for _, r := range s {
		if r > 255 || !validResidue[byte(r)] {
			return Sequence{}, &ValidationError{Kind: ValidationInvalidCharacter, Position: pos, Char: r}
		}
		pos++
	}
	return Sequence{residues: s}, nil
}
