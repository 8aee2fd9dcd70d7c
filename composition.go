package fold

// Composition holds per-residue counts for one sequence. It is the data
// behind an amino-acid distribution chart; drawing the chart is the
// presentation layer's job.
type Composition struct {
	counts map[byte]int
	total  int
}

// Compose counts residue occurrences in a validated sequence.
func Compose(seq Sequence) Composition {
	counts := make(map[byte]int, len(Alphabet))
	s := seq.String()
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	return Composition{counts: counts, total: len(s)}
}

// Count returns the number of occurrences of a residue.
func (c Composition) Count(residue byte) int { return c.counts[residue] }

// Fraction returns a residue's share of the sequence, in [0, 1].
func (c Composition) Fraction(residue byte) float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.counts[residue]) / float64(c.total)
}

// Total returns the sequence length the counts were taken over.
func (c Composition) Total() int { return c.total }

// Residues returns the residues present, in alphabet order, so charts render
// deterministically.
func (c Composition) Residues() []byte {
	out := make([]byte, 0, len(c.counts))
	for i := 0; i < len(Alphabet); i++ {
		if c.counts[Alphabet[i]] > 0 {
			out = append(out, Alphabet[i])
		}
	}
	return out
}
