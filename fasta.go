package fold

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseFASTA reads `>`-delimited records into batch entries.
//
// Each record's header line (minus the `>`, up to the first whitespace)
// becomes the entry identity; records with a blank header get an ordinal
// identity. Sequence lines are concatenated with internal newlines removed.
// Text before the first `>` is tolerated and ignored when blank, and treated
// as a single headerless record otherwise, so a bare pasted sequence still
// parses.
//
// No sequence validation happens here: validation failures belong in the
// batch result, one per record, not in the parse step.
func ParseFASTA(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []Entry
	var header string
	var seq strings.Builder
	sawRecord := false

	flush := func() {
		if !sawRecord && seq.Len() == 0 {
			return
		}
		identity := header
		if identity == "" {
			identity = fmt.Sprintf("sequence_%d", len(entries)+1)
		}
		entries = append(entries, Entry{Identity: identity, Raw: seq.String()})
		seq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if sawRecord || seq.Len() > 0 {
				flush()
			}
			header = headerID(line)
			sawRecord = true
			continue
		}
		if line == "" {
			continue
		}
		if !sawRecord && seq.Len() == 0 {
			// Bare sequence text with no header at all.
			header = ""
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fasta: %w", err)
	}
	flush()

	if len(entries) == 0 {
		return nil, fmt.Errorf("no sequence records found")
	}
	return entries, nil
}

// headerID extracts the record identity from a `>` line: the first
// whitespace-separated token after the marker.
func headerID(line string) string {
	h := strings.TrimSpace(strings.TrimPrefix(line, ">"))
	if i := strings.IndexAny(h, " \t"); i >= 0 {
		h = h[:i]
	}
	return h
}
