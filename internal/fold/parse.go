package fold

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnterminatedLoop is returned when a '{' has no matching '}'.
var ErrUnterminatedLoop = errors.New("expected loop end token '}'")

// InvalidTokenError reports a character that is not a recognized
// nucleotide symbol, with its byte offset in the input.
type InvalidTokenError struct {
	Token  byte
	Offset int
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("unexpected nucleotide token %q at offset %d", e.Token, e.Offset)
}

// Parse converts sequence notation into a structure. Each character is
// a nucleotide (case-insensitive a/c/g/u), producing a single-base
// segment, or a bracketed run "{...}" producing one loop segment.
// Braces do not nest and whitespace is not allowed.
//
// Unlike the lenient decoder this replaces, Parse fails on an invalid
// token anywhere in the input instead of silently truncating the run.
func Parse(seq string) (Structure, error) {
	var segments []Segment
	for i := 0; i < len(seq); {
		if seq[i] == '{' {
			end := strings.IndexByte(seq[i+1:], '}')
			if end < 0 {
				return Structure{}, ErrUnterminatedLoop
			}
			bases, err := parseBases(seq[i+1:i+1+end], i+1)
			if err != nil {
				return Structure{}, err
			}
			segments = append(segments, Loop(bases...))
			i += end + 2
			continue
		}

		base, err := parseBase(seq[i], i)
		if err != nil {
			return Structure{}, err
		}
		segments = append(segments, Single(base))
		i++
	}
	return Structure{segments: segments}, nil
}

func parseBase(token byte, offset int) (Nucleotide, error) {
	switch token {
	case 'a', 'A':
		return A, nil
	case 'c', 'C':
		return C, nil
	case 'g', 'G':
		return G, nil
	case 'u', 'U':
		return U, nil
	}
	return 0, &InvalidTokenError{Token: token, Offset: offset}
}

func parseBases(run string, offset int) ([]Nucleotide, error) {
	bases := make([]Nucleotide, 0, len(run))
	for i := 0; i < len(run); i++ {
		base, err := parseBase(run[i], offset+i)
		if err != nil {
			return nil, err
		}
		bases = append(bases, base)
	}
	return bases, nil
}
