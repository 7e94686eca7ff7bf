// Package fold computes an approximate minimum free energy secondary
// structure for a single linear RNA sequence. The sequence is folded
// around its largest pre-identified loop and the base-pairing between
// the two resulting arms is optimized by a recursive, parallel search
// over bulge alternatives. The scoring model is a simplified proxy:
// no stacking, no loop-length tables, no pseudoknots.
package fold

// Nucleotide is one of the four RNA bases.
type Nucleotide byte

const (
	A Nucleotide = 'A'
	C Nucleotide = 'C'
	G Nucleotide = 'G'
	U Nucleotide = 'U'
)

// CanPair reports whether a and b form a Watson-Crick pair.
// Only A-U and C-G pair, no wobble pairs.
func CanPair(a, b Nucleotide) bool {
	switch {
	case a == A && b == U, a == U && b == A:
		return true
	case a == C && b == G, a == G && b == C:
		return true
	}
	return false
}
