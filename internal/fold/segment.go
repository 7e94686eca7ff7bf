package fold

import "strings"

// SegmentKind discriminates the two segment variants.
type SegmentKind int

const (
	// SingleKind is a lone base not yet committed to a loop,
	// still a candidate for pairing.
	SingleKind SegmentKind = iota

	// LoopKind is a run of bases committed as an unpaired loop region.
	// It is never paired base-by-base, only consumed as a block.
	LoopKind
)

// Segment is one unit of a strand: a single base or a committed loop run.
type Segment struct {
	Kind  SegmentKind
	Bases []Nucleotide
}

// Single returns a segment holding one pairable base.
func Single(base Nucleotide) Segment {
	return Segment{Kind: SingleKind, Bases: []Nucleotide{base}}
}

// Loop returns a committed loop segment over the given bases.
func Loop(bases ...Nucleotide) Segment {
	return Segment{Kind: LoopKind, Bases: bases}
}

// Len is the number of bases in the segment.
func (s Segment) Len() int { return len(s.Bases) }

// clone deep-copies the segment so branches never share base slices.
func (s Segment) clone() Segment {
	bases := make([]Nucleotide, len(s.Bases))
	copy(bases, s.Bases)
	return Segment{Kind: s.Kind, Bases: bases}
}

// asLoop returns the segment committed to a loop. A single base becomes
// a one-base loop, a loop is returned as-is.
func (s Segment) asLoop() Segment {
	if s.Kind == LoopKind {
		return s.clone()
	}
	return Loop(s.Bases...).clone()
}

// String renders the segment in input notation: a bare letter for a
// single base, "{...}" for a loop run.
func (s Segment) String() string {
	var b strings.Builder
	if s.Kind == LoopKind {
		b.WriteByte('{')
	}
	for _, base := range s.Bases {
		b.WriteByte(byte(base))
	}
	if s.Kind == LoopKind {
		b.WriteByte('}')
	}
	return b.String()
}
