package fold

import (
	"errors"
	"strings"
)

// ErrNoMajorLoop is returned when minimization is attempted on a
// structure without a single loop segment to fold around.
var ErrNoMajorLoop = errors.New("structure has no loop segment to fold around")

// Structure is one strand read in a fixed direction, as an ordered
// sequence of segments.
type Structure struct {
	segments []Segment
}

// NewStructure builds a structure over the given segments.
func NewStructure(segments ...Segment) Structure {
	return Structure{segments: segments}
}

// Segments returns the structure's segments in strand order.
func (s Structure) Segments() []Segment { return s.segments }

// Empty reports whether the strand is exhausted.
func (s Structure) Empty() bool { return len(s.segments) == 0 }

// Clone deep-copies the structure. Every search branch works on its
// own clone; nothing is shared between parallel branches.
func (s Structure) Clone() Structure {
	segments := make([]Segment, len(s.segments))
	for i, seg := range s.segments {
		segments[i] = seg.clone()
	}
	return Structure{segments: segments}
}

// String renders the structure in input notation.
func (s Structure) String() string {
	var b strings.Builder
	for _, seg := range s.segments {
		b.WriteString(seg.String())
	}
	return b.String()
}

// SplitAtMajorLoop splits the structure around its longest loop segment,
// ties broken by the last occurrence. Arm A is the reversed prefix, so
// index 0 of both arms sits adjacent to the loop and the arms read
// outward from it. Arm B is the untouched suffix.
func (s Structure) SplitAtMajorLoop() (armA Structure, major Segment, armB Structure, err error) {
	majorIdx := -1
	majorLen := -1
	for i, seg := range s.segments {
		if seg.Kind != LoopKind {
			continue
		}
		if seg.Len() >= majorLen {
			majorIdx, majorLen = i, seg.Len()
		}
	}
	if majorIdx < 0 {
		return Structure{}, Segment{}, Structure{}, ErrNoMajorLoop
	}

	prefix := make([]Segment, 0, majorIdx)
	for i := majorIdx - 1; i >= 0; i-- {
		prefix = append(prefix, s.segments[i].clone())
	}
	suffix := make([]Segment, 0, len(s.segments)-majorIdx-1)
	for _, seg := range s.segments[majorIdx+1:] {
		suffix = append(suffix, seg.clone())
	}
	return Structure{segments: prefix}, s.segments[majorIdx].clone(), Structure{segments: suffix}, nil
}

// withFirstSingleLooped promotes the first single base, scanning from
// the front, into a one-base loop: the base opts out of pairing and
// becomes its own bulge. The second return is false when the structure
// holds no single base to promote.
func (s Structure) withFirstSingleLooped() (Structure, bool) {
	for i, seg := range s.segments {
		if seg.Kind != SingleKind {
			continue
		}
		out := s.Clone()
		out.segments[i] = seg.asLoop()
		return out, true
	}
	return Structure{}, false
}

// splitAfterFirst splits off the leading segment from the remainder.
// An empty structure yields two empty structures.
func (s Structure) splitAfterFirst() (head, tail Structure) {
	if s.Empty() {
		return Structure{}, Structure{}
	}
	head = Structure{segments: []Segment{s.segments[0].clone()}}
	tail = Structure{segments: make([]Segment, 0, len(s.segments)-1)}
	for _, seg := range s.segments[1:] {
		tail.segments = append(tail.segments, seg.clone())
	}
	return head, tail
}

// alignFronts decides how the leading segments of two opposing arms
// line up for one round of pairing. A side whose front is already a
// committed loop cannot offer a base this round: the loop passes
// through on its own while the opposing single is held back, still
// eligible to pair beyond the loop. In every other combination the two
// fronts are consumed one-for-one. An empty side contributes an empty
// head and tail.
func alignFronts(a, b Structure) (aHead, aTail, bHead, bTail Structure) {
	aKind, aOK := a.frontKind()
	bKind, bOK := b.frontKind()

	switch {
	case aOK && bOK && aKind == LoopKind && bKind == SingleKind:
		aHead, aTail = a.splitAfterFirst()
		return aHead, aTail, Structure{}, b.Clone()
	case aOK && bOK && aKind == SingleKind && bKind == LoopKind:
		bHead, bTail = b.splitAfterFirst()
		return Structure{}, a.Clone(), bHead, bTail
	default:
		aHead, aTail = a.splitAfterFirst()
		bHead, bTail = b.splitAfterFirst()
		return aHead, aTail, bHead, bTail
	}
}

// frontKind returns the kind of the leading segment; ok is false when
// the strand is exhausted.
func (s Structure) frontKind() (kind SegmentKind, ok bool) {
	if s.Empty() {
		return 0, false
	}
	return s.segments[0].Kind, true
}

// join appends other's segments to s. When s ends in a loop and other
// begins with one, the two loops coalesce into a single run, folding
// bulges introduced by recursive branching back into one contiguous
// region.
func (s *Structure) join(other Structure) {
	rest := other.segments
	if n := len(s.segments); n > 0 && len(rest) > 0 {
		last := &s.segments[n-1]
		if last.Kind == LoopKind && rest[0].Kind == LoopKind {
			last.Bases = append(last.Bases, rest[0].Bases...)
			rest = rest[1:]
		}
	}
	s.segments = append(s.segments, rest...)
}
