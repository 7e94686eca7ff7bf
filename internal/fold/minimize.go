package fold

// Options tune the minimization run.
type Options struct {
	// BranchLimit caps the candidate branches evaluated concurrently
	// at each recursion level. 0 runs one goroutine per branch, 1 runs
	// the search serially.
	BranchLimit int
}

// Result is the outcome of minimizing one structure.
type Result struct {
	// Optimized is the reassembled structure with the chosen pairing.
	Optimized Structure

	// InitialEnergy scores the naive one-for-one alignment of the arms
	// around the major loop, before any search.
	InitialEnergy int

	// OptimizedEnergy is the minimum energy found by the search.
	OptimizedEnergy int
}

// Minimize folds the structure around its major loop: the longest loop
// segment splits the strand into two arms read outward from the loop,
// the search picks the minimum-energy pairing between them, and the
// winning arms are reassembled around the loop in original strand
// order. Both reported energies include the major loop's own base
// count. Returns ErrNoMajorLoop when the structure holds no loop.
func Minimize(s Structure, opts Options) (Result, error) {
	armA, major, armB, err := s.SplitAtMajorLoop()
	if err != nil {
		return Result{}, err
	}

	initial := Score(armA, armB)

	f := &searcher{branchLimit: opts.BranchLimit}
	best := f.search(armA, armB)

	// arm A was reversed by the split; restore strand order
	segments := make([]Segment, 0, len(best.armA.segments)+1+len(best.armB.segments))
	for i := len(best.armA.segments) - 1; i >= 0; i-- {
		segments = append(segments, best.armA.segments[i])
	}
	segments = append(segments, major)
	segments = append(segments, best.armB.segments...)

	return Result{
		Optimized:       Structure{segments: segments},
		InitialEnergy:   initial + major.Len(),
		OptimizedEnergy: best.energy + major.Len(),
	}, nil
}
