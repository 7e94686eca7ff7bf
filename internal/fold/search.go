package fold

import "golang.org/x/sync/errgroup"

// searcher runs the recursive branch search. branchLimit caps how many
// candidate branches run concurrently at each recursion level; 0 means
// one goroutine per branch, 1 runs the fan-out serially.
type searcher struct {
	branchLimit int
}

type branchResult struct {
	armA   Structure
	armB   Structure
	energy int
}

// search explores the alignments of two opposing arms and returns the
// minimum-energy assignment. At every level up to three candidates are
// evaluated in parallel: the arms unchanged, and one bulge variant per
// arm with its leading single base promoted to a loop. A bulge variant
// is skipped when the arm has no single base left. Ties go to the
// earliest candidate in that order, so an unchanged alignment always
// beats an equally good bulge.
func (f *searcher) search(armA, armB Structure) branchResult {
	candidates := make([]branchResult, 0, 3)
	candidates = append(candidates, branchResult{armA: armA.Clone(), armB: armB.Clone()})
	if bulged, ok := armA.withFirstSingleLooped(); ok {
		candidates = append(candidates, branchResult{armA: bulged, armB: armB.Clone()})
	}
	if bulged, ok := armB.withFirstSingleLooped(); ok {
		candidates = append(candidates, branchResult{armA: armA.Clone(), armB: bulged})
	}

	results := make([]branchResult, len(candidates))
	var group errgroup.Group
	if f.branchLimit > 0 {
		group.SetLimit(f.branchLimit)
	}
	for i := range candidates {
		i := i
		group.Go(func() error {
			results[i] = f.evaluate(candidates[i].armA, candidates[i].armB)
			return nil
		})
	}
	// branches cannot fail; Wait is the join barrier before reduction
	_ = group.Wait()

	best := results[0]
	for _, r := range results[1:] {
		if r.energy < best.energy {
			best = r
		}
	}
	return best
}

// evaluate scores one candidate: align the arm fronts, score the
// heads, then recurse on the tails while both still hold segments.
// Once either strand is exhausted the remaining tails are scored
// as-is with no further branching.
func (f *searcher) evaluate(armA, armB Structure) branchResult {
	aHead, aTail, bHead, bTail := alignFronts(armA, armB)
	energy := Score(aHead, bHead)

	if !aTail.Empty() && !bTail.Empty() {
		tail := f.search(aTail, bTail)
		aHead.join(tail.armA)
		bHead.join(tail.armB)
		energy += tail.energy
	} else {
		energy += Score(aTail, bTail)
		aHead.join(aTail)
		bHead.join(bTail)
	}

	return branchResult{armA: aHead, armB: bHead, energy: energy}
}
