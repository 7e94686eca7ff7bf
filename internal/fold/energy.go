package fold

// Score is the free energy proxy for a pairing of two opposing arms.
// Every base starts unpaired: loops contribute their full base count
// and each single base contributes 1. The single bases of both arms,
// loops excluded, are then zipped position-wise and every canonical
// pair cancels the unit counted on each side, hence -2 per pair.
// Lower is more stable. This is a toy model, not a thermodynamic free
// energy.
func Score(armA, armB Structure) int {
	penaltyA, singlesA := unpaired(armA)
	penaltyB, singlesB := unpaired(armB)

	bonds := 0
	n := len(singlesA)
	if len(singlesB) < n {
		n = len(singlesB)
	}
	for i := 0; i < n; i++ {
		if CanPair(singlesA[i], singlesB[i]) {
			bonds++
		}
	}

	return penaltyA + penaltyB - 2*bonds
}

// unpaired sums the arm's baseline penalty and collects its single
// bases in strand order.
func unpaired(arm Structure) (penalty int, singles []Nucleotide) {
	for _, seg := range arm.segments {
		switch seg.Kind {
		case LoopKind:
			penalty += seg.Len()
		case SingleKind:
			penalty++
			singles = append(singles, seg.Bases[0])
		}
	}
	return penalty, singles
}
