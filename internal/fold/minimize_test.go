package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Minimize_fullyPaired(t *testing.T) {
	s := mustParse(t, "AAAA{CCCC}UUUU")

	result, err := Minimize(s, Options{})
	require.NoError(t, err)

	// all four A-U pairs hold under the naive alignment already; only
	// the loop's own bases stay unpaired
	assert.Equal(t, 4, result.InitialEnergy)
	assert.Equal(t, 4, result.OptimizedEnergy)
	assert.Equal(t, "AAAA{CCCC}UUUU", result.Optimized.String())
}

func Test_Minimize_noPairs(t *testing.T) {
	s := mustParse(t, "AA{G}AA")

	result, err := Minimize(s, Options{})
	require.NoError(t, err)

	// A cannot pair with A; bulges cannot help and the tie resolves to
	// the unchanged alignment
	assert.Equal(t, 5, result.InitialEnergy)
	assert.Equal(t, 5, result.OptimizedEnergy)
	assert.Equal(t, "AA{G}AA", result.Optimized.String())
}

// promoting the leading base of arm A into a bulge loop shifts the
// remaining bases into register, strictly beating the naive alignment
func Test_Minimize_bulgeImproves(t *testing.T) {
	s := mustParse(t, "GGA{UUUU}CCU")

	result, err := Minimize(s, Options{})
	require.NoError(t, err)

	// naive: arms AGG vs CCU only pair at one position
	assert.Equal(t, 8, result.InitialEnergy)
	// bulged: {A}GG vs CCU pairs G-C twice
	assert.Equal(t, 6, result.OptimizedEnergy)
	assert.Less(t, result.OptimizedEnergy, result.InitialEnergy)
	assert.Equal(t, "GG{A}{UUUU}CCU", result.Optimized.String())
}

func Test_Minimize_majorLoopAtFront(t *testing.T) {
	s := mustParse(t, "{G}AA")

	result, err := Minimize(s, Options{})
	require.NoError(t, err)

	// arm A is empty; arm B's bases have nothing to pair against
	assert.Equal(t, 3, result.InitialEnergy)
	assert.Equal(t, 3, result.OptimizedEnergy)
}

func Test_Minimize_noLoop(t *testing.T) {
	_, err := Minimize(mustParse(t, "ACGU"), Options{})
	assert.ErrorIs(t, err, ErrNoMajorLoop)
}

// the searched energy never exceeds the naive baseline
func Test_Minimize_monotonic(t *testing.T) {
	seqs := []string{
		"AAAA{CCCC}UUUU",
		"AA{G}AA",
		"GGA{UUUU}CCU",
		"ACGU{AAAA}ACGU",
		"GAU{CC}GUA",
		"A{C}G{UUU}CA",
		"UUCG{AAGG}CGAA",
	}

	for _, seq := range seqs {
		result, err := Minimize(mustParse(t, seq), Options{})
		require.NoError(t, err, "sequence %q", seq)
		assert.LessOrEqual(t, result.OptimizedEnergy, result.InitialEnergy, "sequence %q", seq)
	}
}

// both reports carry the input and the optimized structure; the input
// structure is never modified by the run
func Test_Minimize_inputUntouched(t *testing.T) {
	s := mustParse(t, "GGA{UUUU}CCU")

	_, err := Minimize(s, Options{})
	require.NoError(t, err)

	assert.Equal(t, "GGA{UUUU}CCU", s.String())
}
