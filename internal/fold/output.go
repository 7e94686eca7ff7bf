package fold

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Fold is one structure with its energy, as reported to the caller.
type Fold struct {
	// Notation is the structure in input notation, loops bracketed.
	Notation string `json:"notation"`

	// Energy is the free energy proxy, lower is more stable.
	Energy int `json:"energy"`
}

// Output is the report written for a single minimization run.
type Output struct {
	// Seq is the raw input notation as passed by the user.
	Seq string `json:"seq"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to fold the sequence
	Execution float64 `json:"execution"`

	// Input is the parsed structure with its naive baseline energy.
	Input Fold `json:"input"`

	// Optimized is the minimized structure with its searched energy.
	Optimized Fold `json:"optimized"`
}

// WriteJSON writes a fold report to the filename requested.
func WriteJSON(
	filename,
	seq string,
	input Structure,
	result Result,
	seconds float64,
) (output []byte, err error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		Seq:       seq,
		Time:      stamp,
		Execution: seconds,
		Input: Fold{
			Notation: input.String(),
			Energy:   result.InitialEnergy,
		},
		Optimized: Fold{
			Notation: result.Optimized.String(),
			Energy:   result.OptimizedEnergy,
		},
	}

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize fold output: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write fold output to %s: %v", filename, err)
	}

	return output, nil
}
