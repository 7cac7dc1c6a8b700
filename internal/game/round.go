package game

import "math/rand"

// Round is one instance of the word grid. Exactly one cell holds
// CorrectWord; every other cell holds the pair's decoy.
type Round struct {
	CorrectWord string
	Cells       []string
}

// GenerateRound builds a fresh round for the stage: one pair sampled
// uniformly from the catalog, decoyCount decoys plus the single correct
// word, shuffled so every permutation is equally likely.
func GenerateRound(stage int, mode Mode, curve Curve, catalog *Catalog, rng *rand.Rand) Round {
	pair := catalog.pick(rng)
	params := curve.Params(stage, mode)

	cells := make([]string, params.DecoyCount+1)
	for i := range cells {
		cells[i] = pair.Decoy
	}
	cells[len(cells)-1] = pair.Correct

	// Fisher-Yates, last index down to 1.
	for i := len(cells) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}

	return Round{CorrectWord: pair.Correct, Cells: cells}
}
