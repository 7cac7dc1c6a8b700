package game

import "math/rand"

// FlickerIndices samples the cells to highlight for one hard-mode flicker
// tick. One index is always drawn; stages at or above twoFromStage draw a
// second one, rejection-sampled until it differs from the first (cell
// counts are always >= 2, so this terminates). The result replaces the
// previous tick's set entirely.
func FlickerIndices(stage, cellCount, twoFromStage int, rng *rand.Rand) []int {
	first := rng.Intn(cellCount)
	if stage < twoFromStage {
		return []int{first}
	}

	second := rng.Intn(cellCount)
	for second == first {
		second = rng.Intn(cellCount)
	}
	return []int{first, second}
}
