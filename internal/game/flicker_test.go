package game

import (
	"math/rand"
	"testing"
)

func TestFlickerCardinality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for stage := 1; stage <= 10; stage++ {
		for range 200 {
			indices := FlickerIndices(stage, 21, 5, rng)

			wantLen := 1
			if stage >= 5 {
				wantLen = 2
			}
			if len(indices) != wantLen {
				t.Fatalf("stage %d: %d indices, want %d", stage, len(indices), wantLen)
			}

			for _, idx := range indices {
				if idx < 0 || idx >= 21 {
					t.Fatalf("stage %d: index %d out of range [0, 21)", stage, idx)
				}
			}

			if wantLen == 2 && indices[0] == indices[1] {
				t.Fatalf("stage %d: duplicate flicker indices %v", stage, indices)
			}
		}
	}
}

func TestFlickerTwoCellsWithMinimalGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// With only two cells the rejection loop must still terminate and
	// always produce both indices.
	for range 100 {
		indices := FlickerIndices(5, 2, 5, rng)
		if len(indices) != 2 || indices[0] == indices[1] {
			t.Fatalf("got %v, want two distinct indices from a 2-cell grid", indices)
		}
	}
}

func TestFlickerCoversAllCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	seen := make(map[int]bool)
	for range 2000 {
		for _, idx := range FlickerIndices(1, 10, 5, rng) {
			seen[idx] = true
		}
	}

	for i := range 10 {
		if !seen[i] {
			t.Errorf("cell %d was never highlighted over 2000 ticks", i)
		}
	}
}
