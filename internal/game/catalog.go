// Package game implements the oddword puzzle logic: the word catalog,
// the per-stage difficulty curve, round generation, the hard-mode flicker
// sampler, and the session state machine. It contains pure logic with no
// terminal dependencies; the platform layer drives it and renders snapshots.
package game

import (
	"fmt"
	"math/rand"
)

// WordPair is one catalog entry: the word the player must spot and the
// near-identical decoy that fills every other cell of the grid.
type WordPair struct {
	Correct string `yaml:"correct"`
	Decoy   string `yaml:"decoy"`
}

// Catalog is a validated set of word pairs rounds are sampled from.
type Catalog struct {
	pairs []WordPair
}

// NewCatalog validates the pairs and builds a catalog.
// Every pair must hold two distinct words of the same rune length that
// differ in exactly one position; a decoy grid is only solvable if the
// odd word is a genuine one-character variation.
func NewCatalog(pairs []WordPair) (*Catalog, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("catalog: no word pairs")
	}

	for i, p := range pairs {
		if p.Correct == "" || p.Decoy == "" {
			return nil, fmt.Errorf("catalog: pair %d has an empty word", i)
		}
		if err := checkPair(p); err != nil {
			return nil, fmt.Errorf("catalog: pair %d (%q/%q): %w", i, p.Correct, p.Decoy, err)
		}
	}

	cloned := make([]WordPair, len(pairs))
	copy(cloned, pairs)
	return &Catalog{pairs: cloned}, nil
}

// checkPair verifies the single-differing-rune invariant.
func checkPair(p WordPair) error {
	correct := []rune(p.Correct)
	decoy := []rune(p.Decoy)

	if len(correct) != len(decoy) {
		return fmt.Errorf("words differ in length")
	}

	diffs := 0
	for i := range correct {
		if correct[i] != decoy[i] {
			diffs++
		}
	}

	switch diffs {
	case 0:
		return fmt.Errorf("words are identical")
	case 1:
		return nil
	default:
		return fmt.Errorf("words differ in %d positions, want exactly 1", diffs)
	}
}

// Len returns the number of pairs in the catalog.
func (c *Catalog) Len() int {
	return len(c.pairs)
}

// Pairs returns a copy of the catalog entries.
func (c *Catalog) Pairs() []WordPair {
	out := make([]WordPair, len(c.pairs))
	copy(out, c.pairs)
	return out
}

// pick samples one pair uniformly at random.
func (c *Catalog) pick(rng *rand.Rand) WordPair {
	return c.pairs[rng.Intn(len(c.pairs))]
}
