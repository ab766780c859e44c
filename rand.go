package skipset

import randv2 "math/rand/v2"

// float64Unit scales the top 53 bits of a Uint64 draw into [0, 1).
const float64Unit = 1.0 / (1 << 53)

func randFloat(src randv2.Source) float64 {
	return float64(src.Uint64()>>11) * float64Unit
}

// defaultSource returns an independently seeded PCG stream. Callers who need
// reproducible structure inject their own source via WithRandSource.
func defaultSource() randv2.Source {
	return randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
}

// randomHeight draws the height for a new node: start at one level and keep
// promoting while the draw lands strictly above 1/2. The result never exceeds
// maxHeight, so a fresh node cannot outgrow the list.
func randomHeight(src randv2.Source, maxHeight int) int {
	h := 1
	for randFloat(src) > 0.5 && h < maxHeight {
		h++
	}
	return h
}
