package corpus

import (
	"fmt"
	"math/rand"

	"github.com/langtell/go-scorer/internal/window"
)

// #region sampler

// Sampler extracts labeled samples from held-out corpus text at
// seeded-random offsets. The seed is recorded with every run so
// accuracy and AUC figures are reproducible.
type Sampler struct {
	SubLen     int
	ContextLen int
	Policy     window.Policy
	Seed       int64
}

// Samples draws n samples from text, all carrying the given label.
// Under the sliding-window policy only offsets with ContextLen
// preceding characters are eligible; offsets near the corpus start are
// excluded rather than padded with fabricated context.
func (s Sampler) Samples(text []rune, label, n int) ([]Sample, error) {
	minOffset := 0
	if s.Policy == window.PolicySlidingWindow {
		minOffset = s.ContextLen
	}
	maxOffset := len(text) - s.SubLen
	if maxOffset < minOffset {
		return nil, fmt.Errorf("corpus of %d characters too short for sub_len=%d context_len=%d under %s",
			len(text), s.SubLen, s.ContextLen, s.Policy)
	}

	rng := rand.New(rand.NewSource(s.Seed))
	samples := make([]Sample, n)
	for i := range samples {
		off := minOffset + rng.Intn(maxOffset-minOffset+1)
		sub := make([]rune, s.SubLen)
		copy(sub, text[off:off+s.SubLen])

		var context []rune
		if s.Policy == window.PolicySlidingWindow {
			context = make([]rune, s.ContextLen)
			copy(context, text[off-s.ContextLen:off])
		}

		samples[i] = Sample{Substring: sub, Context: context, Label: label}
	}
	return samples, nil
}

// #endregion sampler
