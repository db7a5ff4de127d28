package scorer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/langtell/go-scorer/internal/corpus"
	"github.com/langtell/go-scorer/internal/vocab"
	"github.com/langtell/go-scorer/internal/window"
)

// #region errors

// ErrInvalidProbability signals that the predictor returned a
// non-positive or out-of-range probability for a required target
// character. The log is undefined there, so the run aborts; clamping
// would hide a broken predictor contract.
var ErrInvalidProbability = errors.New("predictor returned invalid probability")

// probTolerance absorbs float32 rounding above 1.0 in otherwise
// well-formed distributions.
const probTolerance = 1e-6

// #endregion errors

// #region scorer

// Scorer computes the aggregate log-likelihood of a substring under a
// language model. One scorer instance uses exactly one windowing
// policy; comparing scores produced under different policies is
// meaningless.
type Scorer struct {
	vocab  *vocab.Vocabulary
	policy window.Policy
	blank  rune
}

// NewScorer creates a scorer over the shared vocabulary. blank is the
// designated filler for unavailable left context under the prefix-fill
// policy; pass window.Empty to use the all-zero marker.
func NewScorer(v *vocab.Vocabulary, policy window.Policy, blank rune) *Scorer {
	return &Scorer{vocab: v, policy: policy, blank: blank}
}

// Policy returns the windowing policy this scorer was built with.
func (s *Scorer) Policy() window.Policy {
	return s.policy
}

// #endregion scorer

// #region score

// Score returns the sum of natural-log conditional probabilities of
// the sample's substring under the model: one WindowedStep per
// character, all windows batched through a single Predict call.
// Batching is purely a throughput choice; per-step invocation yields
// the same result.
func (s *Scorer) Score(ctx context.Context, sample corpus.Sample, model LanguageModel) (float64, error) {
	steps, err := window.Steps(s.policy, sample.Substring, sample.Context, model.ContextLen, s.blank)
	if err != nil {
		return 0, fmt.Errorf("window %q: %w", string(sample.Substring), err)
	}

	batch, err := s.vocab.EncodeAll(steps)
	if err != nil {
		return 0, fmt.Errorf("encode %q: %w", string(sample.Substring), err)
	}

	dists, err := model.Predictor.Predict(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("predict %q against %s: %w", string(sample.Substring), model.Name, err)
	}
	if len(dists) != len(steps) {
		return 0, fmt.Errorf("model %s returned %d distributions for %d windows", model.Name, len(dists), len(steps))
	}

	var sum float64
	for j, step := range steps {
		idx, err := s.vocab.Index(step.Target)
		if err != nil {
			return 0, fmt.Errorf("target of step %d: %w", j, err)
		}
		if idx >= len(dists[j]) {
			return 0, fmt.Errorf("model %s distribution %d has %d entries, vocabulary has %d", model.Name, j, len(dists[j]), s.vocab.Size())
		}
		p := float64(dists[j][idx])
		if p <= 0 || p > 1+probTolerance {
			return 0, fmt.Errorf("%w: step %d of %q, p=%v", ErrInvalidProbability, j, string(sample.Substring), p)
		}
		sum += math.Log(p)
	}
	return sum, nil
}

// #endregion score
