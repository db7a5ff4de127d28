package eval

import (
	"context"
	"fmt"
	"math"

	"github.com/langtell/go-scorer/internal/corpus"
	"github.com/langtell/go-scorer/internal/scorer"
)

// #region evaluator

// Evaluator compares substring scores across two language models.
// Both models must use the shared vocabulary the scorer was built
// with and must have been queried under the same windowing policy.
type Evaluator struct {
	scorer *scorer.Scorer
	modelA scorer.LanguageModel
	modelB scorer.LanguageModel
}

// NewEvaluator creates an evaluator for the model pair. Model A's
// label is the positive class of the ROC curve.
func NewEvaluator(sc *scorer.Scorer, modelA, modelB scorer.LanguageModel) (*Evaluator, error) {
	if modelA.Label == modelB.Label {
		return nil, fmt.Errorf("models %s and %s share label %d", modelA.Name, modelB.Name, modelA.Label)
	}
	if modelA.ContextLen != modelB.ContextLen {
		return nil, fmt.Errorf("context length mismatch: %s has %d, %s has %d",
			modelA.Name, modelA.ContextLen, modelB.Name, modelB.ContextLen)
	}
	return &Evaluator{scorer: sc, modelA: modelA, modelB: modelB}, nil
}

// #endregion evaluator

// #region classify

// Classify scores the sample under both models and returns the label
// of whichever scored higher. An exactly-zero margin resolves to
// model A's label, keeping the hard label consistent with the
// threshold-at-zero point of the ROC sweep.
func (e *Evaluator) Classify(ctx context.Context, sample corpus.Sample) (Classification, error) {
	scoreA, err := e.scorer.Score(ctx, sample, e.modelA)
	if err != nil {
		return Classification{}, fmt.Errorf("score against %s: %w", e.modelA.Name, err)
	}
	scoreB, err := e.scorer.Score(ctx, sample, e.modelB)
	if err != nil {
		return Classification{}, fmt.Errorf("score against %s: %w", e.modelB.Name, err)
	}

	c := Classification{
		ScoreA: scoreA,
		ScoreB: scoreB,
		Margin: scoreA - scoreB,
	}
	if c.Margin >= 0 {
		c.Predicted = e.modelA.Label
	} else {
		c.Predicted = e.modelB.Label
	}
	return c, nil
}

// #endregion classify

// #region evaluate

// Evaluate classifies every sample and aggregates accuracy, the ROC
// curve, and its trapezoidal AUC. A sample set containing only one
// true label yields AUC = NaN with the Degenerate flag set rather
// than a fabricated number.
func (e *Evaluator) Evaluate(ctx context.Context, samples []corpus.Sample) (Result, error) {
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("empty sample set")
	}

	scores := make([]Classification, len(samples))
	margins := make([]float64, len(samples))
	positive := make([]bool, len(samples))
	correct := 0
	posCount := 0

	for i, sample := range samples {
		c, err := e.Classify(ctx, sample)
		if err != nil {
			return Result{}, fmt.Errorf("sample %d: %w", i, err)
		}
		scores[i] = c
		margins[i] = c.Margin
		positive[i] = sample.Label == e.modelA.Label
		if positive[i] {
			posCount++
		}
		if c.Predicted == sample.Label {
			correct++
		}
	}

	result := Result{
		Accuracy: float64(correct) / float64(len(samples)),
		Scores:   scores,
	}

	if posCount == 0 || posCount == len(samples) {
		result.AUC = math.NaN()
		result.Degenerate = true
		return result, nil
	}

	result.ROC, result.AUC = rocCurve(margins, positive)
	return result, nil
}

// #endregion evaluate
