package eval

import (
	"context"
	"math"
	"testing"

	"github.com/langtell/go-scorer/internal/corpus"
	"github.com/langtell/go-scorer/internal/scorer"
	"github.com/langtell/go-scorer/internal/vocab"
	"github.com/langtell/go-scorer/internal/window"
)

// #region fakes

// favoredPredictor concentrates probability mass on one character and
// splits the remainder evenly, standing in for a model trained on a
// language dominated by that character.
type favoredPredictor struct {
	favored int
	size    int
}

func (p favoredPredictor) Predict(_ context.Context, batch [][][]float32) ([][]float32, error) {
	dist := make([]float32, p.size)
	rest := 0.1 / float32(p.size-1)
	for i := range dist {
		dist[i] = rest
	}
	dist[p.favored] = 0.9
	out := make([][]float32, len(batch))
	for i := range out {
		out[i] = dist
	}
	return out, nil
}

// uniformPredictor returns the uniform distribution for every window.
type uniformPredictor struct {
	size int
}

func (p uniformPredictor) Predict(_ context.Context, batch [][][]float32) ([][]float32, error) {
	dist := make([]float32, p.size)
	for i := range dist {
		dist[i] = 1 / float32(p.size)
	}
	out := make([][]float32, len(batch))
	for i := range out {
		out[i] = dist
	}
	return out, nil
}

// #endregion fakes

// #region helpers

func testVocab() *vocab.Vocabulary {
	return vocab.New([]rune("ac"))
}

// separablePair returns model A favoring 'a' (label 0) and model B
// favoring 'c' (label 1) over the vocabulary {a, c}.
func separablePair(v *vocab.Vocabulary) (scorer.LanguageModel, scorer.LanguageModel) {
	modelA := scorer.LanguageModel{
		Name: "alpha", Label: 0, ContextLen: 4,
		Predictor: favoredPredictor{favored: 0, size: v.Size()},
	}
	modelB := scorer.LanguageModel{
		Name: "gamma", Label: 1, ContextLen: 4,
		Predictor: favoredPredictor{favored: 1, size: v.Size()},
	}
	return modelA, modelB
}

func balancedSamples() []corpus.Sample {
	return []corpus.Sample{
		{Substring: []rune("aaa"), Label: 0},
		{Substring: []rune("aac"), Label: 0},
		{Substring: []rune("ccc"), Label: 1},
		{Substring: []rune("cca"), Label: 1},
	}
}

func newTestEvaluator(t *testing.T, v *vocab.Vocabulary, a, b scorer.LanguageModel) *Evaluator {
	t.Helper()
	sc := scorer.NewScorer(v, window.PolicyPrefixFill, window.Empty)
	e, err := NewEvaluator(sc, a, b)
	if err != nil {
		t.Fatalf("new evaluator: %v", err)
	}
	return e
}

// #endregion helpers

// #region constructor-tests

func TestNewEvaluatorRejectsSharedLabel(t *testing.T) {
	v := testVocab()
	a, _ := separablePair(v)
	b := a
	b.Name = "other"
	sc := scorer.NewScorer(v, window.PolicyPrefixFill, window.Empty)
	if _, err := NewEvaluator(sc, a, b); err == nil {
		t.Fatal("expected error for models sharing a label")
	}
}

func TestNewEvaluatorRejectsContextMismatch(t *testing.T) {
	v := testVocab()
	a, b := separablePair(v)
	b.ContextLen = 7
	sc := scorer.NewScorer(v, window.PolicyPrefixFill, window.Empty)
	if _, err := NewEvaluator(sc, a, b); err == nil {
		t.Fatal("expected error for context length mismatch")
	}
}

// #endregion constructor-tests

// #region classify-tests

func TestClassifyPicksHigherScore(t *testing.T) {
	v := testVocab()
	a, b := separablePair(v)
	e := newTestEvaluator(t, v, a, b)

	c, err := e.Classify(context.Background(), corpus.Sample{Substring: []rune("aaa"), Label: 0})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if c.Predicted != 0 {
		t.Fatalf("predicted %d for all-a substring, want 0", c.Predicted)
	}
	if c.Margin <= 0 {
		t.Fatalf("expected positive margin, got %v", c.Margin)
	}
	if c.Margin != c.ScoreA-c.ScoreB {
		t.Fatalf("margin %v != scoreA-scoreB %v", c.Margin, c.ScoreA-c.ScoreB)
	}
}

func TestClassifyTieDefaultsToModelA(t *testing.T) {
	v := testVocab()
	a, b := separablePair(v)
	a.Predictor = uniformPredictor{size: v.Size()}
	b.Predictor = uniformPredictor{size: v.Size()}
	e := newTestEvaluator(t, v, a, b)

	c, err := e.Classify(context.Background(), corpus.Sample{Substring: []rune("cca"), Label: 1})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if c.Margin != 0 {
		t.Fatalf("uniform models must tie, margin %v", c.Margin)
	}
	if c.Predicted != a.Label {
		t.Fatalf("tie resolved to %d, documented default is model A's label %d", c.Predicted, a.Label)
	}
}

func TestClassifySwapNegatesMargin(t *testing.T) {
	v := testVocab()
	a, b := separablePair(v)
	forward := newTestEvaluator(t, v, a, b)
	reversed := newTestEvaluator(t, v, b, a)

	for _, sample := range balancedSamples() {
		fc, err := forward.Classify(context.Background(), sample)
		if err != nil {
			t.Fatalf("forward classify: %v", err)
		}
		rc, err := reversed.Classify(context.Background(), sample)
		if err != nil {
			t.Fatalf("reversed classify: %v", err)
		}
		if fc.Margin != -rc.Margin {
			t.Fatalf("swap must negate margin: %v vs %v", fc.Margin, rc.Margin)
		}
		if fc.Margin != 0 && fc.Predicted == rc.Predicted {
			t.Fatalf("swap must flip non-tied labels, both predicted %d", fc.Predicted)
		}
	}
}

// #endregion classify-tests

// #region evaluate-tests

func TestEvaluateSeparableModels(t *testing.T) {
	v := testVocab()
	a, b := separablePair(v)
	e := newTestEvaluator(t, v, a, b)

	result, err := e.Evaluate(context.Background(), balancedSamples())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.Accuracy != 1.0 {
		t.Fatalf("accuracy %v, want 1.0", result.Accuracy)
	}
	if result.AUC != 1.0 {
		t.Fatalf("AUC %v, want 1.0", result.AUC)
	}
	if result.Degenerate {
		t.Fatal("balanced two-class set must not be degenerate")
	}
	if len(result.Scores) != 4 {
		t.Fatalf("expected 4 classifications, got %d", len(result.Scores))
	}
}

func TestEvaluateUniformModels(t *testing.T) {
	v := testVocab()
	a, b := separablePair(v)
	a.Predictor = uniformPredictor{size: v.Size()}
	b.Predictor = uniformPredictor{size: v.Size()}
	e := newTestEvaluator(t, v, a, b)

	result, err := e.Evaluate(context.Background(), balancedSamples())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	// All margins tie at zero: every sample gets model A's label, so
	// exactly the label-0 half of a balanced set is correct, and the
	// single-threshold ROC is the chance diagonal.
	if result.Accuracy != 0.5 {
		t.Fatalf("accuracy %v, want 0.5", result.Accuracy)
	}
	if result.AUC != 0.5 {
		t.Fatalf("AUC %v, want 0.5", result.AUC)
	}
}

func TestEvaluateAccuracyInvariantUnderSwap(t *testing.T) {
	v := testVocab()
	a, b := separablePair(v)
	forward := newTestEvaluator(t, v, a, b)
	reversed := newTestEvaluator(t, v, b, a)
	samples := balancedSamples()

	fr, err := forward.Evaluate(context.Background(), samples)
	if err != nil {
		t.Fatalf("forward evaluate: %v", err)
	}
	rr, err := reversed.Evaluate(context.Background(), samples)
	if err != nil {
		t.Fatalf("reversed evaluate: %v", err)
	}
	if fr.Accuracy != rr.Accuracy {
		t.Fatalf("accuracy must be swap-invariant: %v vs %v", fr.Accuracy, rr.Accuracy)
	}
}

func TestEvaluateDegenerateSet(t *testing.T) {
	v := testVocab()
	a, b := separablePair(v)
	e := newTestEvaluator(t, v, a, b)

	samples := []corpus.Sample{
		{Substring: []rune("aaa"), Label: 0},
		{Substring: []rune("aca"), Label: 0},
	}
	result, err := e.Evaluate(context.Background(), samples)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !result.Degenerate {
		t.Fatal("single-label set must be flagged degenerate")
	}
	if !math.IsNaN(result.AUC) {
		t.Fatalf("degenerate AUC must be NaN, got %v", result.AUC)
	}
	if result.Accuracy != 1.0 {
		t.Fatalf("accuracy still computed on degenerate sets, got %v", result.Accuracy)
	}
	if result.ROC != nil {
		t.Fatal("no ROC curve for a degenerate set")
	}
}

func TestEvaluateEmptySet(t *testing.T) {
	v := testVocab()
	a, b := separablePair(v)
	e := newTestEvaluator(t, v, a, b)
	if _, err := e.Evaluate(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty sample set")
	}
}

// #endregion evaluate-tests

// #region roc-tests

func TestROCPerfectSeparation(t *testing.T) {
	points, auc := rocCurve([]float64{3, 2, 1, 0}, []bool{true, true, false, false})
	if auc != 1.0 {
		t.Fatalf("AUC %v, want 1.0", auc)
	}
	first := points[0]
	last := points[len(points)-1]
	if first.FPR != 0 || first.TPR != 0 || !math.IsInf(first.Threshold, 1) {
		t.Fatalf("curve must start at (0,0) with +Inf threshold, got %+v", first)
	}
	if last.FPR != 1 || last.TPR != 1 {
		t.Fatalf("curve must end at (1,1), got %+v", last)
	}
}

func TestROCInterleaved(t *testing.T) {
	_, auc := rocCurve([]float64{3, 2, 1, 0}, []bool{true, false, true, false})
	if auc != 0.75 {
		t.Fatalf("AUC %v, want 0.75", auc)
	}
}

func TestROCMonotoneFPR(t *testing.T) {
	points, _ := rocCurve([]float64{5, 4, 4, 2, 1}, []bool{true, false, true, false, true})
	for i := 1; i < len(points); i++ {
		if points[i].FPR < points[i-1].FPR {
			t.Fatalf("FPR must be non-decreasing: %v after %v", points[i].FPR, points[i-1].FPR)
		}
	}
}

func TestROCAllTied(t *testing.T) {
	points, auc := rocCurve([]float64{0, 0}, []bool{true, false})
	if auc != 0.5 {
		t.Fatalf("AUC %v for fully tied margins, want 0.5", auc)
	}
	if len(points) != 2 {
		t.Fatalf("tied margins collapse to one swept threshold, got %d points", len(points))
	}
}

// #endregion roc-tests
