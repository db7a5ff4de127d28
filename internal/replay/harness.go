package replay

import (
	"context"
	"fmt"
	"math"

	"github.com/langtell/go-scorer/internal/corpus"
	"github.com/langtell/go-scorer/internal/eval"
	"github.com/langtell/go-scorer/internal/scorer"
	"github.com/langtell/go-scorer/internal/vocab"
	"github.com/langtell/go-scorer/internal/window"
)

// #region types

// RunResult captures the outcome of replaying a fixture.
type RunResult struct {
	Accuracy   float64
	AUC        float64
	Degenerate bool
	Passed     bool
	Reason     string
}

// metricTolerance bounds the allowed drift between recorded and
// replayed metrics. Replay is pure float64 arithmetic over the same
// recorded float32 distributions, so any drift means a logic change.
const metricTolerance = 1e-9

// #endregion types

// #region converters

// toSamples converts fixture samples to domain samples.
func toSamples(fs []FixtureSample) []corpus.Sample {
	samples := make([]corpus.Sample, len(fs))
	for i, f := range fs {
		samples[i] = corpus.Sample{
			Substring: []rune(f.Substring),
			Context:   []rune(f.Context),
			Label:     f.Label,
		}
	}
	return samples
}

// blankRune parses the fixture's optional blank character.
func blankRune(s string) (rune, error) {
	if s == "" {
		return window.Empty, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("blank %q is not a single character", s)
	}
	return runes[0], nil
}

// #endregion converters

// #region run

// Run re-executes a recorded evaluation through the real scorer and
// evaluator, with scripted predictors standing in for the live
// services, and checks the result against the fixture's expectations.
func Run(ctx context.Context, f *Fixture) (RunResult, error) {
	policy, err := window.ParsePolicy(f.Policy)
	if err != nil {
		return RunResult{}, err
	}
	blank, err := blankRune(f.Blank)
	if err != nil {
		return RunResult{}, err
	}
	v, err := vocab.FromChars(f.Vocabulary)
	if err != nil {
		return RunResult{}, err
	}

	modelA := scorer.LanguageModel{
		Name:       f.ModelA.Name,
		Label:      f.ModelA.Label,
		ContextLen: f.ContextLen,
		Predictor:  NewScriptedPredictor(f.ModelA.Distributions),
	}
	modelB := scorer.LanguageModel{
		Name:       f.ModelB.Name,
		Label:      f.ModelB.Label,
		ContextLen: f.ContextLen,
		Predictor:  NewScriptedPredictor(f.ModelB.Distributions),
	}

	sc := scorer.NewScorer(v, policy, blank)
	evaluator, err := eval.NewEvaluator(sc, modelA, modelB)
	if err != nil {
		return RunResult{}, err
	}

	result, err := evaluator.Evaluate(ctx, toSamples(f.Samples))
	if err != nil {
		return RunResult{}, fmt.Errorf("replay evaluate: %w", err)
	}

	run := RunResult{
		Accuracy:   result.Accuracy,
		AUC:        result.AUC,
		Degenerate: result.Degenerate,
		Passed:     true,
		Reason:     "matches recorded metrics",
	}
	if f.Expected == nil {
		run.Reason = "no expectations recorded"
		return run, nil
	}

	if math.Abs(result.Accuracy-f.Expected.Accuracy) > metricTolerance {
		run.Passed = false
		run.Reason = fmt.Sprintf("accuracy %.6f, recorded %.6f", result.Accuracy, f.Expected.Accuracy)
		return run, nil
	}
	if f.Expected.AUC == nil {
		if !result.Degenerate {
			run.Passed = false
			run.Reason = fmt.Sprintf("recorded run was degenerate, replay produced AUC %.6f", result.AUC)
		}
		return run, nil
	}
	if result.Degenerate {
		run.Passed = false
		run.Reason = fmt.Sprintf("replay degenerate, recorded AUC %.6f", *f.Expected.AUC)
		return run, nil
	}
	if math.Abs(result.AUC-*f.Expected.AUC) > metricTolerance {
		run.Passed = false
		run.Reason = fmt.Sprintf("AUC %.6f, recorded %.6f", result.AUC, *f.Expected.AUC)
	}
	return run, nil
}

// #endregion run
