package replay

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/langtell/go-scorer/internal/scorer"
)

// #region window-key

// WindowKey derives a stable lookup key from a one-hot window matrix:
// the vocabulary index of each slot joined by commas, with -1 for
// empty slots. The Python recorder produces the same keys, so fixture
// files are portable across the two sides.
func WindowKey(matrix [][]float32) string {
	parts := make([]string, len(matrix))
	for t, row := range matrix {
		idx := -1
		for i, x := range row {
			if x != 0 {
				idx = i
				break
			}
		}
		parts[t] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

// #endregion window-key

// #region scripted-predictor

// ScriptedPredictor replays recorded distributions keyed by window.
// It satisfies the scorer's Predictor contract, so replayed runs and
// live runs share every code path above the RPC.
type ScriptedPredictor struct {
	dists map[string][]float32
}

// NewScriptedPredictor creates a predictor over recorded distributions.
func NewScriptedPredictor(dists map[string][]float32) *ScriptedPredictor {
	return &ScriptedPredictor{dists: dists}
}

// Predict looks every window up in the recording. A window with no
// recorded distribution fails the run; fabricating one would defeat
// the point of deterministic replay.
func (p *ScriptedPredictor) Predict(_ context.Context, batch [][][]float32) ([][]float32, error) {
	out := make([][]float32, len(batch))
	for i, matrix := range batch {
		key := WindowKey(matrix)
		dist, ok := p.dists[key]
		if !ok {
			return nil, fmt.Errorf("no recorded distribution for window [%s]", key)
		}
		out[i] = dist
	}
	return out, nil
}

// #endregion scripted-predictor

// #region recording-predictor

// RecordingPredictor passes calls through to a live predictor while
// capturing every returned distribution, for fixture export.
type RecordingPredictor struct {
	Inner    scorer.Predictor
	Recorded map[string][]float32
}

// NewRecordingPredictor wraps a live predictor.
func NewRecordingPredictor(inner scorer.Predictor) *RecordingPredictor {
	return &RecordingPredictor{Inner: inner, Recorded: make(map[string][]float32)}
}

// Predict forwards the batch and records each window's distribution.
func (r *RecordingPredictor) Predict(ctx context.Context, batch [][][]float32) ([][]float32, error) {
	dists, err := r.Inner.Predict(ctx, batch)
	if err != nil {
		return nil, err
	}
	if len(dists) != len(batch) {
		return nil, fmt.Errorf("predictor returned %d distributions for %d windows", len(dists), len(batch))
	}
	for i, matrix := range batch {
		r.Recorded[WindowKey(matrix)] = dists[i]
	}
	return dists, nil
}

// #endregion recording-predictor
