package results

import "time"

// #region run-record

// RunRecord is one evaluation run's summary row. AUC is NaN when the
// run was degenerate; it round-trips through the store as NULL.
type RunRecord struct {
	RunID       string
	Policy      string
	ModelA      string
	ModelB      string
	SubLen      int
	ContextLen  int
	Seed        int64
	SampleCount int
	Accuracy    float64
	AUC         float64
	Degenerate  bool
	CreatedAt   time.Time
}

// #endregion run-record

// #region row-types

// ROCRow is one stored point of a run's ROC curve. The leading point
// carries a +Inf threshold, stored as NULL.
type ROCRow struct {
	Seq       int
	Threshold float64
	FPR       float64
	TPR       float64
}

// SampleRow is one stored per-sample outcome.
type SampleRow struct {
	Seq       int
	Substring string
	TrueLabel int
	ScoreA    float64
	ScoreB    float64
	Margin    float64
	Predicted int
}

// #endregion row-types
