package eval

// #region classification

// Classification is the outcome of scoring one sample against both
// language models. Margin is ScoreA - ScoreB: comparing the score
// difference to zero is the likelihood-ratio test without ever
// exponentiating the very negative sums.
type Classification struct {
	ScoreA    float64
	ScoreB    float64
	Margin    float64
	Predicted int
}

// #endregion classification

// #region roc

// ROCPoint is one (fpr, tpr, threshold) triple of the ROC curve.
// Positive class is model A's label; a sample is predicted positive
// when its margin is >= Threshold.
type ROCPoint struct {
	Threshold float64
	FPR       float64
	TPR       float64
}

// #endregion roc

// #region result

// Result aggregates an evaluation run over a labeled sample set.
// When the set holds only one true label, AUC is NaN and Degenerate
// is set; accuracy is still meaningful and computed.
type Result struct {
	Accuracy   float64
	AUC        float64
	Degenerate bool
	ROC        []ROCPoint
	Scores     []Classification
}

// #endregion result
