package scorer

import "context"

// #region predictor

// Predictor is the inference contract consumed by the scorer: a batch
// of L x |V| one-hot windows in, one probability distribution over the
// vocabulary per window out, in input order. How the model behind it
// is trained or persisted is out of scope; the gRPC client in
// internal/codec and the scripted predictor in internal/replay both
// satisfy it.
type Predictor interface {
	Predict(ctx context.Context, batch [][][]float32) ([][]float32, error)
}

// #endregion predictor

// #region language-model

// LanguageModel binds a language label to the predictor trained for
// that language. The vocabulary is shared across models and lives on
// the Scorer. Read-only for the lifetime of a run.
type LanguageModel struct {
	Name       string
	Label      int
	ContextLen int
	Predictor  Predictor
}

// #endregion language-model
