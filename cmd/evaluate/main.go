package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/langtell/go-scorer/internal/codec"
	"github.com/langtell/go-scorer/internal/config"
	"github.com/langtell/go-scorer/internal/corpus"
	"github.com/langtell/go-scorer/internal/eval"
	"github.com/langtell/go-scorer/internal/logging"
	"github.com/langtell/go-scorer/internal/results"
	"github.com/langtell/go-scorer/internal/scorer"
	"github.com/langtell/go-scorer/internal/vocab"
	"github.com/langtell/go-scorer/internal/window"
)

// #region main
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.CorpusAPath == "" || cfg.CorpusBPath == "" {
		log.Fatal("CORPUS_A and CORPUS_B are required")
	}
	policy, err := window.ParsePolicy(cfg.Policy)
	if err != nil {
		log.Fatalf("policy: %v", err)
	}

	store, err := results.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	textA, err := corpus.Load(cfg.CorpusAPath)
	if err != nil {
		log.Fatalf("corpus A: %v", err)
	}
	textB, err := corpus.Load(cfg.CorpusBPath)
	if err != nil {
		log.Fatalf("corpus B: %v", err)
	}
	_, evalA, err := corpus.Split(textA, cfg.TrainFrac)
	if err != nil {
		log.Fatalf("split corpus A: %v", err)
	}
	_, evalB, err := corpus.Split(textB, cfg.TrainFrac)
	if err != nil {
		log.Fatalf("split corpus B: %v", err)
	}

	// The trainer and the scorer must agree on the vocabulary; prefer
	// the shared file and fall back to building it from the corpora.
	v, err := vocab.Load(cfg.VocabPath)
	if err != nil {
		log.Println("No vocabulary file found, building from corpora...")
		v = corpus.BuildVocabulary(textA, textB)
		if err := v.Save(cfg.VocabPath); err != nil {
			log.Fatalf("save vocabulary: %v", err)
		}
	}

	clientA, err := codec.NewClient(cfg.ModelAAddr)
	if err != nil {
		log.Fatalf("failed to connect to predictor at %s: %v", cfg.ModelAAddr, err)
	}
	defer clientA.Close()
	clientB, err := codec.NewClient(cfg.ModelBAddr)
	if err != nil {
		log.Fatalf("failed to connect to predictor at %s: %v", cfg.ModelBAddr, err)
	}
	defer clientB.Close()

	modelA := scorer.LanguageModel{Name: cfg.ModelAName, Label: cfg.ModelALabel, ContextLen: cfg.ContextLen, Predictor: clientA}
	modelB := scorer.LanguageModel{Name: cfg.ModelBName, Label: cfg.ModelBLabel, ContextLen: cfg.ContextLen, Predictor: clientB}

	samplerA := corpus.Sampler{SubLen: cfg.SubLen, ContextLen: cfg.ContextLen, Policy: policy, Seed: cfg.Seed}
	samplerB := samplerA
	samplerB.Seed = cfg.Seed + 1

	samplesA, err := samplerA.Samples(evalA, cfg.ModelALabel, cfg.SamplesPerLang)
	if err != nil {
		log.Fatalf("sample corpus A: %v", err)
	}
	samplesB, err := samplerB.Samples(evalB, cfg.ModelBLabel, cfg.SamplesPerLang)
	if err != nil {
		log.Fatalf("sample corpus B: %v", err)
	}
	samples := append(samplesA, samplesB...)

	sc := scorer.NewScorer(v, policy, cfg.Blank())
	evaluator, err := eval.NewEvaluator(sc, modelA, modelB)
	if err != nil {
		log.Fatalf("evaluator: %v", err)
	}

	fmt.Printf("Evaluating %d samples (%s vs %s, policy %s)...\n", len(samples), modelA.Name, modelB.Name, policy)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()
	result, err := evaluator.Evaluate(ctx, samples)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	runID := uuid.New().String()
	if err := saveRun(store, runID, cfg, result, samples); err != nil {
		log.Fatalf("save run: %v", err)
	}
	logRun(store, runID, samples, result)

	fmt.Printf("\nrun %s finished in %s\n", runID, time.Since(start).Round(time.Millisecond))
	fmt.Printf("  accuracy: %.4f\n", result.Accuracy)
	if result.Degenerate {
		fmt.Println("  auc:      undefined (single-label sample set)")
	} else {
		fmt.Printf("  auc:      %.4f\n", result.AUC)
	}
}

// #endregion main

// #region persistence
func saveRun(store *results.Store, runID string, cfg config.Config, result eval.Result, samples []corpus.Sample) error {
	rocRows := make([]results.ROCRow, len(result.ROC))
	for i, p := range result.ROC {
		rocRows[i] = results.ROCRow{Seq: i, Threshold: p.Threshold, FPR: p.FPR, TPR: p.TPR}
	}
	sampleRows := make([]results.SampleRow, len(result.Scores))
	for i, c := range result.Scores {
		sampleRows[i] = results.SampleRow{
			Seq:       i,
			Substring: string(samples[i].Substring),
			TrueLabel: samples[i].Label,
			ScoreA:    c.ScoreA,
			ScoreB:    c.ScoreB,
			Margin:    c.Margin,
			Predicted: c.Predicted,
		}
	}

	return store.SaveRun(results.RunRecord{
		RunID:       runID,
		Policy:      cfg.Policy,
		ModelA:      cfg.ModelAName,
		ModelB:      cfg.ModelBName,
		SubLen:      cfg.SubLen,
		ContextLen:  cfg.ContextLen,
		Seed:        cfg.Seed,
		SampleCount: len(samples),
		Accuracy:    result.Accuracy,
		AUC:         result.AUC,
		Degenerate:  result.Degenerate,
		CreatedAt:   time.Now().UTC(),
	}, rocRows, sampleRows)
}

func logRun(store *results.Store, runID string, samples []corpus.Sample, result eval.Result) {
	for i, c := range result.Scores {
		correct := "correct"
		if c.Predicted != samples[i].Label {
			correct = "incorrect"
		}
		err := logging.LogDecision(store.DB(), logging.ProvenanceEntry{
			RunID:     runID,
			Seq:       i,
			PerSample: true,
			Decision:  fmt.Sprintf("label_%d", c.Predicted),
			Margin:    c.Margin,
			Reason:    fmt.Sprintf("%s, true label %d", correct, samples[i].Label),
		})
		if err != nil {
			log.Printf("logging error: %v", err)
		}
	}

	auc := result.AUC
	if math.IsNaN(auc) {
		auc = -1
	}
	err := logging.LogDecision(store.DB(), logging.ProvenanceEntry{
		RunID:    runID,
		Decision: "run_complete",
		Margin:   auc,
		Reason:   fmt.Sprintf("accuracy %.4f over %d samples", result.Accuracy, len(samples)),
	})
	if err != nil {
		log.Printf("logging error: %v", err)
	}
}

// #endregion persistence
