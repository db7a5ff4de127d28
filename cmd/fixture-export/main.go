package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/langtell/go-scorer/internal/codec"
	"github.com/langtell/go-scorer/internal/config"
	"github.com/langtell/go-scorer/internal/corpus"
	"github.com/langtell/go-scorer/internal/eval"
	"github.com/langtell/go-scorer/internal/replay"
	"github.com/langtell/go-scorer/internal/scorer"
	"github.com/langtell/go-scorer/internal/vocab"
	"github.com/langtell/go-scorer/internal/window"
)

// #region main

// fixture-export runs a small evaluation against the live predictor
// services while recording every distribution they return, then
// writes the recording as a replay fixture. Replaying the fixture
// later must reproduce the metrics bit for bit without the services.
func main() {
	out := flag.String("out", "fixture.json", "output fixture file")
	count := flag.Int("samples", 25, "samples per language to record")
	description := flag.String("desc", "recorded live evaluation", "fixture description")
	flag.Parse()

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

	v, err := vocab.Load(cfg.VocabPath)
	if err != nil {
		log.Fatalf("vocabulary: %v", err)
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

	recorderA := replay.NewRecordingPredictor(clientA)
	recorderB := replay.NewRecordingPredictor(clientB)

	modelA := scorer.LanguageModel{Name: cfg.ModelAName, Label: cfg.ModelALabel, ContextLen: cfg.ContextLen, Predictor: recorderA}
	modelB := scorer.LanguageModel{Name: cfg.ModelBName, Label: cfg.ModelBLabel, ContextLen: cfg.ContextLen, Predictor: recorderB}

	samples, err := drawSamples(cfg, policy, *count)
	if err != nil {
		log.Fatalf("samples: %v", err)
	}

	sc := scorer.NewScorer(v, policy, cfg.Blank())
	evaluator, err := eval.NewEvaluator(sc, modelA, modelB)
	if err != nil {
		log.Fatalf("evaluator: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	result, err := evaluator.Evaluate(ctx, samples)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	fixture := buildFixture(cfg, v, *description, samples, result, recorderA, recorderB)
	if err := replay.SaveFixture(*out, fixture); err != nil {
		log.Fatalf("save fixture: %v", err)
	}

	fmt.Printf("wrote %s: %d samples, %d+%d recorded distributions\n",
		*out, len(samples), len(recorderA.Recorded), len(recorderB.Recorded))
}

// #endregion main

// #region helpers

func drawSamples(cfg config.Config, policy window.Policy, count int) ([]corpus.Sample, error) {
	textA, err := corpus.Load(cfg.CorpusAPath)
	if err != nil {
		return nil, err
	}
	textB, err := corpus.Load(cfg.CorpusBPath)
	if err != nil {
		return nil, err
	}
	_, evalA, err := corpus.Split(textA, cfg.TrainFrac)
	if err != nil {
		return nil, err
	}
	_, evalB, err := corpus.Split(textB, cfg.TrainFrac)
	if err != nil {
		return nil, err
	}

	samplerA := corpus.Sampler{SubLen: cfg.SubLen, ContextLen: cfg.ContextLen, Policy: policy, Seed: cfg.Seed}
	samplerB := samplerA
	samplerB.Seed = cfg.Seed + 1

	samplesA, err := samplerA.Samples(evalA, cfg.ModelALabel, count)
	if err != nil {
		return nil, err
	}
	samplesB, err := samplerB.Samples(evalB, cfg.ModelBLabel, count)
	if err != nil {
		return nil, err
	}
	return append(samplesA, samplesB...), nil
}

func buildFixture(cfg config.Config, v *vocab.Vocabulary, description string,
	samples []corpus.Sample, result eval.Result,
	recorderA, recorderB *replay.RecordingPredictor) *replay.Fixture {

	fixtureSamples := make([]replay.FixtureSample, len(samples))
	for i, s := range samples {
		fixtureSamples[i] = replay.FixtureSample{
			Substring: string(s.Substring),
			Context:   string(s.Context),
			Label:     s.Label,
		}
	}

	expected := &replay.FixtureExpected{Accuracy: result.Accuracy}
	if !result.Degenerate {
		auc := result.AUC
		expected.AUC = &auc
	}

	return &replay.Fixture{
		Description: description,
		Policy:      cfg.Policy,
		ContextLen:  cfg.ContextLen,
		Blank:       cfg.BlankChar,
		Vocabulary:  v.Chars(),
		ModelA:      replay.FixtureModel{Name: cfg.ModelAName, Label: cfg.ModelALabel, Distributions: recorderA.Recorded},
		ModelB:      replay.FixtureModel{Name: cfg.ModelBName, Label: cfg.ModelBLabel, Distributions: recorderB.Recorded},
		Samples:     fixtureSamples,
		Expected:    expected,
	}
}

// #endregion helpers
