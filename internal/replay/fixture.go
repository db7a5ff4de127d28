package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a
// recorded evaluation run that re-executes deterministically without
// the live inference services.
type Fixture struct {
	Description string           `json:"description"`
	Policy      string           `json:"policy"`
	ContextLen  int              `json:"context_len"`
	Blank       string           `json:"blank,omitempty"`
	Vocabulary  []string         `json:"vocabulary"`
	ModelA      FixtureModel     `json:"model_a"`
	ModelB      FixtureModel     `json:"model_b"`
	Samples     []FixtureSample  `json:"samples"`
	Expected    *FixtureExpected `json:"expected,omitempty"`
}

// FixtureModel holds one model's recorded distributions, keyed by
// window key (see WindowKey).
type FixtureModel struct {
	Name          string               `json:"name"`
	Label         int                  `json:"label"`
	Distributions map[string][]float32 `json:"distributions"`
}

// FixtureSample mirrors corpus.Sample with JSON tags.
type FixtureSample struct {
	Substring string `json:"substring"`
	Context   string `json:"context,omitempty"`
	Label     int    `json:"label"`
}

// FixtureExpected captures the metrics the replay must reproduce.
// A null AUC means the recorded run was degenerate.
type FixtureExpected struct {
	Accuracy float64  `json:"accuracy"`
	AUC      *float64 `json:"auc"`
}

// #endregion fixture-types

// #region fixture-io

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-io
