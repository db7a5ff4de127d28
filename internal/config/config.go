package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"

	"github.com/langtell/go-scorer/internal/window"
)

// #region config

// Config is the environment-driven configuration for an evaluation
// run. One predictor service per language; both must have been trained
// against the vocabulary file named here.
type Config struct {
	DBPath string `env:"LANGTELL_DB" envDefault:"langtell_runs.db"`

	ModelAAddr  string `env:"MODEL_A_ADDR" envDefault:"localhost:50051"`
	ModelBAddr  string `env:"MODEL_B_ADDR" envDefault:"localhost:50052"`
	ModelAName  string `env:"MODEL_A_NAME" envDefault:"english"`
	ModelBName  string `env:"MODEL_B_NAME" envDefault:"french"`
	ModelALabel int    `env:"MODEL_A_LABEL" envDefault:"0"`
	ModelBLabel int    `env:"MODEL_B_LABEL" envDefault:"1"`

	CorpusAPath string `env:"CORPUS_A"`
	CorpusBPath string `env:"CORPUS_B"`
	VocabPath   string `env:"VOCAB_PATH" envDefault:"vocabulary.json"`

	Policy         string  `env:"POLICY" envDefault:"prefix_fill"`
	SubLen         int     `env:"SUB_LEN" envDefault:"5"`
	ContextLen     int     `env:"CONTEXT_LEN" envDefault:"10"`
	SamplesPerLang int     `env:"SAMPLES_PER_LANG" envDefault:"500"`
	Seed           int64   `env:"SEED" envDefault:"1"`
	BlankChar      string  `env:"BLANK_CHAR" envDefault:""`
	TrainFrac      float64 `env:"TRAIN_FRAC" envDefault:"0.8"`
}

// #endregion config

// #region load

// Load parses the environment and validates cross-field constraints.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the constraints the env tags cannot express.
func (c Config) Validate() error {
	if _, err := window.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if c.SubLen <= 0 {
		return fmt.Errorf("SUB_LEN must be positive, got %d", c.SubLen)
	}
	if c.ContextLen < c.SubLen {
		return fmt.Errorf("CONTEXT_LEN %d must be >= SUB_LEN %d", c.ContextLen, c.SubLen)
	}
	if c.SamplesPerLang <= 0 {
		return fmt.Errorf("SAMPLES_PER_LANG must be positive, got %d", c.SamplesPerLang)
	}
	if c.ModelALabel == c.ModelBLabel {
		return fmt.Errorf("model labels must differ, both are %d", c.ModelALabel)
	}
	if len([]rune(c.BlankChar)) > 1 {
		return fmt.Errorf("BLANK_CHAR %q must be a single character", c.BlankChar)
	}
	return nil
}

// Blank returns the configured blank rune, or window.Empty when none
// is configured.
func (c Config) Blank() rune {
	runes := []rune(c.BlankChar)
	if len(runes) == 0 {
		return window.Empty
	}
	return runes[0]
}

// #endregion load
