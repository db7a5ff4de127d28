package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/langtell/go-scorer/internal/window"
)

// #region load-split-tests

func TestLoadReadsRunes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("héllo"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(text) != "héllo" {
		t.Fatalf("loaded %q", string(text))
	}
	if len(text) != 5 {
		t.Fatalf("expected 5 runes, got %d", len(text))
	}
}

func TestSplitFractions(t *testing.T) {
	text := []rune(strings.Repeat("x", 100))
	train, eval, err := Split(text, 0.8)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(train) != 80 || len(eval) != 20 {
		t.Fatalf("split sizes %d/%d, want 80/20", len(train), len(eval))
	}
}

func TestSplitRejectsBadFraction(t *testing.T) {
	for _, frac := range []float64{0, 1, -0.5, 1.5} {
		if _, _, err := Split([]rune("abc"), frac); err == nil {
			t.Fatalf("expected error for fraction %v", frac)
		}
	}
}

// #endregion load-split-tests

// #region sampler-tests

func TestSamplerDeterministic(t *testing.T) {
	text := []rune("the quick brown fox jumps over the lazy dog")
	s := Sampler{SubLen: 5, ContextLen: 8, Policy: window.PolicyPrefixFill, Seed: 42}

	first, err := s.Samples(text, 0, 10)
	if err != nil {
		t.Fatalf("samples: %v", err)
	}
	second, err := s.Samples(text, 0, 10)
	if err != nil {
		t.Fatalf("samples: %v", err)
	}
	for i := range first {
		if string(first[i].Substring) != string(second[i].Substring) {
			t.Fatalf("sample %d differs across identically-seeded draws: %q vs %q",
				i, string(first[i].Substring), string(second[i].Substring))
		}
	}
}

func TestSamplerPrefixFillHasNoContext(t *testing.T) {
	text := []rune("abcdefghijklmnop")
	s := Sampler{SubLen: 4, ContextLen: 6, Policy: window.PolicyPrefixFill, Seed: 1}
	samples, err := s.Samples(text, 1, 5)
	if err != nil {
		t.Fatalf("samples: %v", err)
	}
	for i, sm := range samples {
		if sm.Context != nil {
			t.Fatalf("sample %d: prefix-fill samples carry no context", i)
		}
		if sm.Label != 1 {
			t.Fatalf("sample %d: label %d, want 1", i, sm.Label)
		}
		if len(sm.Substring) != 4 {
			t.Fatalf("sample %d: substring length %d, want 4", i, len(sm.Substring))
		}
	}
}

func TestSamplerSlidingContextMatchesText(t *testing.T) {
	text := []rune("abcdefghijklmnopqrstuvwxyz")
	s := Sampler{SubLen: 3, ContextLen: 5, Policy: window.PolicySlidingWindow, Seed: 7}
	samples, err := s.Samples(text, 0, 20)
	if err != nil {
		t.Fatalf("samples: %v", err)
	}
	full := string(text)
	for i, sm := range samples {
		if len(sm.Context) != 5 {
			t.Fatalf("sample %d: context length %d, want 5", i, len(sm.Context))
		}
		// Context immediately precedes the substring in the source.
		joined := string(sm.Context) + string(sm.Substring)
		if !strings.Contains(full, joined) {
			t.Fatalf("sample %d: %q is not contiguous source text", i, joined)
		}
	}
}

func TestSamplerCorpusTooShort(t *testing.T) {
	s := Sampler{SubLen: 5, ContextLen: 10, Policy: window.PolicySlidingWindow, Seed: 1}
	if _, err := s.Samples([]rune("short"), 0, 1); err == nil {
		t.Fatal("expected error for corpus shorter than context+substring")
	}
}

// #endregion sampler-tests
