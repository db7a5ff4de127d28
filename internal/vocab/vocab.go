package vocab

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/langtell/go-scorer/internal/window"
)

// #region errors

// ErrVocabularyMiss signals a character outside the shared vocabulary.
// It indicates an inconsistency between the training-time and
// evaluation-time corpora and is never recoverable within a run.
var ErrVocabularyMiss = errors.New("character not in vocabulary")

// #endregion errors

// #region vocabulary

// Vocabulary is a fixed bijection between observed characters and
// integer indices, shared by every language model in a comparison run.
// Read-only after construction.
type Vocabulary struct {
	runeToIndex map[rune]int
	indexToRune []rune
}

// New builds a vocabulary from the union of characters in the given
// texts. Runes are sorted so index assignment is deterministic across
// processes; the Python trainer relies on the same ordering.
func New(texts ...[]rune) *Vocabulary {
	seen := make(map[rune]struct{})
	for _, text := range texts {
		for _, r := range text {
			seen[r] = struct{}{}
		}
	}

	runes := make([]rune, 0, len(seen))
	for r := range seen {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	runeToIndex := make(map[rune]int, len(runes))
	for i, r := range runes {
		runeToIndex[r] = i
	}

	return &Vocabulary{
		runeToIndex: runeToIndex,
		indexToRune: runes,
	}
}

// Size returns the number of distinct characters.
func (v *Vocabulary) Size() int {
	return len(v.indexToRune)
}

// Index returns the index for r.
func (v *Vocabulary) Index(r rune) (int, error) {
	idx, ok := v.runeToIndex[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVocabularyMiss, r)
	}
	return idx, nil
}

// Rune returns the character at index idx.
func (v *Vocabulary) Rune(idx int) (rune, error) {
	if idx < 0 || idx >= len(v.indexToRune) {
		return 0, fmt.Errorf("index %d out of range [0,%d)", idx, len(v.indexToRune))
	}
	return v.indexToRune[idx], nil
}

// Contains reports whether r is in the vocabulary.
func (v *Vocabulary) Contains(r rune) bool {
	_, ok := v.runeToIndex[r]
	return ok
}

// #endregion vocabulary

// #region encode

// Encode produces the L x |V| one-hot matrix for a window. Row t is
// the one-hot vector of the character at slot t, or the all-zero row
// when slot t is empty. A character outside the vocabulary fails with
// ErrVocabularyMiss.
func (v *Vocabulary) Encode(win window.Window) ([][]float32, error) {
	matrix := make([][]float32, len(win))
	for t, r := range win {
		row := make([]float32, len(v.indexToRune))
		if r != window.Empty {
			idx, err := v.Index(r)
			if err != nil {
				return nil, fmt.Errorf("encode slot %d: %w", t, err)
			}
			row[idx] = 1
		}
		matrix[t] = row
	}
	return matrix, nil
}

// EncodeAll encodes every step's window into one batch.
func (v *Vocabulary) EncodeAll(steps []window.WindowedStep) ([][][]float32, error) {
	batch := make([][][]float32, len(steps))
	for i, step := range steps {
		matrix, err := v.Encode(step.Window)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		batch[i] = matrix
	}
	return batch, nil
}

// #endregion encode

// #region persistence

// fileFormat is the JSON interchange shape shared with the trainer.
type fileFormat struct {
	Chars []string `json:"chars"`
}

// Save writes the vocabulary as JSON, index order preserved.
func (v *Vocabulary) Save(path string) error {
	data, err := json.MarshalIndent(fileFormat{Chars: v.Chars()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vocabulary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write vocabulary %s: %w", path, err)
	}
	return nil
}

// FromChars rebuilds a vocabulary from single-character strings in
// index order, as stored in vocabulary files and replay fixtures.
func FromChars(chars []string) (*Vocabulary, error) {
	runeToIndex := make(map[rune]int, len(chars))
	indexToRune := make([]rune, len(chars))
	for i, s := range chars {
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, fmt.Errorf("vocabulary entry %d: %q is not a single character", i, s)
		}
		if _, dup := runeToIndex[runes[0]]; dup {
			return nil, fmt.Errorf("vocabulary entry %d: duplicate character %q", i, s)
		}
		indexToRune[i] = runes[0]
		runeToIndex[runes[0]] = i
	}
	return &Vocabulary{runeToIndex: runeToIndex, indexToRune: indexToRune}, nil
}

// Chars returns the vocabulary as single-character strings in index
// order, the interchange shape used by Save and replay fixtures.
func (v *Vocabulary) Chars() []string {
	chars := make([]string, len(v.indexToRune))
	for i, r := range v.indexToRune {
		chars[i] = string(r)
	}
	return chars
}

// Load reads a vocabulary JSON file written by Save (or by the trainer).
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}
	v, err := FromChars(f.Chars)
	if err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	return v, nil
}

// #endregion persistence
