package corpus

import (
	"fmt"
	"os"

	"github.com/langtell/go-scorer/internal/vocab"
)

// #region load

// Load reads a corpus file into a rune slice.
func Load(path string) ([]rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return []rune(string(data)), nil
}

// #endregion load

// #region split

// Split divides a corpus into a training portion and an evaluation
// portion. The training portion belongs to the Python trainer; the Go
// side only ever scores against the evaluation portion, so test
// substrings are never drawn from text the models saw.
func Split(text []rune, trainFrac float64) (train, eval []rune, err error) {
	if trainFrac <= 0 || trainFrac >= 1 {
		return nil, nil, fmt.Errorf("train fraction %v outside (0,1)", trainFrac)
	}
	cut := int(float64(len(text)) * trainFrac)
	return text[:cut], text[cut:], nil
}

// #endregion split

// #region vocabulary

// BuildVocabulary builds the shared vocabulary from the union of all
// corpora being compared. Both language models must be trained against
// this same vocabulary file.
func BuildVocabulary(texts ...[]rune) *vocab.Vocabulary {
	return vocab.New(texts...)
}

// #endregion vocabulary
