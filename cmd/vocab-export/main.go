package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/langtell/go-scorer/internal/corpus"
)

// #region main

func main() {
	out := flag.String("out", "vocabulary.json", "output vocabulary file")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: vocab-export [--out vocabulary.json] corpus1.txt corpus2.txt ...")
		os.Exit(2)
	}

	texts := make([][]rune, flag.NArg())
	for i, path := range flag.Args() {
		text, err := corpus.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		texts[i] = text
	}

	v := corpus.BuildVocabulary(texts...)
	if err := v.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d characters to %s\n", v.Size(), *out)
	fmt.Println("Train both predictor services against this file before evaluating.")
}

// #endregion main
