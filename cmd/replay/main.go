package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/langtell/go-scorer/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	result, err := replay.Run(context.Background(), fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("fixture:  %s\n", fixture.Description)
	fmt.Printf("accuracy: %.4f\n", result.Accuracy)
	if result.Degenerate {
		fmt.Println("auc:      undefined (single-label sample set)")
	} else {
		fmt.Printf("auc:      %.4f\n", result.AUC)
	}

	if !result.Passed {
		fmt.Printf("FAIL: %s\n", result.Reason)
		os.Exit(1)
	}
	fmt.Printf("PASS: %s\n", result.Reason)
}

// #endregion main
