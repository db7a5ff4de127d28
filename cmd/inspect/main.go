package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/langtell/go-scorer/internal/results"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to langtell_runs.db")
	last := flag.Int("last", 20, "show N most recent runs")
	run := flag.String("run", "", "show single run detail")
	roc := flag.Bool("roc", false, "include the ROC curve in run detail")
	samples := flag.Bool("samples", false, "include per-sample scores in run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/langtell_runs.db [--last N] [--run id] [--roc] [--samples] [--json]")
		os.Exit(2)
	}

	store, err := results.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *run != "" {
		if err := runDetailMode(store, *run, *roc, *samples, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

func runListMode(store *results.Store, limit int, jsonOut bool) error {
	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(runs)
	}

	fmt.Printf("%-36s  %-14s  %-18s  %8s  %8s  %7s\n", "RUN", "POLICY", "MODELS", "ACCURACY", "AUC", "SAMPLES")
	for _, r := range runs {
		auc := fmt.Sprintf("%.4f", r.AUC)
		if math.IsNaN(r.AUC) {
			auc = "undef"
		}
		fmt.Printf("%-36s  %-14s  %-18s  %8.4f  %8s  %7d\n",
			r.RunID, r.Policy, r.ModelA+"/"+r.ModelB, r.Accuracy, auc, r.SampleCount)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *results.Store, runID string, withROC, withSamples, jsonOut bool) error {
	run, err := store.GetRun(runID)
	if err != nil {
		return err
	}

	if jsonOut {
		detail := map[string]interface{}{"run": run}
		if withROC {
			points, err := store.ROCPoints(runID)
			if err != nil {
				return err
			}
			detail["roc"] = points
		}
		if withSamples {
			rows, err := store.SampleScores(runID)
			if err != nil {
				return err
			}
			detail["samples"] = rows
		}
		return json.NewEncoder(os.Stdout).Encode(detail)
	}

	fmt.Printf("run        %s\n", run.RunID)
	fmt.Printf("policy     %s\n", run.Policy)
	fmt.Printf("models     %s (A) vs %s (B)\n", run.ModelA, run.ModelB)
	fmt.Printf("lengths    sub=%d context=%d  seed=%d\n", run.SubLen, run.ContextLen, run.Seed)
	fmt.Printf("samples    %d\n", run.SampleCount)
	fmt.Printf("accuracy   %.4f\n", run.Accuracy)
	if run.Degenerate {
		fmt.Println("auc        undefined (single-label sample set)")
	} else {
		fmt.Printf("auc        %.4f\n", run.AUC)
	}
	fmt.Printf("created    %s\n", run.CreatedAt)

	if withROC {
		points, err := store.ROCPoints(runID)
		if err != nil {
			return err
		}
		fmt.Printf("\n%10s  %8s  %8s\n", "THRESHOLD", "FPR", "TPR")
		for _, p := range points {
			threshold := fmt.Sprintf("%10.4f", p.Threshold)
			if math.IsInf(p.Threshold, 1) {
				threshold = "      +inf"
			}
			fmt.Printf("%s  %8.4f  %8.4f\n", threshold, p.FPR, p.TPR)
		}
	}

	if withSamples {
		rows, err := store.SampleScores(runID)
		if err != nil {
			return err
		}
		fmt.Printf("\n%5s  %-12s  %5s  %5s  %10s\n", "SEQ", "SUBSTRING", "TRUE", "PRED", "MARGIN")
		for _, r := range rows {
			fmt.Printf("%5d  %-12q  %5d  %5d  %10.4f\n", r.Seq, r.Substring, r.TrueLabel, r.Predicted, r.Margin)
		}
	}
	return nil
}

// #endregion detail-mode
