package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region entry

// ProvenanceEntry is a single row in the provenance_log table: one
// decision made during an evaluation run, tied back to the run and,
// when per-sample, to the sample's sequence number.
type ProvenanceEntry struct {
	RunID     string
	Seq       int
	PerSample bool
	Decision  string // "label_0" | "label_1" | "run_complete" | "sample_skipped"
	Margin    float64
	Reason    string
	CreatedAt time.Time
}

// #endregion entry

// #region log-decision

// LogDecision writes a provenance entry to the provenance_log table.
func LogDecision(db *sql.DB, entry ProvenanceEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var seqPtr interface{}
	if entry.PerSample {
		seqPtr = entry.Seq
	}

	_, err := db.Exec(
		`INSERT INTO provenance_log (run_id, seq, decision, margin, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		seqPtr,
		entry.Decision,
		entry.Margin,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
