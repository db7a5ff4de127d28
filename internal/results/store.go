package results

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	policy        TEXT NOT NULL,
	model_a       TEXT NOT NULL,
	model_b       TEXT NOT NULL,
	sub_len       INTEGER NOT NULL,
	context_len   INTEGER NOT NULL,
	seed          INTEGER NOT NULL,
	sample_count  INTEGER NOT NULL,
	accuracy      REAL NOT NULL,
	auc           REAL,
	degenerate    INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS roc_points (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	seq           INTEGER NOT NULL,
	threshold     REAL,
	fpr           REAL NOT NULL,
	tpr           REAL NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS sample_scores (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	seq           INTEGER NOT NULL,
	substring     TEXT NOT NULL,
	true_label    INTEGER NOT NULL,
	score_a       REAL NOT NULL,
	score_b       REAL NOT NULL,
	margin        REAL NOT NULL,
	predicted     INTEGER NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS provenance_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	seq           INTEGER,
	decision      TEXT NOT NULL,
	margin        REAL,
	reason        TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// #endregion schema

// #region store-struct
// Store persists evaluation runs in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region save-run
// SaveRun inserts a run summary with its ROC points and per-sample
// scores in one transaction.
func (s *Store) SaveRun(run RunRecord, roc []ROCRow, samples []SampleRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var aucPtr interface{}
	if !math.IsNaN(run.AUC) {
		aucPtr = run.AUC
	}

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, policy, model_a, model_b, sub_len, context_len, seed, sample_count, accuracy, auc, degenerate, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Policy, run.ModelA, run.ModelB, run.SubLen, run.ContextLen,
		run.Seed, run.SampleCount, run.Accuracy, aucPtr, boolToInt(run.Degenerate),
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, p := range roc {
		var thresholdPtr interface{}
		if !math.IsInf(p.Threshold, 0) {
			thresholdPtr = p.Threshold
		}
		_, err = tx.Exec(
			`INSERT INTO roc_points (run_id, seq, threshold, fpr, tpr) VALUES (?, ?, ?, ?, ?)`,
			run.RunID, p.Seq, thresholdPtr, p.FPR, p.TPR,
		)
		if err != nil {
			return fmt.Errorf("insert roc point %d: %w", p.Seq, err)
		}
	}

	for _, sm := range samples {
		_, err = tx.Exec(
			`INSERT INTO sample_scores (run_id, seq, substring, true_label, score_a, score_b, margin, predicted)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.RunID, sm.Seq, sm.Substring, sm.TrueLabel, sm.ScoreA, sm.ScoreB, sm.Margin, sm.Predicted,
		)
		if err != nil {
			return fmt.Errorf("insert sample score %d: %w", sm.Seq, err)
		}
	}

	return tx.Commit()
}

// #endregion save-run

// #region get-run
// GetRun retrieves a run summary by ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var auc sql.NullFloat64
	var degenerate int
	var createdStr string

	err := s.db.QueryRow(
		`SELECT run_id, policy, model_a, model_b, sub_len, context_len, seed, sample_count, accuracy, auc, degenerate, created_at
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(&rec.RunID, &rec.Policy, &rec.ModelA, &rec.ModelB, &rec.SubLen, &rec.ContextLen,
		&rec.Seed, &rec.SampleCount, &rec.Accuracy, &auc, &degenerate, &createdStr)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}

	rec.AUC = math.NaN()
	if auc.Valid {
		rec.AUC = auc.Float64
	}
	rec.Degenerate = degenerate != 0
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// #endregion get-run

// #region list-runs
// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, policy, model_a, model_b, sub_len, context_len, seed, sample_count, accuracy, auc, degenerate, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var auc sql.NullFloat64
		var degenerate int
		var createdStr string

		if err := rows.Scan(&rec.RunID, &rec.Policy, &rec.ModelA, &rec.ModelB, &rec.SubLen, &rec.ContextLen,
			&rec.Seed, &rec.SampleCount, &rec.Accuracy, &auc, &degenerate, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.AUC = math.NaN()
		if auc.Valid {
			rec.AUC = auc.Float64
		}
		rec.Degenerate = degenerate != 0
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-runs

// #region roc-points
// ROCPoints returns a run's ROC curve ordered by sequence.
func (s *Store) ROCPoints(runID string) ([]ROCRow, error) {
	rows, err := s.db.Query(
		`SELECT seq, threshold, fpr, tpr FROM roc_points WHERE run_id = ? ORDER BY seq`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("roc points %s: %w", runID, err)
	}
	defer rows.Close()

	var points []ROCRow
	for rows.Next() {
		var p ROCRow
		var threshold sql.NullFloat64
		if err := rows.Scan(&p.Seq, &threshold, &p.FPR, &p.TPR); err != nil {
			return nil, fmt.Errorf("scan roc point: %w", err)
		}
		p.Threshold = math.Inf(1)
		if threshold.Valid {
			p.Threshold = threshold.Float64
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// #endregion roc-points

// #region sample-scores
// SampleScores returns a run's per-sample outcomes ordered by sequence.
func (s *Store) SampleScores(runID string) ([]SampleRow, error) {
	rows, err := s.db.Query(
		`SELECT seq, substring, true_label, score_a, score_b, margin, predicted
		 FROM sample_scores WHERE run_id = ? ORDER BY seq`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("sample scores %s: %w", runID, err)
	}
	defer rows.Close()

	var samples []SampleRow
	for rows.Next() {
		var sm SampleRow
		if err := rows.Scan(&sm.Seq, &sm.Substring, &sm.TrueLabel, &sm.ScoreA, &sm.ScoreB, &sm.Margin, &sm.Predicted); err != nil {
			return nil, fmt.Errorf("scan sample score: %w", err)
		}
		samples = append(samples, sm)
	}
	return samples, rows.Err()
}

// #endregion sample-scores

// #region helpers
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
