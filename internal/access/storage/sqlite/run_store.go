// Package sqlite persists SASA analysis runs. Schema is created on open;
// one row per run plus one row per atom area.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is a persisted SASA calculation: its inputs and the total result.
type Run struct {
	RunID        string  `json:"run_id"`
	Source       string  `json:"source"` // input file the atoms came from
	AtomCount    int     `json:"atom_count"`
	ProbeRadius  float64 `json:"probe_radius"`
	SpherePoints int     `json:"sphere_points"` // quadrature points actually used
	TotalArea    float64 `json:"total_area"`
	CreatedAt    int64   `json:"created_at"` // unix nanos
}

// RunStore provides persistence for SASA runs and their per-atom areas.
type RunStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a run database at path and applies the
// schema. Use ":memory:" for tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run db: %w", err)
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sasa_runs (
			run_id        TEXT PRIMARY KEY,
			source        TEXT NOT NULL,
			atom_count    INTEGER NOT NULL,
			probe_radius  DOUBLE NOT NULL,
			sphere_points INTEGER NOT NULL,
			total_area    DOUBLE NOT NULL,
			created_at    INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS sasa_atom_areas (
			run_id     TEXT NOT NULL,
			atom_index INTEGER NOT NULL,
			area       DOUBLE NOT NULL,
			PRIMARY KEY (run_id, atom_index),
			FOREIGN KEY (run_id) REFERENCES sasa_runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("apply run schema: %w", err)
	}
	return db, nil
}

// NewRunStore creates a RunStore over an opened database.
func NewRunStore(db *sql.DB) *RunStore {
	return &RunStore{db: db}
}

// Insert persists a run and its per-atom areas in one transaction. If RunID
// is empty a UUID is generated; if CreatedAt is zero the current time is used.
func (s *RunStore) Insert(run *Run, areas []float64) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}
	if run.AtomCount == 0 {
		run.AtomCount = len(areas)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin run insert: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO sasa_runs (
			run_id, source, atom_count, probe_radius, sphere_points,
			total_area, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Source, run.AtomCount, run.ProbeRadius,
		run.SpherePoints, run.TotalArea, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sasa_atom_areas (run_id, atom_index, area) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare area insert: %w", err)
	}
	defer stmt.Close()
	for i, area := range areas {
		if _, err := stmt.Exec(run.RunID, i, area); err != nil {
			return fmt.Errorf("insert area for atom %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run insert: %w", err)
	}
	return nil
}

// Get returns a single run by ID.
func (s *RunStore) Get(runID string) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT run_id, source, atom_count, probe_radius, sphere_points,
		       total_area, created_at
		FROM sasa_runs
		WHERE run_id = ?`, runID)

	var r Run
	err := row.Scan(&r.RunID, &r.Source, &r.AtomCount, &r.ProbeRadius,
		&r.SpherePoints, &r.TotalArea, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	return &r, nil
}

// ListBySource returns all runs for a given source file, newest first.
func (s *RunStore) ListBySource(source string) ([]*Run, error) {
	rows, err := s.db.Query(`
		SELECT run_id, source, atom_count, probe_radius, sphere_points,
		       total_area, created_at
		FROM sasa_runs
		WHERE source = ?
		ORDER BY created_at DESC`, source)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var r Run
		err := rows.Scan(&r.RunID, &r.Source, &r.AtomCount, &r.ProbeRadius,
			&r.SpherePoints, &r.TotalArea, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

// AtomAreas returns the per-atom areas of a run, ordered by atom index.
func (s *RunStore) AtomAreas(runID string) ([]float64, error) {
	rows, err := s.db.Query(`
		SELECT area FROM sasa_atom_areas
		WHERE run_id = ?
		ORDER BY atom_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("query areas: %w", err)
	}
	defer rows.Close()

	var areas []float64
	for rows.Next() {
		var a float64
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}
