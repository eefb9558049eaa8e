package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/baldhumanity/strmatch-go/ga"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return errors.New("run id is required")
	}
	db, err := s.getDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (
			id, started_at, seed, target, alphabet, population_size, mutation_rate,
			max_generations, num_to_select, state, generations, elapsed_ms, solution, best_fitness
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started_at = excluded.started_at,
			seed = excluded.seed,
			target = excluded.target,
			alphabet = excluded.alphabet,
			population_size = excluded.population_size,
			mutation_rate = excluded.mutation_rate,
			max_generations = excluded.max_generations,
			num_to_select = excluded.num_to_select,
			state = excluded.state,
			generations = excluded.generations,
			elapsed_ms = excluded.elapsed_ms,
			solution = excluded.solution,
			best_fitness = excluded.best_fitness
	`, run.ID, run.StartedAt.UnixNano(), int64(run.Seed), run.Target, run.Alphabet, run.PopulationSize,
		run.MutationRate, run.MaxGenerations, run.NumToSelect, run.State, run.Generations,
		run.ElapsedMillis, run.Solution, run.BestFitness)
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM generations WHERE run_id = ?`, run.ID); err != nil {
		return fmt.Errorf("clear generations of run %s: %w", run.ID, err)
	}
	for _, st := range run.Stats {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO generations (run_id, generation, best_fitness, best_genes, worst, mean, stddev, median)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, st.Generation, st.BestFitness, st.BestGenes, st.Worst, st.Mean, st.StdDev, st.Median)
		if err != nil {
			return fmt.Errorf("save generation %d of run %s: %w", st.Generation, run.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (Run, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, false, err
	}

	run, err := scanRun(db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, err
	}

	run.Stats, err = s.loadStats(ctx, db, id)
	if err != nil {
		return Run{}, false, fmt.Errorf("load generations of run %s: %w", id, err)
	}
	return run, true, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context) ([]Run, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, selectRuns+` ORDER BY started_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	_ = rows.Close()

	for i := range runs {
		runs[i].Stats, err = s.loadStats(ctx, db, runs[i].ID)
		if err != nil {
			return nil, fmt.Errorf("load generations of run %s: %w", runs[i].ID, err)
		}
	}
	return runs, nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func (s *SQLiteStore) loadStats(ctx context.Context, db *sql.DB, runID string) ([]ga.GenerationStats, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT generation, best_fitness, best_genes, worst, mean, stddev, median
		FROM generations WHERE run_id = ? ORDER BY generation
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []ga.GenerationStats
	for rows.Next() {
		var st ga.GenerationStats
		if err := rows.Scan(&st.Generation, &st.BestFitness, &st.BestGenes, &st.Worst, &st.Mean, &st.StdDev, &st.Median); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

const selectRuns = `
	SELECT id, started_at, seed, target, alphabet, population_size, mutation_rate,
		max_generations, num_to_select, state, generations, elapsed_ms, solution, best_fitness
	FROM runs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run       Run
		startedAt int64
		seed      int64
	)
	err := row.Scan(&run.ID, &startedAt, &seed, &run.Target, &run.Alphabet, &run.PopulationSize,
		&run.MutationRate, &run.MaxGenerations, &run.NumToSelect, &run.State, &run.Generations,
		&run.ElapsedMillis, &run.Solution, &run.BestFitness)
	if err != nil {
		return Run{}, err
	}
	run.StartedAt = time.Unix(0, startedAt).UTC()
	run.Seed = uint64(seed)
	return run, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			target TEXT NOT NULL,
			alphabet TEXT NOT NULL,
			population_size INTEGER NOT NULL,
			mutation_rate REAL NOT NULL,
			max_generations INTEGER NOT NULL,
			num_to_select INTEGER NOT NULL,
			state TEXT NOT NULL,
			generations INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			solution TEXT NOT NULL,
			best_fitness INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS generations (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			generation INTEGER NOT NULL,
			best_fitness INTEGER NOT NULL,
			best_genes TEXT NOT NULL,
			worst INTEGER NOT NULL,
			mean REAL NOT NULL,
			stddev REAL NOT NULL,
			median REAL NOT NULL,
			PRIMARY KEY (run_id, generation)
		);
	`)
	return err
}
