// Package migrate evolves the SQLite schema through an ordered list of
// versioned steps. The store's current version lives in PRAGMA user_version;
// each step runs in a single transaction together with its version bump, so a
// failed step leaves the store at the last completed version.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// Step transforms the store from version From to version To. Apply runs
// inside a transaction; structural changes are guarded so that re-running a
// step against an already-matching schema is a no-op.
type Step struct {
	Name  string
	From  int
	To    int
	Apply func(ctx context.Context, tx *sql.Tx) error
}

// AbortError reports a step that failed partway. The store remains at
// Version, the last version whose step completed.
type AbortError struct {
	Step    string
	Version int
	Err     error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("migration %q aborted, store remains at version %d: %v", e.Step, e.Version, e.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

// Version reads the store's recorded schema version.
func Version(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Up applies all pending built-in steps to the store. A fully migrated store
// is a no-op.
func Up(ctx context.Context, db *sql.DB) error {
	return Run(ctx, db, Steps())
}

// Run applies the pending subset of steps, strictly in ascending order, each
// exactly once. The step list must be contiguous and each step must advance
// the version by exactly one.
func Run(ctx context.Context, db *sql.DB, steps []Step) error {
	if err := validateSteps(steps); err != nil {
		return err
	}

	version, err := Version(ctx, db)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if step.To <= version {
			continue
		}
		if step.From != version {
			return fmt.Errorf("no migration step from version %d (next step %q starts at %d)", version, step.Name, step.From)
		}
		if err := applyStep(ctx, db, step); err != nil {
			return &AbortError{Step: step.Name, Version: version, Err: err}
		}
		log.Info().
			Str("step", step.Name).
			Int("from", step.From).
			Int("to", step.To).
			Msg("Applied schema migration")
		version = step.To
	}

	return nil
}

func applyStep(ctx context.Context, db *sql.DB, step Step) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := step.Apply(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	// PRAGMA does not accept bind parameters; To is an integer under our control.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", step.To)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return fmt.Errorf("record version %d: %w", step.To, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func validateSteps(steps []Step) error {
	if len(steps) == 0 {
		return nil
	}
	if !sort.SliceIsSorted(steps, func(i, j int) bool { return steps[i].From < steps[j].From }) {
		return fmt.Errorf("migration steps are not in ascending order")
	}
	for i, step := range steps {
		if step.To != step.From+1 {
			return fmt.Errorf("step %q must advance the version by one (%d -> %d)", step.Name, step.From, step.To)
		}
		if i > 0 && step.From != steps[i-1].To {
			return fmt.Errorf("gap between steps %q and %q", steps[i-1].Name, step.Name)
		}
	}
	return nil
}

func tableExists(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	var count int
	err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", name, err)
	}
	return count > 0, nil
}

func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("read columns of %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			columnType string
			notNull    int
			dflt       sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &columnType, &notNull, &dflt, &primaryKey); err != nil {
			return false, fmt.Errorf("scan column of %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("read columns of %s: %w", table, err)
	}
	return false, nil
}

// addColumn adds a column unless the table already has it, making ALTER TABLE
// as re-runnable as CREATE TABLE IF NOT EXISTS.
func addColumn(ctx context.Context, tx *sql.Tx, table, column, definition string) error {
	exists, err := columnExists(ctx, tx, table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition)
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return nil
}
