package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/codr1/themehub/internal/languages"
	"github.com/codr1/themehub/internal/models"
)

const localFilePrefix = "file://"

// Steps returns the built-in migration steps in order. The highest To value
// is the schema version this build expects.
func Steps() []Step {
	return []Step{
		{Name: "baseline", From: 0, To: 1, Apply: migrateBaseline},
		{Name: "servers", From: 1, To: 2, Apply: migrateServers},
		{Name: "filesystems", From: 2, To: 3, Apply: migrateFilesystems},
		{Name: "languages", From: 3, To: 4, Apply: migrateLanguages},
	}
}

func migrateBaseline(ctx context.Context, tx *sql.Tx) error {
	var themes strings.Builder
	themes.WriteString(`CREATE TABLE IF NOT EXISTS themes (
	uuid TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	author TEXT NOT NULL,
	description TEXT NOT NULL`)
	for _, cc := range models.ColorColumns {
		fmt.Fprintf(&themes, ",\n\t%s TEXT NOT NULL DEFAULT '%s'", cc.Column, models.FallbackColor)
	}
	themes.WriteString("\n)")

	statements := []string{
		themes.String(),
		`CREATE TABLE IF NOT EXISTS documents (
	uuid TEXT PRIMARY KEY,
	path TEXT NOT NULL,
	modified INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL DEFAULT 0,
	scroll_x INTEGER NOT NULL DEFAULT 0,
	scroll_y INTEGER NOT NULL DEFAULT 0
)`,
		`CREATE TABLE IF NOT EXISTS fonts (
	uuid TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	path TEXT NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`,
	}
	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("create baseline schema: %w", err)
		}
	}
	return nil
}

func migrateServers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS servers (
	uuid TEXT PRIMARY KEY,
	scheme TEXT NOT NULL,
	name TEXT NOT NULL,
	address TEXT NOT NULL,
	port INTEGER NOT NULL,
	username TEXT NOT NULL,
	password TEXT NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("create servers table: %w", err)
	}
	return nil
}

// migrateFilesystems tags every document with the local filesystem and
// rewrites bare paths as file:// URIs. The prefix check keeps the backfill
// safe against a re-run.
func migrateFilesystems(ctx context.Context, tx *sql.Tx) error {
	if err := addColumn(ctx, tx, "documents", "filesystem_uuid", "TEXT NOT NULL DEFAULT 'local'"); err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, "SELECT uuid, path FROM documents")
	if err != nil {
		return fmt.Errorf("read documents: %w", err)
	}
	defer rows.Close()

	type rewrite struct {
		uuid string
		path string
	}
	var rewrites []rewrite
	for rows.Next() {
		var uuid, path string
		if err := rows.Scan(&uuid, &path); err != nil {
			return fmt.Errorf("scan document: %w", err)
		}
		if strings.HasPrefix(path, localFilePrefix) {
			continue
		}
		rewrites = append(rewrites, rewrite{uuid: uuid, path: localFilePrefix + path})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read documents: %w", err)
	}

	for _, r := range rewrites {
		if _, err := tx.ExecContext(ctx, "UPDATE documents SET path = ? WHERE uuid = ?", r.path, r.uuid); err != nil {
			return fmt.Errorf("rewrite document %s: %w", r.uuid, err)
		}
	}
	return nil
}

// migrateLanguages backfills a language tag for every document from its
// stored path, gives fonts a stable identifier, and adds the cursor color to
// themes. The language column is altered before the row pass so the backfill
// has somewhere to write.
func migrateLanguages(ctx context.Context, tx *sql.Tx) error {
	if err := addColumn(ctx, tx, "documents", "language", "TEXT NOT NULL DEFAULT ''"); err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, "SELECT uuid, path FROM documents WHERE language = ''")
	if err != nil {
		return fmt.Errorf("read documents: %w", err)
	}
	defer rows.Close()

	type tag struct {
		uuid     string
		language string
	}
	var tags []tag
	for rows.Next() {
		var uuid, path string
		if err := rows.Scan(&uuid, &path); err != nil {
			return fmt.Errorf("scan document: %w", err)
		}
		tags = append(tags, tag{uuid: uuid, language: languages.Classify(path)})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read documents: %w", err)
	}

	for _, t := range tags {
		if _, err := tx.ExecContext(ctx, "UPDATE documents SET language = ? WHERE uuid = ?", t.language, t.uuid); err != nil {
			return fmt.Errorf("tag document %s: %w", t.uuid, err)
		}
	}

	if err := addColumn(ctx, tx, "fonts", "font_uuid", "TEXT NOT NULL DEFAULT 'legacy'"); err != nil {
		return err
	}
	if err := addColumn(ctx, tx, "themes", "cursor_color", "TEXT NOT NULL DEFAULT '#BBBBBB'"); err != nil {
		return err
	}
	return nil
}
