// internal/db/themes.go
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/codr1/themehub/internal/models"
)

// themeColumns returns the themes column list in canonical order: the four
// metadata columns followed by one column per color property.
func themeColumns() []string {
	columns := make([]string, 0, 4+len(models.ColorColumns))
	columns = append(columns, "uuid", "name", "author", "description")
	for _, cc := range models.ColorColumns {
		columns = append(columns, cc.Column)
	}
	return columns
}

// InsertTheme persists one theme row. A reused uuid surfaces the primary key
// constraint error unchanged.
func (db *DB) InsertTheme(ctx context.Context, theme models.Theme) error {
	columns := themeColumns()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")

	args := make([]any, 0, len(columns))
	args = append(args, theme.UUID, theme.Name, theme.Author, theme.Description)
	for _, cc := range models.ColorColumns {
		args = append(args, theme.Colors[cc.Key])
	}

	query := fmt.Sprintf("INSERT INTO themes (%s) VALUES (%s)",
		strings.Join(columns, ", "), placeholders)
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert theme %s: %w", theme.UUID, err)
	}
	return nil
}

// GetTheme fetches one theme row by uuid. A missing row returns sql.ErrNoRows
// for the caller to classify.
func (db *DB) GetTheme(ctx context.Context, uuid string) (models.Theme, error) {
	query := fmt.Sprintf("SELECT %s FROM themes WHERE uuid = ?",
		strings.Join(themeColumns(), ", "))
	row := db.QueryRowContext(ctx, query, uuid)

	theme, err := scanTheme(func(dest ...any) error { return row.Scan(dest...) })
	if err != nil {
		return models.Theme{}, err
	}
	return theme, nil
}

// ListThemes returns themes whose name contains query (case-insensitive), in
// insertion order. An empty query matches every row.
func (db *DB) ListThemes(ctx context.Context, query string) ([]models.Theme, error) {
	statement := fmt.Sprintf(
		"SELECT %s FROM themes WHERE name LIKE '%%' || ? || '%%' ORDER BY rowid",
		strings.Join(themeColumns(), ", "))
	rows, err := db.QueryContext(ctx, statement, query)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	themes := []models.Theme{}
	for rows.Next() {
		theme, err := scanTheme(func(dest ...any) error { return rows.Scan(dest...) })
		if err != nil {
			return nil, err
		}
		themes = append(themes, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return themes, nil
}

// DeleteTheme removes the row matching uuid and reports how many rows went
// away. Deleting a missing uuid is not an error.
func (db *DB) DeleteTheme(ctx context.Context, uuid string) (int64, error) {
	result, err := db.ExecContext(ctx, "DELETE FROM themes WHERE uuid = ?", uuid)
	if err != nil {
		return 0, fmt.Errorf("delete theme %s: %w", uuid, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete theme %s: %w", uuid, err)
	}
	return affected, nil
}

func scanTheme(scan func(dest ...any) error) (models.Theme, error) {
	var theme models.Theme
	values := make([]string, len(models.ColorColumns))

	dest := make([]any, 0, 4+len(values))
	dest = append(dest, &theme.UUID, &theme.Name, &theme.Author, &theme.Description)
	for i := range values {
		dest = append(dest, &values[i])
	}
	if err := scan(dest...); err != nil {
		return models.Theme{}, err
	}

	theme.Colors = make(map[string]string, len(models.ColorColumns))
	for i, cc := range models.ColorColumns {
		theme.Colors[cc.Key] = values[i]
	}
	return theme, nil
}
