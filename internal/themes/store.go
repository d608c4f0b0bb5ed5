// Package themes owns the lifecycle of user color themes: create, list,
// remove, import/export, and the active-theme selection. Builtin themes are
// merged into listings but never stored.
package themes

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/codr1/themehub/internal/db"
	"github.com/codr1/themehub/internal/models"
)

// SelectedThemeKey is the settings key holding the active theme uuid.
const SelectedThemeKey = "selected_theme"

type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// List returns user themes whose name contains query (case-insensitive), in
// insertion order, followed by matching builtin themes in display order. An
// empty query matches everything.
func (s *Store) List(ctx context.Context, query string) ([]models.Theme, error) {
	results, err := s.UserThemes(ctx, query)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	for _, theme := range Builtin() {
		if needle != "" && !strings.Contains(strings.ToLower(theme.Name), needle) {
			continue
		}
		results = append(results, theme)
	}
	return results, nil
}

// UserThemes returns only the stored user themes matching query.
func (s *Store) UserThemes(ctx context.Context, query string) ([]models.Theme, error) {
	return s.db.ListThemes(ctx, query)
}

// Get fetches one user theme by uuid. Builtin themes are not addressable
// here; a uuid with no stored row yields *NotFoundError.
func (s *Store) Get(ctx context.Context, uuid string) (models.Theme, error) {
	theme, err := s.db.GetTheme(ctx, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Theme{}, &NotFoundError{UUID: uuid}
	}
	if err != nil {
		return models.Theme{}, err
	}
	return theme, nil
}

// Create builds a complete theme from metadata and property overrides and
// persists it as one row. Properties outside the canonical key set are
// ignored; unset keys take the fallback color. Reusing an existing uuid
// surfaces the primary key constraint error.
func (s *Store) Create(ctx context.Context, meta models.Meta, properties []models.Property) error {
	theme := models.New(meta, properties)
	if err := theme.Validate(); err != nil {
		return err
	}
	return s.db.InsertTheme(ctx, theme)
}

// Remove deletes the theme row matching the model's uuid, best-effort: a
// missing row is not an error. When the removed uuid was the active
// selection, the selection is cleared.
func (s *Store) Remove(ctx context.Context, theme models.Theme) error {
	if _, err := s.db.DeleteTheme(ctx, theme.UUID); err != nil {
		return err
	}

	selected, err := s.db.GetSetting(ctx, SelectedThemeKey)
	if err != nil {
		return err
	}
	if selected == theme.UUID {
		return s.db.DeleteSetting(ctx, SelectedThemeKey)
	}
	return nil
}

// Select marks the model's uuid as the active theme. The uuid is not
// validated against stored rows; resolving a dangling selection later fails
// with *NotFoundError.
func (s *Store) Select(ctx context.Context, theme models.Theme) error {
	return s.db.SetSetting(ctx, SelectedThemeKey, theme.UUID)
}

// Current reads the active theme uuid, or the empty string when no selection
// exists.
func (s *Store) Current(ctx context.Context) (string, error) {
	return s.db.GetSetting(ctx, SelectedThemeKey)
}
