// internal/api/themes/handlers.go
package themes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codr1/themehub/internal/models"
	themestore "github.com/codr1/themehub/internal/themes"
)

const (
	themeQueryTimeout = 5 * time.Second
	themeUUIDParam    = "uuid"
	searchQueryKey    = "query"
	maxImportBytes    = 1 << 20
)

var (
	store     *themestore.Store
	storeOnce sync.Once
)

type themeRequest struct {
	Name        string            `json:"name"`
	Author      string            `json:"author"`
	Description string            `json:"description"`
	Colors      map[string]string `json:"colors"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s *themestore.Store) {
	if s == nil {
		return
	}
	storeOnce.Do(func() {
		store = s
	})
}

func loadStore() *themestore.Store {
	return store
}

// GET /api/v1/themes
func HandleListThemes(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := themeContext(r)
	defer cancel()

	results, err := s.List(ctx, strings.TrimSpace(r.URL.Query().Get(searchQueryKey)))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list themes")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// POST /api/v1/themes
func HandleCreateTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	meta := models.Meta{
		UUID:        uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		Author:      strings.TrimSpace(req.Author),
		Description: strings.TrimSpace(req.Description),
	}
	properties := make([]models.Property, 0, len(req.Colors))
	for key, value := range req.Colors {
		properties = append(properties, models.Property{Key: key, Value: value})
	}

	ctx, cancel := themeContext(r)
	defer cancel()

	if err := s.Create(ctx, meta, properties); err != nil {
		logger.Warn().Err(err).Str("name", meta.Name).Msg("Failed to create theme")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := s.Get(ctx, meta.UUID)
	if err != nil {
		logger.Error().Err(err).Str("uuid", meta.UUID).Msg("Failed to read back created theme")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GET /api/v1/themes/{uuid}
func HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	themeUUID := strings.TrimSpace(r.PathValue(themeUUIDParam))
	if themeUUID == "" {
		http.Error(w, "Theme uuid is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := themeContext(r)
	defer cancel()

	theme, err := s.Get(ctx, themeUUID)
	if err != nil {
		respondThemeError(w, logger.Warn().Str("uuid", themeUUID), err)
		return
	}

	writeJSON(w, http.StatusOK, theme)
}

// DELETE /api/v1/themes/{uuid}
func HandleDeleteTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	themeUUID := strings.TrimSpace(r.PathValue(themeUUIDParam))
	if themeUUID == "" {
		http.Error(w, "Theme uuid is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := themeContext(r)
	defer cancel()

	if err := s.Remove(ctx, models.Theme{UUID: themeUUID}); err != nil {
		logger.Error().Err(err).Str("uuid", themeUUID).Msg("Failed to remove theme")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PUT /api/v1/themes/{uuid}/select
func HandleSelectTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	themeUUID := strings.TrimSpace(r.PathValue(themeUUIDParam))
	if themeUUID == "" {
		http.Error(w, "Theme uuid is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := themeContext(r)
	defer cancel()

	if err := s.Select(ctx, models.Theme{UUID: themeUUID}); err != nil {
		logger.Error().Err(err).Str("uuid", themeUUID).Msg("Failed to select theme")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/themes/current
func HandleCurrentTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := themeContext(r)
	defer cancel()

	current, err := s.Current(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read current theme")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if current == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"uuid": current})
}

// POST /api/v1/themes/import
func HandleImportTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	theme, err := themestore.Import(raw)
	if err != nil {
		respondThemeError(w, logger.Warn(), err)
		return
	}

	meta := models.Meta{
		UUID:        theme.UUID,
		Name:        theme.Name,
		Author:      theme.Author,
		Description: theme.Description,
	}
	properties := make([]models.Property, 0, len(theme.Colors))
	for key, value := range theme.Colors {
		properties = append(properties, models.Property{Key: key, Value: value})
	}

	ctx, cancel := themeContext(r)
	defer cancel()

	if err := s.Create(ctx, meta, properties); err != nil {
		logger.Warn().Err(err).Str("uuid", meta.UUID).Msg("Failed to store imported theme")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, theme)
}

// GET /api/v1/themes/{uuid}/export
func HandleExportTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	themeUUID := strings.TrimSpace(r.PathValue(themeUUIDParam))
	if themeUUID == "" {
		http.Error(w, "Theme uuid is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := themeContext(r)
	defer cancel()

	theme, err := s.Get(ctx, themeUUID)
	if err != nil {
		respondThemeError(w, logger.Warn().Str("uuid", themeUUID), err)
		return
	}

	data, filename, err := themestore.Export(theme)
	if err != nil {
		logger.Error().Err(err).Str("uuid", themeUUID).Msg("Failed to export theme")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", themestore.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func themeContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), themeQueryTimeout)
}

func respondThemeError(w http.ResponseWriter, logEvent *zerolog.Event, err error) {
	var notFound *themestore.NotFoundError
	var badFile *themestore.DeserializationError
	switch {
	case errors.As(err, &notFound):
		logEvent.Err(err).Msg("Theme not found")
		http.Error(w, "Theme not found", http.StatusNotFound)
	case errors.As(err, &badFile):
		logEvent.Err(err).Msg("Invalid theme file")
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logEvent.Err(err).Msg("Theme operation failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
