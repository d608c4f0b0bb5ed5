// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/codr1/themehub/internal/api"
	themesapi "github.com/codr1/themehub/internal/api/themes"
	"github.com/codr1/themehub/internal/config"
)

func newServer(cfg *config.Config) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Theme routes
	mux.HandleFunc("GET /api/v1/themes", themesapi.HandleListThemes)
	mux.HandleFunc("POST /api/v1/themes", themesapi.HandleCreateTheme)
	mux.HandleFunc("GET /api/v1/themes/current", themesapi.HandleCurrentTheme)
	mux.HandleFunc("POST /api/v1/themes/import", themesapi.HandleImportTheme)
	mux.HandleFunc("GET /api/v1/themes/{uuid}", themesapi.HandleGetTheme)
	mux.HandleFunc("DELETE /api/v1/themes/{uuid}", themesapi.HandleDeleteTheme)
	mux.HandleFunc("PUT /api/v1/themes/{uuid}/select", themesapi.HandleSelectTheme)
	mux.HandleFunc("GET /api/v1/themes/{uuid}/export", themesapi.HandleExportTheme)
}
