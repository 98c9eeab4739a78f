// Package web serves the vault navigator: a small browser UI for
// browsing stored scripts by category.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/ports/driving"
	"github.com/scriptvault-labs/scriptvault-cli/internal/logger"
)

//go:embed index.html
var assets embed.FS

// Server is the vault navigator HTTP server.
type Server struct {
	vault    driving.VaultService
	server   *http.Server
	listener net.Listener
}

// NewServer creates a navigator server for the given vault.
func NewServer(vault driving.VaultService) (*Server, error) {
	if vault == nil {
		return nil, errors.New("vault service is required")
	}

	s := &Server{vault: vault}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/scripts", s.handleScripts)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /view", s.handleView)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s, nil
}

// Start begins listening on addr. If the port is 0 a random available
// port is chosen; use Addr to discover it.
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("navigator server: %v", err)
		}
	}()
	return nil
}

// Stop shuts down the server gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := assets.ReadFile("index.html")
	if err != nil {
		http.Error(w, "navigator assets missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// scriptEntry is the JSON shape served to the navigator UI.
type scriptEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Path     string `json:"path"`
	URI      string `json:"uri"`
	Size     int64  `json:"size"`
}

func (s *Server) handleScripts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	scripts, err := s.vault.List(r.Context(), category)
	if err != nil {
		http.Error(w, "failed to list scripts", http.StatusInternalServerError)
		return
	}

	entries := make([]scriptEntry, 0, len(scripts))
	for i := range scripts {
		entries = append(entries, scriptEntry{
			ID:       scripts[i].ID,
			Name:     scripts[i].Name,
			Category: scripts[i].Category,
			Path:     scripts[i].Path,
			URI:      scripts[i].URI,
			Size:     scripts[i].Size,
		})
	}

	writeJSON(w, entries)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := s.vault.Categories(r.Context())
	if err != nil {
		http.Error(w, "failed to count categories", http.StatusInternalServerError)
		return
	}
	writeJSON(w, counts)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	content, err := s.vault.Content(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "script not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read script", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(content)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encoding response: %v", err)
	}
}
