// Package server exposes the portfolio query engine and mutation entry
// points as a JSON API for the browser dashboard.
package server

import (
	"github.com/estateworks/estates-go/internal/config"
	"github.com/estateworks/estates-go/internal/portfolio"
)

// Server holds the shared state behind the handlers.
type Server struct {
	store  *portfolio.Store
	cfg    *config.Config
	reload func() error
}

// New creates a server over the given store. The reload callback re-reads
// the workbook and replaces the store; it may be nil, in which case the
// reload endpoint reports failure.
func New(store *portfolio.Store, cfg *config.Config, reload func() error) *Server {
	return &Server{store: store, cfg: cfg, reload: reload}
}
