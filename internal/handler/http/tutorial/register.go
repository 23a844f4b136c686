package tutorial

import (
	"log/slog"
	"net/http"

	tutUC "tutorial-hub/internal/usecase/tutorial"
)

// Register registers all tutorial-related HTTP handlers with the given mux.
// It sets up routes for listing, retrieving, creating, updating, and deleting tutorials.
func Register(mux *http.ServeMux, svc tutUC.Service, logger *slog.Logger) {
	mux.Handle("GET    /tutorials", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET    /tutorials/published", PublishedHandler{svc})
	mux.Handle("GET    /tutorials/", GetHandler{svc})

	mux.Handle("POST   /tutorials", CreateHandler{svc})
	mux.Handle("PUT    /tutorials/", UpdateHandler{svc})
	mux.Handle("DELETE /tutorials/", DeleteHandler{svc})
	mux.Handle("DELETE /tutorials", DeleteAllHandler{Svc: svc, Logger: logger})
}
