// internal/app/features/hello/routes.go
package hello

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the greeting endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve) // this will be mounted under /hello
	return r
}
