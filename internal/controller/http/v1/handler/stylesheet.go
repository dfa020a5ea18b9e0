package v1

import (
	"net/http"

	"github.com/The-Gleb/product_banner/internal/assets"
	"github.com/go-chi/chi/v5"
)

const (
	stylesheetURL = "/assets/" + assets.StylesheetName
)

type stylesheetHandler struct {
	middlewares []func(http.Handler) http.Handler
	assets      http.Handler
}

func NewStylesheetHandler() *stylesheetHandler {
	return &stylesheetHandler{
		assets:      assets.Handler(),
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *stylesheetHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Get(stylesheetURL, handler.ServeHTTP)
	r.Head(stylesheetURL, handler.ServeHTTP)
}

func (h *stylesheetHandler) Middlewares(md ...func(http.Handler) http.Handler) *stylesheetHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *stylesheetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.assets.ServeHTTP(w, r)
}
