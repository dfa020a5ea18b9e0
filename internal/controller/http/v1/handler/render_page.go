package v1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	renderPageURL = "/render/page"
)

type RenderPageUsecase interface {
	RenderPage(ctx context.Context, dto entity.RenderPageDTO) entity.RenderedPage
}

type renderPageHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     RenderPageUsecase
}

func NewRenderPageHandler(usecase RenderPageUsecase) *renderPageHandler {
	return &renderPageHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *renderPageHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Post(renderPageURL, handler.ServeHTTP)
}

func (h *renderPageHandler) Middlewares(md ...func(http.Handler) http.Handler) *renderPageHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *renderPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.UseNumber()

	var dto entity.RenderPageDTO
	err := decoder.Decode(&dto)
	if err != nil {
		http.Error(w, "error decoding json request body", http.StatusBadRequest)
		return
	}

	page := h.usecase.RenderPage(r.Context(), dto)

	writeJSON(w, http.StatusOK, page)
}
