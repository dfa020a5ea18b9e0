package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	listProductsURL = "/products"
)

type ListProductsUsecase interface {
	ListProducts(ctx context.Context, search string) ([]entity.ProductOption, error)
}

type listProductsHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     ListProductsUsecase
}

func NewListProductsHandler(usecase ListProductsUsecase) *listProductsHandler {
	return &listProductsHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *listProductsHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Get(listProductsURL, handler.ServeHTTP)
}

func (h *listProductsHandler) Middlewares(md ...func(http.Handler) http.Handler) *listProductsHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *listProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	search := strings.TrimSpace(r.URL.Query().Get("search"))
	slog.Debug("query", "search", search)

	options, err := h.usecase.ListProducts(r.Context(), search)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, options)
}
