package v1

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	renderBannerURL = "/render"

	maxBodyBytes = 1 << 20
)

type RenderBannerUsecase interface {
	RenderBanner(ctx context.Context, raw map[string]any) string
	RenderBannerText(ctx context.Context, raw map[string]any) string
}

type renderBannerHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     RenderBannerUsecase
}

func NewRenderBannerHandler(usecase RenderBannerUsecase) *renderBannerHandler {
	return &renderBannerHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *renderBannerHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Post(renderBannerURL, handler.ServeHTTP)
}

func (h *renderBannerHandler) Middlewares(md ...func(http.Handler) http.Handler) *renderBannerHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

// ServeHTTP always answers with markup. A body that is not a JSON object is
// treated as an empty attribute bag.
func (h *renderBannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	raw, err := decodeAttributes(r.Body)
	if err != nil {
		slog.Warn("error decoding attributes, rendering defaults", "error", err)
		raw = map[string]any{}
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(h.usecase.RenderBannerText(r.Context(), raw)))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.usecase.RenderBanner(r.Context(), raw)))
}

func decodeAttributes(body io.Reader) (map[string]any, error) {
	decoder := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		if err == io.EOF {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}
