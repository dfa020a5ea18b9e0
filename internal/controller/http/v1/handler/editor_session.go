package v1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/The-Gleb/product_banner/internal/domain/editor"
	"github.com/go-chi/chi/v5"
)

const (
	editorSessionsURL      = "/editor/sessions"
	editorSessionURL       = "/editor/sessions/{id}"
	editorSessionActionURL = "/editor/sessions/{id}/actions"
)

type MountEditorUsecase interface {
	MountEditor(ctx context.Context, raw map[string]any) (string, editor.State)
}

type GetEditorStateUsecase interface {
	GetEditorState(ctx context.Context, id string, wait bool) (editor.State, error)
}

type DispatchEditorActionUsecase interface {
	DispatchEditorAction(ctx context.Context, id string, action editor.Action, wait bool) (editor.State, error)
}

type CloseEditorUsecase interface {
	CloseEditor(ctx context.Context, id string) error
}

type mountEditorRequest struct {
	Attributes map[string]any `json:"attributes"`
}

type editorSessionResponse struct {
	ID    string       `json:"id"`
	State editor.State `json:"state"`
}

type mountEditorHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     MountEditorUsecase
}

func NewMountEditorHandler(usecase MountEditorUsecase) *mountEditorHandler {
	return &mountEditorHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *mountEditorHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Post(editorSessionsURL, handler.ServeHTTP)
}

func (h *mountEditorHandler) Middlewares(md ...func(http.Handler) http.Handler) *mountEditorHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *mountEditorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.UseNumber()

	var req mountEditorRequest
	err := decoder.Decode(&req)
	if err != nil && err != io.EOF {
		http.Error(w, "error decoding json request body", http.StatusBadRequest)
		return
	}
	if req.Attributes == nil {
		req.Attributes = map[string]any{}
	}

	id, state := h.usecase.MountEditor(r.Context(), req.Attributes)

	w.Header().Set("Location", editorSessionsURL+"/"+id)
	writeJSON(w, http.StatusCreated, editorSessionResponse{ID: id, State: state})
}

type getEditorStateHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     GetEditorStateUsecase
}

func NewGetEditorStateHandler(usecase GetEditorStateUsecase) *getEditorStateHandler {
	return &getEditorStateHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *getEditorStateHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Get(editorSessionURL, handler.ServeHTTP)
}

func (h *getEditorStateHandler) Middlewares(md ...func(http.Handler) http.Handler) *getEditorStateHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *getEditorStateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	id := chi.URLParam(r, "id")
	wait, err := parseWait(r)
	if err != nil {
		http.Error(w, "invalid wait parameter", http.StatusBadRequest)
		return
	}

	state, err := h.usecase.GetEditorState(r.Context(), id, wait)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, editorSessionResponse{ID: id, State: state})
}

type dispatchEditorActionHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     DispatchEditorActionUsecase
}

func NewDispatchEditorActionHandler(usecase DispatchEditorActionUsecase) *dispatchEditorActionHandler {
	return &dispatchEditorActionHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *dispatchEditorActionHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Post(editorSessionActionURL, handler.ServeHTTP)
}

func (h *dispatchEditorActionHandler) Middlewares(md ...func(http.Handler) http.Handler) *dispatchEditorActionHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *dispatchEditorActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	id := chi.URLParam(r, "id")
	wait, err := parseWait(r)
	if err != nil {
		http.Error(w, "invalid wait parameter", http.StatusBadRequest)
		return
	}

	var action editor.Action
	err = json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&action)
	if err != nil {
		http.Error(w, "error decoding json request body", http.StatusBadRequest)
		return
	}

	state, err := h.usecase.DispatchEditorAction(r.Context(), id, action, wait)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, editorSessionResponse{ID: id, State: state})
}

type closeEditorHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     CloseEditorUsecase
}

func NewCloseEditorHandler(usecase CloseEditorUsecase) *closeEditorHandler {
	return &closeEditorHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *closeEditorHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Delete(editorSessionURL, handler.ServeHTTP)
}

func (h *closeEditorHandler) Middlewares(md ...func(http.Handler) http.Handler) *closeEditorHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *closeEditorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	err := h.usecase.CloseEditor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseWait(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("wait")
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
