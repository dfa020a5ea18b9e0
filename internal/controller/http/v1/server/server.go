package v1

import (
	"context"
	"net/http"
	"time"

	handlers "github.com/The-Gleb/product_banner/internal/controller/http/v1/handler"
	middleware "github.com/The-Gleb/product_banner/internal/controller/http/v1/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsURL = "/metrics"

type httpServer struct {
	server *http.Server
}

type Usecases struct {
	RenderBanner         handlers.RenderBannerUsecase
	RenderPage           handlers.RenderPageUsecase
	ListProducts         handlers.ListProductsUsecase
	MountEditor          handlers.MountEditorUsecase
	GetEditorState       handlers.GetEditorStateUsecase
	DispatchEditorAction handlers.DispatchEditorActionUsecase
	CloseEditor          handlers.CloseEditorUsecase
}

func NewServer(address string, usecases Usecases) (*httpServer, error) {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           NewRouter(usecases),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func NewRouter(usecases Usecases) *chi.Mux {
	renderBannerHandler := handlers.NewRenderBannerHandler(usecases.RenderBanner)
	renderPageHandler := handlers.NewRenderPageHandler(usecases.RenderPage)
	stylesheetHandler := handlers.NewStylesheetHandler()
	listProductsHandler := handlers.NewListProductsHandler(usecases.ListProducts)
	mountEditorHandler := handlers.NewMountEditorHandler(usecases.MountEditor)
	getEditorStateHandler := handlers.NewGetEditorStateHandler(usecases.GetEditorState)
	dispatchEditorActionHandler := handlers.NewDispatchEditorActionHandler(usecases.DispatchEditorAction)
	closeEditorHandler := handlers.NewCloseEditorHandler(usecases.CloseEditor)

	r := chi.NewMux()
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Metrics)

	renderBannerHandler.AddToRouter(r)
	renderPageHandler.AddToRouter(r)
	stylesheetHandler.AddToRouter(r)
	listProductsHandler.AddToRouter(r)
	mountEditorHandler.AddToRouter(r)
	getEditorStateHandler.AddToRouter(r)
	dispatchEditorActionHandler.AddToRouter(r)
	closeEditorHandler.AddToRouter(r)

	r.Handle(metricsURL, promhttp.Handler())

	return r
}

func (s *httpServer) Start() error {
	return s.server.ListenAndServe()
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
