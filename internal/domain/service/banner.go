package service

import (
	"context"
	"log/slog"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/domain/render"
	"github.com/The-Gleb/product_banner/internal/domain/resolver"
	"github.com/The-Gleb/product_banner/internal/domain/usecase"
	"github.com/The-Gleb/product_banner/internal/metrics"
)

var _ usecase.BannerService = new(bannerService)

type ProductLookup interface {
	GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error)
}

type bannerService struct {
	products ProductLookup
	resolver *resolver.Resolver
	renderer *render.Renderer
}

func NewBannerService(products ProductLookup, resolver *resolver.Resolver, renderer *render.Renderer) *bannerService {
	return &bannerService{
		products: products,
		resolver: resolver,
		renderer: renderer,
	}
}

// Resolve parses a raw attribute bag and resolves it against the bound
// product. It performs at most one product lookup and never fails: a lookup
// error leaves the banner unbound.
func (service *bannerService) Resolve(ctx context.Context, raw map[string]any) entity.ResolvedBanner {
	attrs := entity.ParseAttributes(raw)

	var product *entity.ProductSnapshot
	if attrs.ProductID > 0 {
		found, err := service.products.GetProduct(ctx, attrs.ProductID)
		if err != nil {
			slog.Error("error getting product, rendering unbound",
				"error", err,
				"product_id", attrs.ProductID,
			)
		} else {
			product = found
		}
	}

	resolved := service.resolver.Resolve(attrs, product)

	switch {
	case resolved.IsPlaceholder:
		metrics.RecordRender("placeholder")
	case resolved.HasProduct:
		metrics.RecordRender("product")
	default:
		metrics.RecordRender("custom")
	}

	return resolved
}

func (service *bannerService) RenderBanner(ctx context.Context, raw map[string]any) string {
	return service.renderer.HTML(service.Resolve(ctx, raw))
}

func (service *bannerService) RenderBannerText(ctx context.Context, raw map[string]any) string {
	return service.renderer.Text(service.Resolve(ctx, raw))
}
