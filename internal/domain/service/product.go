package service

import (
	"context"
	"log/slog"

	"github.com/The-Gleb/product_banner/internal/domain/editor"
	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/domain/render"
	"github.com/The-Gleb/product_banner/internal/domain/usecase"
	"github.com/The-Gleb/product_banner/internal/errors"
	"github.com/The-Gleb/product_banner/internal/metrics"
)

var _ editor.ProductSource = new(productService)
var _ usecase.ProductService = new(productService)

type ProductStorage interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductSnapshot, error)
	GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error)
	GetMedia(ctx context.Context, id int64) (entity.Media, error)
}

type ProductCache interface {
	Set(ctx context.Context, product entity.ProductSnapshot) error
	Get(ctx context.Context, id int64) (entity.ProductSnapshot, error)
}

type productService struct {
	storage  ProductStorage
	cache    ProductCache
	pageSize int
}

func NewProductService(storage ProductStorage, cache ProductCache, pageSize int) *productService {
	if pageSize <= 0 {
		pageSize = editor.DefaultPageSize
	}
	return &productService{
		storage:  storage,
		cache:    cache,
		pageSize: pageSize,
	}
}

func (service *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductSnapshot, error) {
	if filter.PageSize <= 0 || filter.PageSize > service.pageSize {
		filter.PageSize = service.pageSize
	}
	if filter.Status == "" {
		filter.Status = entity.StatusPublish
	}
	return service.storage.ListProducts(ctx, filter)
}

// GetProduct reads through the snapshot cache. A cache failure is logged and
// falls back to the store.
func (service *productService) GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error) {
	if id <= 0 {
		return nil, errors.NewDomainError(errors.ErrNoDataFound, "product %d", id)
	}

	if service.cache != nil {
		product, err := service.cache.Get(ctx, id)
		if err == nil {
			slog.Debug("product found in cache", "product_id", id)
			metrics.RecordProductLookup("cache_hit")
			return &product, nil
		}
		if !errors.Is(err, errors.ErrNoDataFound) {
			slog.Warn("error reading product cache", "error", err, "product_id", id)
		}
	}

	product, err := service.storage.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, errors.ErrNoDataFound) {
			metrics.RecordProductLookup("not_found")
		} else {
			metrics.RecordProductLookup("error")
		}
		return nil, err
	}
	metrics.RecordProductLookup("store")

	if service.cache != nil {
		if err := service.cache.Set(ctx, *product); err != nil {
			slog.Warn("error caching product", "error", err, "product_id", id)
		}
	}

	return product, nil
}

func (service *productService) GetMedia(ctx context.Context, id int64) (entity.Media, error) {
	if id <= 0 {
		return entity.Media{}, errors.NewDomainError(errors.ErrNoDataFound, "media %d", id)
	}
	return service.storage.GetMedia(ctx, id)
}

// ProductOptions lists published products as plain-text labels for host
// pickers.
func (service *productService) ProductOptions(ctx context.Context, search string) ([]entity.ProductOption, error) {
	products, err := service.ListProducts(ctx, entity.ProductFilter{
		PageSize: service.pageSize,
		Status:   entity.StatusPublish,
		Search:   search,
	})
	if err != nil {
		return nil, err
	}

	options := make([]entity.ProductOption, 0, len(products))
	for _, p := range products {
		options = append(options, entity.ProductOption{ID: p.ID, Label: render.PlainText(p.Name)})
	}
	return options, nil
}
