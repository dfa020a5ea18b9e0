package service

import (
	"context"
	stdErrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/The-Gleb/product_banner/internal/domain/editor"
	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/domain/render"
	"github.com/The-Gleb/product_banner/internal/domain/resolver"
	"github.com/The-Gleb/product_banner/internal/errors"
	"github.com/The-Gleb/product_banner/internal/localization"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	mu           sync.Mutex
	products     map[int64]entity.ProductSnapshot
	media        map[int64]entity.Media
	productCalls int
	lastFilter   entity.ProductFilter
	fail         bool
}

func newMemStorage() *memStorage {
	return &memStorage{
		products: map[int64]entity.ProductSnapshot{
			42: {
				ID:                 42,
				Name:               "Trail Runner",
				PriceDisplayMarkup: `<span class="amount">$89.00</span>`,
				PermalinkURL:       "https://shop.example/p/trail-runner",
				PrimaryImageID:     7,
				PrimaryImageURL:    "https://x/img7.jpg",
			},
			43: {
				ID:                 43,
				Name:               "Tom & Jerry Tee",
				PriceDisplayMarkup: `<span class="amount">$15.00</span>`,
				PermalinkURL:       "https://shop.example/p/tee",
			},
		},
		media: map[int64]entity.Media{7: {ID: 7, URL: "https://x/img7.jpg"}},
	}
}

func (s *memStorage) ListProducts(_ context.Context, filter entity.ProductFilter) ([]entity.ProductSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastFilter = filter
	if s.fail {
		return nil, errors.NewDomainError(errors.ErrUnavailable, "down")
	}
	return []entity.ProductSnapshot{s.products[42], s.products[43]}, nil
}

func (s *memStorage) GetProduct(_ context.Context, id int64) (*entity.ProductSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productCalls++
	if s.fail {
		return nil, errors.NewDomainError(errors.ErrUnavailable, "down")
	}
	p, ok := s.products[id]
	if !ok {
		return nil, errors.NewDomainError(errors.ErrNoDataFound, "product %d", id)
	}
	return &p, nil
}

func (s *memStorage) GetMedia(_ context.Context, id int64) (entity.Media, error) {
	m, ok := s.media[id]
	if !ok {
		return entity.Media{}, errors.NewDomainError(errors.ErrNoDataFound, "media %d", id)
	}
	return m, nil
}

func (s *memStorage) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productCalls
}

type memCache struct {
	mu       sync.Mutex
	products map[int64]entity.ProductSnapshot
	broken   bool
}

func (c *memCache) Set(_ context.Context, product entity.ProductSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken {
		return errors.NewDomainError(errors.ErrCache, "broken")
	}
	if c.products == nil {
		c.products = make(map[int64]entity.ProductSnapshot)
	}
	c.products[product.ID] = product
	return nil
}

func (c *memCache) Get(_ context.Context, id int64) (entity.ProductSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken {
		return entity.ProductSnapshot{}, errors.WrapIntoDomainError(stdErrors.New("conn refused"), errors.ErrCache, "get")
	}
	p, ok := c.products[id]
	if !ok {
		return entity.ProductSnapshot{}, errors.NewDomainError(errors.ErrNoDataFound, "miss")
	}
	return p, nil
}

func newLocalizer(t *testing.T) *localization.Localizer {
	t.Helper()
	l, err := localization.New("en")
	require.NoError(t, err)
	return l
}

func Test_productService_GetProduct(t *testing.T) {
	storage := newMemStorage()
	cache := &memCache{}
	s := NewProductService(storage, cache, 100)

	got, err := s.GetProduct(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "Trail Runner", got.Name)
	require.Equal(t, 1, storage.calls())

	got, err = s.GetProduct(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "Trail Runner", got.Name)
	require.Equal(t, 1, storage.calls(), "second lookup is served from cache")

	_, err = s.GetProduct(context.Background(), 0)
	require.Equal(t, errors.ErrNoDataFound, errors.Code(err))
	require.Equal(t, 1, storage.calls())

	_, err = s.GetProduct(context.Background(), 1000)
	require.Equal(t, errors.ErrNoDataFound, errors.Code(err))
}

func Test_productService_BrokenCacheFallsBack(t *testing.T) {
	storage := newMemStorage()
	s := NewProductService(storage, &memCache{broken: true}, 100)

	got, err := s.GetProduct(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), got.ID)
}

func Test_productService_ListProducts(t *testing.T) {
	storage := newMemStorage()
	s := NewProductService(storage, nil, 20)

	_, err := s.ListProducts(context.Background(), entity.ProductFilter{PageSize: 500, Search: "tee"})
	require.NoError(t, err)
	require.Equal(t, entity.ProductFilter{PageSize: 20, Status: entity.StatusPublish, Search: "tee"}, storage.lastFilter)
}

func Test_productService_ProductOptions(t *testing.T) {
	s := NewProductService(newMemStorage(), nil, 0)

	got, err := s.ProductOptions(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []entity.ProductOption{
		{ID: 42, Label: "Trail Runner"},
		{ID: 43, Label: "Tom & Jerry Tee"},
	}, got)
}

func Test_bannerService_RenderBanner(t *testing.T) {
	l := newLocalizer(t)
	storage := newMemStorage()
	s := NewBannerService(
		NewProductService(storage, &memCache{}, 100),
		resolver.New(l),
		render.NewRenderer(l),
	)

	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{
			name: "empty bag is the placeholder",
			raw:  map[string]any{},
			want: `<div class="product-banner-block product-banner-placeholder"><p>Please configure your product banner in the editor.</p></div>`,
		},
		{
			name: "bound product",
			raw:  map[string]any{"productId": float64(42)},
			want: `<div class="product-banner-block" style="background-image: url(https://x/img7.jpg);">` +
				`<div class="product-banner-overlay"></div><div class="product-banner-content">` +
				`<h2 class="product-banner-title">Trail Runner</h2>` +
				`<div class="product-banner-price"><span class="amount">$89.00</span></div>` +
				`<a href="https://shop.example/p/trail-runner" class="product-banner-button button-style-gradient-purple" style="border-radius: 50px;">Shop Now</a>` +
				`</div></div>`,
		},
		{
			name: "missing product degrades to unbound",
			raw:  map[string]any{"productId": float64(1000), "title": "Sale"},
			want: `<div class="product-banner-block">` +
				`<div class="product-banner-overlay"></div><div class="product-banner-content">` +
				`<h2 class="product-banner-title">Sale</h2>` +
				`</div></div>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, s.RenderBanner(context.Background(), tt.raw))
		})
	}
}

func Test_bannerService_StoreDown(t *testing.T) {
	l := newLocalizer(t)
	storage := newMemStorage()
	storage.fail = true
	s := NewBannerService(NewProductService(storage, nil, 100), resolver.New(l), render.NewRenderer(l))

	got := s.Resolve(context.Background(), map[string]any{"productId": float64(42)})
	require.True(t, got.IsPlaceholder)
	require.Equal(t, 1, storage.calls(), "exactly one lookup")
}

func Test_bannerService_RenderBannerText(t *testing.T) {
	l := newLocalizer(t)
	s := NewBannerService(NewProductService(newMemStorage(), nil, 100), resolver.New(l), render.NewRenderer(l))

	got := s.RenderBannerText(context.Background(), map[string]any{"productId": float64(43)})
	require.Contains(t, got, "Tom & Jerry Tee")
	require.Contains(t, got, "$15.00")
}

func Test_editorService(t *testing.T) {
	l := newLocalizer(t)
	products := NewProductService(newMemStorage(), nil, 100)
	s := NewEditorService(context.Background(), editor.Deps{
		Source:    products,
		Resolver:  resolver.New(l),
		Localizer: l,
	}, 0)
	t.Cleanup(s.CloseAll)

	ctx := context.Background()

	id, state := s.Mount(ctx, map[string]any{"title": "Sale"})
	require.NotEmpty(t, id)
	require.Equal(t, "Sale", state.Attributes.Title)
	require.Equal(t, "Fragment", state.View.Type)

	state, err := s.Dispatch(ctx, id, editor.Action{Type: editor.ActionSelectProduct, ID: 42}, true)
	require.NoError(t, err)
	require.Equal(t, int64(42), state.Attributes.ProductID)
	require.Equal(t, "https://x/img7.jpg", state.Attributes.ImageURL)
	require.True(t, state.Preview.HasProduct)

	state, err = s.State(ctx, id, true)
	require.NoError(t, err)
	require.Equal(t, `<span class="amount">$89.00</span>`, state.Preview.DisplayPrice)

	_, err = s.Dispatch(ctx, id, editor.Action{Type: "explode"}, false)
	require.Equal(t, errors.ErrBadRequest, errors.Code(err))

	require.NoError(t, s.Close(ctx, id))

	_, err = s.State(ctx, id, false)
	require.Equal(t, errors.ErrSessionNotFound, errors.Code(err))
	_, err = s.Dispatch(ctx, id, editor.Action{Type: editor.ActionClearProduct}, false)
	require.Equal(t, errors.ErrSessionNotFound, errors.Code(err))
	require.Equal(t, errors.ErrSessionNotFound, errors.Code(s.Close(ctx, id)))
}

type blockingSource struct {
	editor.ProductSource
	release chan struct{}
}

func (b blockingSource) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductSnapshot, error) {
	<-b.release
	return b.ProductSource.ListProducts(ctx, filter)
}

func Test_editorService_WaitBoundedByRequest(t *testing.T) {
	l := newLocalizer(t)
	source := blockingSource{
		ProductSource: NewProductService(newMemStorage(), nil, 100),
		release:       make(chan struct{}),
	}
	s := NewEditorService(context.Background(), editor.Deps{
		Source:    source,
		Resolver:  resolver.New(l),
		Localizer: l,
	}, 0)
	t.Cleanup(s.CloseAll)

	id, _ := s.Mount(context.Background(), map[string]any{"title": "Sale"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	started := time.Now()
	state, err := s.State(ctx, id, true)
	require.NoError(t, err)
	require.Equal(t, "Sale", state.Attributes.Title)
	require.Less(t, time.Since(started), time.Second)

	close(source.release)

	_, err = s.State(context.Background(), id, true)
	require.NoError(t, err)
}

func Test_editorService_ExpiresIdleSessions(t *testing.T) {
	l := newLocalizer(t)
	s := NewEditorService(context.Background(), editor.Deps{
		Source:    NewProductService(newMemStorage(), nil, 100),
		Resolver:  resolver.New(l),
		Localizer: l,
	}, 0)
	t.Cleanup(s.CloseAll)

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	s.idleTTL = time.Minute

	ctx := context.Background()
	idle, _ := s.Mount(ctx, map[string]any{"title": "Idle"})
	active, _ := s.Mount(ctx, map[string]any{"title": "Active"})

	clock = clock.Add(45 * time.Second)
	_, err := s.State(ctx, active, false)
	require.NoError(t, err)

	clock = clock.Add(30 * time.Second)
	require.Equal(t, 1, s.sweep(clock))

	_, err = s.State(ctx, idle, false)
	require.Equal(t, errors.ErrSessionNotFound, errors.Code(err))
	_, err = s.State(ctx, active, false)
	require.NoError(t, err)

	require.Equal(t, 0, s.sweep(clock.Add(59*time.Second)))
	require.Equal(t, 1, s.sweep(clock.Add(2*time.Minute)))
	require.Equal(t, errors.ErrSessionNotFound, errors.Code(s.Close(ctx, active)))
}
