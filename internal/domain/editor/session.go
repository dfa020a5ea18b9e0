// Package editor implements the authoring surface of the banner block: an
// editable view over the attribute bag plus a live preview computed with the
// same resolver the server projection uses.
package editor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/domain/resolver"
	"github.com/The-Gleb/product_banner/internal/errors"
	"github.com/The-Gleb/product_banner/internal/metrics"
)

const DefaultPageSize = 100

type Mode string

const (
	ModeSelect Mode = "select"
	ModeSearch Mode = "search"
)

type ProductSource interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductSnapshot, error)
	GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error)
	GetMedia(ctx context.Context, id int64) (entity.Media, error)
}

type Localizer interface {
	T(key string) string
}

// SetAttributesFunc receives every attribute replacement. It is called with
// the session lock held and must not call back into the session.
type SetAttributesFunc func(patch entity.AttributePatch, attrs entity.BannerAttributes)

type Deps struct {
	Source    ProductSource
	Resolver  *resolver.Resolver
	Localizer Localizer
	PageSize  int
}

// Session is one mounted editor. State changes are serialized; fetch results
// arrive on their own goroutines and are applied only when they answer the
// latest request of their kind.
type Session struct {
	mu sync.Mutex

	// inflight counts running fetches. settled is closed whenever it is zero.
	inflight int
	settled  chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	source    ProductSource
	resolver  *resolver.Resolver
	localizer Localizer
	pageSize  int

	attrs         entity.BannerAttributes
	setAttributes SetAttributesFunc

	mode     Mode
	query    string
	products []entity.ProductSnapshot
	selected *entity.ProductSnapshot

	list    fetchSlot
	product fetchSlot
}

// Mount starts a session over attrs and issues the initial fetches.
func Mount(ctx context.Context, attrs entity.BannerAttributes, setAttributes SetAttributesFunc, deps Deps) *Session {
	ctx, cancel := context.WithCancel(ctx)

	pageSize := deps.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	s := &Session{
		ctx:           ctx,
		cancel:        cancel,
		source:        deps.Source,
		resolver:      deps.Resolver,
		localizer:     deps.Localizer,
		pageSize:      pageSize,
		attrs:         attrs,
		setAttributes: setAttributes,
		mode:          ModeSelect,
		list:          fetchSlot{kind: fetchList},
		product:       fetchSlot{kind: fetchProduct},
		settled:       make(chan struct{}),
	}
	close(s.settled)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.startListFetch()
	if attrs.ProductID > 0 {
		s.startProductFetch(attrs.ProductID)
	}

	return s
}

func (s *Session) Attributes() entity.BannerAttributes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attrs
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Session) Products() []entity.ProductSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.ProductSnapshot(nil), s.products...)
}

// Selected returns the last fetched snapshot of the bound product, which may
// be stale while a newer fetch is in flight.
func (s *Session) Selected() *entity.ProductSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	product := *s.selected
	return &product
}

func (s *Session) Preview() entity.ResolvedBanner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Resolve(s.attrs, s.selected)
}

// Settled returns a channel that is closed once no fetch is running. Fetches
// issued before it closes are waited for as well.
func (s *Session) Settled() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled
}

// Wait blocks until every fetch issued so far has returned.
func (s *Session) Wait() {
	<-s.Settled()
}

func (s *Session) Close() {
	s.mu.Lock()
	s.list.invalidate()
	s.product.invalidate()
	s.mu.Unlock()

	s.cancel()
	s.Wait()
}

func (s *Session) SetTitle(title string) {
	s.update(entity.AttributePatch{Title: &title})
}

func (s *Session) SetText(text string) {
	s.update(entity.AttributePatch{Text: &text})
}

func (s *Session) SetButtonText(text string) {
	s.update(entity.AttributePatch{ButtonText: &text})
}

func (s *Session) SetButtonStyle(style entity.ButtonStyle) {
	if !style.Valid() {
		return
	}
	s.update(entity.AttributePatch{ButtonStyle: &style})
}

func (s *Session) SetBorderRadius(radius int) {
	radius = resolver.ClampRadius(radius)
	s.update(entity.AttributePatch{ButtonBorderRadius: &radius})
}

// SetUseProductImage toggles following the product image. Turning it on with
// a loaded product re-derives the image right away.
func (s *Session) SetUseProductImage(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(entity.AttributePatch{UseProductImage: &on})
	if on {
		s.refreshImage()
	}
}

// SelectImage sets an explicit image and stops following the product image.
func (s *Session) SelectImage(media entity.Media) {
	s.update(entity.AttributePatch{
		ImageID:         &media.ID,
		ImageURL:        &media.URL,
		UseProductImage: entity.Ptr(false),
	})
}

func (s *Session) RemoveImage() {
	s.update(entity.AttributePatch{
		ImageID:  entity.Ptr(int64(0)),
		ImageURL: entity.Ptr(""),
	})
}

// SelectProduct binds a product. Picking from the search results also resets
// the search and returns to the dropdown.
func (s *Session) SelectProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 0 {
		id = 0
	}

	if s.mode == ModeSearch {
		s.mode = ModeSelect
		if s.query != "" {
			s.query = ""
			s.startListFetch()
		}
	}

	s.bindProduct(id)
}

func (s *Session) ClearProduct() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bindProduct(0)
}

// SetMode switches between the dropdown and the search field. It never
// touches the attributes.
func (s *Session) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode != ModeSearch {
		mode = ModeSelect
	}
	s.mode = mode
}

// SetSearchQuery re-queries the product list, superseding any list fetch
// still in flight.
func (s *Session) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == s.query {
		return
	}
	s.query = query
	s.startListFetch()
}

func (s *Session) update(patch entity.AttributePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(patch)
}

func (s *Session) apply(patch entity.AttributePatch) {
	if patch.Empty() {
		return
	}

	s.attrs = s.attrs.Apply(patch)
	if s.setAttributes != nil {
		s.setAttributes(patch, s.attrs)
	}
}

func (s *Session) bindProduct(id int64) {
	if id == s.attrs.ProductID {
		return
	}

	s.apply(entity.AttributePatch{ProductID: &id})

	if id == 0 {
		s.product.invalidate()
		s.selected = nil
		return
	}
	s.startProductFetch(id)
}

// refreshImage copies the bound product's primary image into the explicit
// image attributes.
func (s *Session) refreshImage() {
	if s.selected == nil || s.attrs.ProductID <= 0 || s.selected.ID != s.attrs.ProductID {
		return
	}
	if s.selected.PrimaryImageID <= 0 || s.selected.PrimaryImageURL == "" {
		return
	}
	if s.attrs.ImageID == s.selected.PrimaryImageID && s.attrs.ImageURL == s.selected.PrimaryImageURL {
		return
	}

	s.apply(entity.AttributePatch{
		ImageID:  entity.Ptr(s.selected.PrimaryImageID),
		ImageURL: entity.Ptr(s.selected.PrimaryImageURL),
	})
}

func (s *Session) listLoading() bool {
	return s.list.pending()
}

// track and untrack are called with the lock held.
func (s *Session) track() {
	if s.inflight == 0 {
		s.settled = make(chan struct{})
	}
	s.inflight++
}

func (s *Session) untrack() {
	s.inflight--
	if s.inflight == 0 {
		close(s.settled)
	}
}

func (s *Session) startListFetch() {
	ctx, generation := s.list.begin(s.ctx)
	filter := entity.ProductFilter{
		PageSize: s.pageSize,
		Status:   entity.StatusPublish,
		Search:   s.query,
	}

	s.track()
	go func() {
		products, err := s.source.ListProducts(ctx, filter)

		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.untrack()

		if !s.list.current(generation) {
			slog.Debug("discarding stale product list", "search", filter.Search)
			metrics.RecordEditorFetch(string(fetchList), "discarded")
			return
		}
		s.list.finish(generation)

		if err != nil {
			slog.Error("error listing products", "error", err, "search", filter.Search)
			metrics.RecordEditorFetch(string(fetchList), "failed")
			s.products = nil
			return
		}

		metrics.RecordEditorFetch(string(fetchList), "applied")
		s.products = products
	}()
}

func (s *Session) startProductFetch(id int64) {
	ctx, generation := s.product.begin(s.ctx)

	s.track()
	go func() {
		product, err := s.loadProduct(ctx, id)

		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.untrack()

		if !s.product.current(generation) {
			slog.Debug("discarding stale product", "product_id", id)
			metrics.RecordEditorFetch(string(fetchProduct), "discarded")
			return
		}
		s.product.finish(generation)

		if err != nil {
			slog.Error("error getting product", "error", err, "product_id", id)
			metrics.RecordEditorFetch(string(fetchProduct), "failed")
			s.selected = nil
			return
		}

		metrics.RecordEditorFetch(string(fetchProduct), "applied")
		s.selected = product
		if s.attrs.UseProductImage {
			s.refreshImage()
		}
	}()
}

func (s *Session) loadProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error) {
	found, err := s.source.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewDomainError(errors.ErrNoDataFound, "product %d", id)
	}
	product := *found

	if product.PrimaryImageURL == "" && product.PrimaryImageID > 0 {
		media, err := s.source.GetMedia(ctx, product.PrimaryImageID)
		if err != nil {
			slog.Warn("error getting product image", "error", err, "media_id", product.PrimaryImageID)
		} else {
			product.PrimaryImageURL = media.URL
		}
	}

	return &product, nil
}
