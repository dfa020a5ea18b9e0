// Package block keeps the block types a host page may contain and renders
// pages made of them.
package block

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/errors"
)

const BannerName = "create-block/product-banner"

type RenderFunc func(ctx context.Context, attributes map[string]any) string

type Type struct {
	Name   string
	Render RenderFunc
	// Stylesheet is emitted once per page that contains the block.
	Stylesheet string
}

type Registry struct {
	mu    sync.RWMutex
	types map[string]Type
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Type)}
}

func (r *Registry) Register(t Type) error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.NewDomainError(errors.ErrBadRequest, "block type needs a name")
	}
	if t.Render == nil {
		return errors.NewDomainError(errors.ErrBadRequest, "block type %s has no render callback", t.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[t.Name]; ok {
		return errors.NewDomainError(errors.ErrAlreadyExists, "block type %s", t.Name)
	}
	r.types[t.Name] = t

	slog.Info("block type registered", "name", t.Name)

	return nil
}

func (r *Registry) MustRegister(t Type) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	return t, ok
}

func (r *Registry) RenderBlock(ctx context.Context, name string, attributes map[string]any) (string, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return "", errors.NewDomainError(errors.ErrUnknownBlock, "%s", name)
	}
	if attributes == nil {
		attributes = map[string]any{}
	}
	return t.Render(ctx, attributes), nil
}

// RenderPage renders blocks in order. Unknown blocks are skipped. Each
// stylesheet is included once, and only when a block that needs it is
// present.
func (r *Registry) RenderPage(ctx context.Context, blocks []entity.BlockDTO) entity.RenderedPage {
	page := entity.RenderedPage{HTML: make([]string, 0, len(blocks))}

	seen := make(map[string]bool)
	var stylesheets []string

	for _, b := range blocks {
		fragment, err := r.RenderBlock(ctx, b.Name, b.Attributes)
		if err != nil {
			slog.Warn("skipping block", "error", err, "name", b.Name)
			continue
		}
		page.HTML = append(page.HTML, fragment)

		t, _ := r.Lookup(b.Name)
		if t.Stylesheet != "" && !seen[t.Stylesheet] {
			seen[t.Stylesheet] = true
			stylesheets = append(stylesheets, t.Stylesheet)
		}
	}

	page.Stylesheet = strings.Join(stylesheets, "\n")

	return page
}
