package block

import (
	"context"
	"testing"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/errors"
	"github.com/stretchr/testify/require"
)

const bannerCSS = `<link rel="stylesheet" href="/assets/product-banner.css">`

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	r := NewRegistry()
	r.MustRegister(Type{
		Name: BannerName,
		Render: func(_ context.Context, attributes map[string]any) string {
			title, _ := attributes["title"].(string)
			return "<banner>" + title + "</banner>"
		},
		Stylesheet: bannerCSS,
	})
	r.MustRegister(Type{
		Name: "core/paragraph",
		Render: func(_ context.Context, attributes map[string]any) string {
			return "<p></p>"
		},
	})

	return r
}

func TestRegistry_Register(t *testing.T) {
	r := testRegistry(t)

	err := r.Register(Type{Name: BannerName, Render: func(context.Context, map[string]any) string { return "" }})
	require.Equal(t, errors.ErrAlreadyExists, errors.Code(err))

	err = r.Register(Type{Name: " "})
	require.Equal(t, errors.ErrBadRequest, errors.Code(err))

	err = r.Register(Type{Name: "core/image"})
	require.Equal(t, errors.ErrBadRequest, errors.Code(err))

	require.Panics(t, func() {
		r.MustRegister(Type{Name: "core/paragraph", Render: func(context.Context, map[string]any) string { return "" }})
	})

	_, ok := r.Lookup(BannerName)
	require.True(t, ok)
	_, ok = r.Lookup("core/image")
	require.False(t, ok)
}

func TestRegistry_RenderBlock(t *testing.T) {
	r := testRegistry(t)

	got, err := r.RenderBlock(context.Background(), BannerName, nil)
	require.NoError(t, err)
	require.Equal(t, "<banner></banner>", got)

	_, err = r.RenderBlock(context.Background(), "core/unknown", nil)
	require.Equal(t, errors.ErrUnknownBlock, errors.Code(err))
}

func TestRegistry_RenderPage(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		name   string
		blocks []entity.BlockDTO
		want   entity.RenderedPage
	}{
		{
			name:   "no banner, no stylesheet",
			blocks: []entity.BlockDTO{{Name: "core/paragraph"}},
			want:   entity.RenderedPage{HTML: []string{"<p></p>"}},
		},
		{
			name: "stylesheet once for many banners",
			blocks: []entity.BlockDTO{
				{Name: BannerName, Attributes: map[string]any{"title": "A"}},
				{Name: "core/paragraph"},
				{Name: BannerName, Attributes: map[string]any{"title": "B"}},
			},
			want: entity.RenderedPage{
				HTML:       []string{"<banner>A</banner>", "<p></p>", "<banner>B</banner>"},
				Stylesheet: bannerCSS,
			},
		},
		{
			name: "unknown blocks are skipped",
			blocks: []entity.BlockDTO{
				{Name: "core/unknown"},
				{Name: BannerName},
			},
			want: entity.RenderedPage{
				HTML:       []string{"<banner></banner>"},
				Stylesheet: bannerCSS,
			},
		},
		{
			name: "empty page",
			want: entity.RenderedPage{HTML: []string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, r.RenderPage(context.Background(), tt.blocks))
		})
	}
}
