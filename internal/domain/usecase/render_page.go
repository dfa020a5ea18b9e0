package usecase

import (
	"context"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
)

type PageRenderer interface {
	RenderPage(ctx context.Context, blocks []entity.BlockDTO) entity.RenderedPage
}

type renderPageUsecase struct {
	renderer PageRenderer
}

func NewRenderPageUsecase(renderer PageRenderer) *renderPageUsecase {
	return &renderPageUsecase{renderer}
}

func (u *renderPageUsecase) RenderPage(ctx context.Context, dto entity.RenderPageDTO) entity.RenderedPage {
	return u.renderer.RenderPage(ctx, dto.Blocks)
}
