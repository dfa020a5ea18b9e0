package usecase

import (
	"context"
)

type BannerService interface {
	RenderBanner(ctx context.Context, raw map[string]any) string
	RenderBannerText(ctx context.Context, raw map[string]any) string
}

type renderBannerUsecase struct {
	bannerService BannerService
}

func NewRenderBannerUsecase(bannerService BannerService) *renderBannerUsecase {
	return &renderBannerUsecase{bannerService}
}

func (u *renderBannerUsecase) RenderBanner(ctx context.Context, raw map[string]any) string {
	return u.bannerService.RenderBanner(ctx, raw)
}

func (u *renderBannerUsecase) RenderBannerText(ctx context.Context, raw map[string]any) string {
	return u.bannerService.RenderBannerText(ctx, raw)
}
