package usecase

import (
	"context"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
)

type ProductService interface {
	ProductOptions(ctx context.Context, search string) ([]entity.ProductOption, error)
}

type listProductsUsecase struct {
	productService ProductService
}

func NewListProductsUsecase(productService ProductService) *listProductsUsecase {
	return &listProductsUsecase{productService}
}

func (u *listProductsUsecase) ListProducts(ctx context.Context, search string) ([]entity.ProductOption, error) {
	return u.productService.ProductOptions(ctx, search)
}
