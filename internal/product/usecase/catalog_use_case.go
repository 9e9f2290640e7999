package usecase

import (
	"context"

	"itemcompare/internal/domain"
	"itemcompare/internal/dto"
)

type Service interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	CompareFromCSV(ctx context.Context, csv string) ([]domain.Product, error)
	CountProducts(ctx context.Context) (int, error)
}

type CatalogUseCase struct {
	service Service
}

func NewCatalogUseCase(service Service) *CatalogUseCase {
	return &CatalogUseCase{service: service}
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	products, err := uc.service.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewProductDTOs(products), nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*dto.ProductDTO, error) {
	p, err := uc.service.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductDTO(*p)
	return &out, nil
}

func (uc *CatalogUseCase) CompareProducts(ctx context.Context, csv string) ([]dto.ProductDTO, error) {
	products, err := uc.service.CompareFromCSV(ctx, csv)
	if err != nil {
		return nil, err
	}
	return dto.NewProductDTOs(products), nil
}

func (uc *CatalogUseCase) CountProducts(ctx context.Context) (int, error) {
	return uc.service.CountProducts(ctx)
}
