package service

import (
	"context"
	"fmt"

	"itemcompare/internal/domain"
	apperrors "itemcompare/internal/errors"

	"go.uber.org/zap"
)

type Repository interface {
	Save(ctx context.Context, p domain.Product) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	Count(ctx context.Context) (int, error)
}

type IDParser interface {
	ParseToInt64List(csv string) ([]int64, error)
}

type ProductService struct {
	repo   Repository
	parser IDParser
	logger *zap.Logger
}

func NewService(repo Repository, parser IDParser, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		parser: parser,
		logger: logger,
	}
}

func (s *ProductService) Save(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p == nil {
		return nil, apperrors.NewValidationError("product must not be nil")
	}

	saved, err := s.repo.Save(ctx, *p)
	if err != nil {
		return nil, passThroughOrInternal(err, "internal error saving product")
	}

	s.logger.Debug("product saved", zap.Int64("productId", saved.ID))
	return &saved, nil
}

// SaveAll saves in order and stops at the first failure.
func (s *ProductService) SaveAll(ctx context.Context, products []*domain.Product) error {
	if products == nil {
		return apperrors.NewValidationError("products list must not be nil")
	}

	for i, p := range products {
		if _, err := s.Save(ctx, p); err != nil {
			s.logger.Warn("save all aborted", zap.Int("index", i), zap.Error(err))
			return err
		}
	}
	return nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, passThroughOrInternal(err, "error retrieving products")
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, passThroughOrInternal(err, fmt.Sprintf("error retrieving product with ID %d", id))
	}
	return &p, nil
}

// Compare returns one product per id in input order. A nil slice is
// rejected; an empty one yields an empty result. Any missing id fails the
// whole comparison.
func (s *ProductService) Compare(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if ids == nil {
		return nil, apperrors.NewValidationError("productIds must not be nil")
	}

	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, passThroughOrInternal(err, "internal error when comparing products")
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *ProductService) CompareFromCSV(ctx context.Context, csv string) ([]domain.Product, error) {
	ids, err := s.parser.ParseToInt64List(csv)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			return nil, apperrors.NewValidationError("invalid productIds csv: "+ve.Message, ve.Details...)
		}
		return nil, apperrors.NewInternalError("internal error parsing productIds", err)
	}

	s.logger.Debug("comparing products", zap.Int64s("productIds", ids))
	return s.Compare(ctx, ids)
}

func (s *ProductService) CountProducts(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, passThroughOrInternal(err, "error counting products")
	}
	return n, nil
}

// passThroughOrInternal keeps validation and not-found errors intact and
// wraps everything else.
func passThroughOrInternal(err error, message string) error {
	if _, ok := apperrors.IsValidationError(err); ok {
		return err
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		return err
	}
	if _, ok := apperrors.IsInternalError(err); ok {
		return err
	}
	return apperrors.NewInternalError(message, err)
}
