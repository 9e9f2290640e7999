package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"itemcompare/internal/domain"
	apperrors "itemcompare/internal/errors"
)

// MemoryRepository is the process-wide catalog. The id counter and the map
// share one lock so assignment and insert happen as a single step.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		products: make(map[int64]domain.Product),
		nextID:   1,
	}
}

func (r *MemoryRepository) Save(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("saving product: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !p.HasID() {
		p.ID = r.nextID
		r.nextID++
	} else if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}

	r.products[p.ID] = p
	return p, nil
}

// FindAll returns products ordered by id.
func (r *MemoryRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	r.mu.RLock()
	products := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	r.mu.RUnlock()

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("finding product: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, apperrors.NewNotFoundError(fmt.Sprintf("product with ID %d not found", id))
	}
	return p, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}
