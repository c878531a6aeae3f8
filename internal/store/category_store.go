package store

import (
	"context"
	"fmt"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
)

const CategoryStoreName = "categories"

// CategoryStore holds the session's categories in display order.
type CategoryStore struct {
	api  domain.CategoryAPI
	coll *collection[domain.Category]
}

func NewCategoryStore(api domain.CategoryAPI, onRefresh RefreshFunc) *CategoryStore {
	return &CategoryStore{
		api:  api,
		coll: newCollection[domain.Category](CategoryStoreName, domain.Category.Clone, onRefresh),
	}
}

func (s *CategoryStore) Categories() []domain.Category {
	return s.coll.snapshot()
}

func (s *CategoryStore) Status() Status {
	return s.coll.status()
}

func (s *CategoryStore) Fetch(ctx context.Context) {
	s.coll.fetch(ctx, s.api.ListCategories, "Failed to load categories")
}

func (s *CategoryStore) Create(ctx context.Context, input *domain.CategoryCreate) error {
	return s.coll.write(ctx, "create", "Failed to create category", func(ctx context.Context) error {
		if input.Name == "" {
			return domain.ErrNameRequired
		}
		_, err := s.api.CreateCategory(ctx, input)
		return err
	}, s.Fetch)
}

func (s *CategoryStore) Update(ctx context.Context, id int32, input *domain.CategoryUpdate) error {
	return s.coll.write(ctx, "update", "Failed to update category", func(ctx context.Context) error {
		_, err := s.api.UpdateCategory(ctx, id, input)
		return err
	}, s.Fetch)
}

func (s *CategoryStore) Delete(ctx context.Context, id int32) error {
	return s.coll.write(ctx, "delete", "Failed to delete category", func(ctx context.Context) error {
		return s.api.DeleteCategory(ctx, id)
	}, s.Fetch)
}

// Reorder assigns order_index 0..n-1 following orderedIDs. orderedIDs must
// name every current category exactly once; otherwise nothing is sent.
func (s *CategoryStore) Reorder(ctx context.Context, orderedIDs []int32) error {
	return s.coll.write(ctx, "reorder", "Failed to reorder categories", func(ctx context.Context) error {
		orders, err := BuildOrder(s.Categories(), orderedIDs)
		if err != nil {
			return err
		}
		return s.api.ReorderCategories(ctx, orders)
	}, s.Fetch)
}

// BuildOrder turns a permutation of the categories' ids into contiguous
// order assignments.
func BuildOrder(categories []domain.Category, orderedIDs []int32) ([]domain.CategoryOrder, error) {
	if len(orderedIDs) != len(categories) {
		return nil, fmt.Errorf("%w: got %d ids for %d categories", domain.ErrInvalidOrder, len(orderedIDs), len(categories))
	}

	known := make(map[int32]bool, len(categories))
	for _, category := range categories {
		known[category.ID] = false
	}

	orders := make([]domain.CategoryOrder, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		seen, ok := known[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %d", domain.ErrInvalidOrder, id)
		}
		if seen {
			return nil, fmt.Errorf("%w: category %d listed twice", domain.ErrInvalidOrder, id)
		}
		known[id] = true
		orders = append(orders, domain.CategoryOrder{CategoryID: id, OrderIndex: int32(i)})
	}
	return orders, nil
}
