package domain

import "context"

type Category struct {
	ID         int32   `json:"id"`
	Name       string  `json:"name"`
	UserID     int32   `json:"user_id"`
	OrderIndex int32   `json:"order_index"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  *string `json:"updated_at"`
}

func (c Category) Clone() Category {
	c.UpdatedAt = clonePtr(c.UpdatedAt)
	return c
}

type CategoryCreate struct {
	Name string `json:"name"`
}

type CategoryUpdate struct {
	Name       *string `json:"name,omitempty"`
	OrderIndex *int32  `json:"order_index,omitempty"`
}

// CategoryOrder assigns a display position to one category.
type CategoryOrder struct {
	CategoryID int32 `json:"category_id"`
	OrderIndex int32 `json:"order_index"`
}

type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, input *CategoryCreate) (*Category, error)
	UpdateCategory(ctx context.Context, id int32, input *CategoryUpdate) (*Category, error)
	DeleteCategory(ctx context.Context, id int32) error
	ReorderCategories(ctx context.Context, orders []CategoryOrder) error
}
