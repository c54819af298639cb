package repository

import (
	"context"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	ExistenceChecker
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id reference.ID) (*entity.Item, error)
	List(ctx context.Context, limit int) ([]*entity.Item, error)
	Update(ctx context.Context, id reference.ID, patch entity.ItemPatch) (*entity.Item, error)
	DeleteMany(ctx context.Context, ids []reference.ID) (int64, error)
}
