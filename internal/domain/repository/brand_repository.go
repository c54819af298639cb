package repository

import (
	"context"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// BrandRepository define el puerto de persistencia para Brand (DIP).
type BrandRepository interface {
	ExistenceChecker
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id reference.ID) (*entity.Brand, error)
	List(ctx context.Context, limit int) ([]*entity.Brand, error)
	// Update aplica el parche y devuelve la marca resultante, o nil si no existe.
	Update(ctx context.Context, id reference.ID, patch entity.BrandPatch) (*entity.Brand, error)
	DeleteMany(ctx context.Context, ids []reference.ID) (int64, error)

	// AddCategory agrega la referencia a la categoría en cada marca; devuelve cuántas coincidieron.
	AddCategory(ctx context.Context, brandIDs []reference.ID, category reference.Reference) (int64, error)
	// PullCategories quita las categorías de las marcas indicadas (nil = todas).
	PullCategories(ctx context.Context, brandIDs []reference.ID, categoryIDs []reference.ID) error
}
