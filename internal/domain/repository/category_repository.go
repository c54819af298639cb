package repository

import (
	"context"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los métodos Pull* y ClearParent aceptan ids en cualquier forma guardada; los Add* escriben
// exactamente la referencia recibida.
type CategoryRepository interface {
	ExistenceChecker
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id reference.ID) (*entity.Category, error)
	List(ctx context.Context, limit int) ([]*entity.Category, error)
	// Update aplica el parche y devuelve false si la categoría no existe.
	Update(ctx context.Context, id reference.ID, patch entity.CategoryPatch) (bool, error)
	DeleteMany(ctx context.Context, ids []reference.ID) (int64, error)

	// AddBrand agrega la referencia a cada categoría; devuelve cuántas coincidieron.
	AddBrand(ctx context.Context, categoryIDs []reference.ID, brand reference.Reference) (int64, error)
	// PullBrands quita las marcas de las categorías indicadas (nil = todas).
	PullBrands(ctx context.Context, categoryIDs []reference.ID, brandIDs []reference.ID) error

	// AddSubCategory agrega la referencia al hijo en cada padre; devuelve cuántos coincidieron.
	AddSubCategory(ctx context.Context, parentIDs []reference.ID, child reference.Reference) (int64, error)
	// PullSubCategories quita los hijos de los padres indicados (nil = todos).
	PullSubCategories(ctx context.Context, parentIDs []reference.ID, childIDs []reference.ID) error
	// DetachSubCategories quita los hijos de cualquier padre distinto de keep.
	DetachSubCategories(ctx context.Context, keep reference.ID, childIDs []reference.ID) error
	// SetParent fija rootCategoryId en los hijos; devuelve cuántos coincidieron.
	SetParent(ctx context.Context, childIDs []reference.ID, parent reference.ID) (int64, error)
	// ClearParent elimina rootCategoryId de los hijos (nil = todos) cuyo padre es parent.
	ClearParent(ctx context.Context, childIDs []reference.ID, parent reference.ID) error
}
