package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/repository"
)

// linker aplica deltas de relación sobre el lado inverso de cada eje.
// Con strict, un agregado que no encuentra todos sus destinos falla con ErrNotFound
// (flujo de creación); sin strict se tolera (flujo de actualización).
type linker struct {
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	policy     reference.Policy
}

// syncBrandSide refleja un cambio de Category.brands en Brand.categoryIdList.
func (l linker) syncBrandSide(ctx context.Context, categoryID reference.ID, d reference.Delta, strict bool) error {
	if d.Add.Len() > 0 {
		ref := l.policy.BrandCategories.Canonical(categoryID)
		matched, err := l.brands.AddCategory(ctx, d.Add.IDs(), ref)
		if err != nil {
			return fmt.Errorf("agregar categoría a marcas: %w", err)
		}
		if strict && matched < int64(d.Add.Len()) {
			return l.missing(ctx, l.brands, d.Add, "marca")
		}
	}
	if d.Remove.Len() > 0 {
		if err := l.brands.PullCategories(ctx, d.Remove.IDs(), []reference.ID{categoryID}); err != nil {
			return fmt.Errorf("quitar categoría de marcas: %w", err)
		}
	}
	return nil
}

// syncCategorySide refleja un cambio de Brand.categoryIdList en Category.brands.
func (l linker) syncCategorySide(ctx context.Context, brandID reference.ID, d reference.Delta, strict bool) error {
	if d.Add.Len() > 0 {
		ref := l.policy.Brands.Canonical(brandID)
		matched, err := l.categories.AddBrand(ctx, d.Add.IDs(), ref)
		if err != nil {
			return fmt.Errorf("agregar marca a categorías: %w", err)
		}
		if strict && matched < int64(d.Add.Len()) {
			return l.missing(ctx, l.categories, d.Add, "categoría")
		}
	}
	if d.Remove.Len() > 0 {
		if err := l.categories.PullBrands(ctx, d.Remove.IDs(), []reference.ID{brandID}); err != nil {
			return fmt.Errorf("quitar marca de categorías: %w", err)
		}
	}
	return nil
}

// syncChildren refleja un cambio de subCategories en el rootCategoryId de cada hijo.
// Un hijo nuevo se desprende antes de cualquier otro padre que lo listara.
func (l linker) syncChildren(ctx context.Context, parentID reference.ID, d reference.Delta) error {
	if d.Add.Len() > 0 {
		if err := l.categories.DetachSubCategories(ctx, parentID, d.Add.IDs()); err != nil {
			return fmt.Errorf("desprender subcategorías de otros padres: %w", err)
		}
		if _, err := l.categories.SetParent(ctx, d.Add.IDs(), parentID); err != nil {
			return fmt.Errorf("asignar padre a subcategorías: %w", err)
		}
	}
	if d.Remove.Len() > 0 {
		if err := l.categories.ClearParent(ctx, d.Remove.IDs(), parentID); err != nil {
			return fmt.Errorf("quitar padre de subcategorías: %w", err)
		}
	}
	return nil
}

// syncParent mueve la etiqueta del hijo del padre anterior al nuevo. Solo escribe si el
// padre realmente cambió.
func (l linker) syncParent(ctx context.Context, childID reference.ID, d reference.ParentDelta, strict bool) error {
	if !d.Changed {
		return nil
	}
	if d.Old != nil {
		if err := l.categories.PullSubCategories(ctx, []reference.ID{*d.Old}, []reference.ID{childID}); err != nil {
			return fmt.Errorf("quitar subcategoría del padre anterior: %w", err)
		}
	}
	if d.New != nil {
		matched, err := l.categories.AddSubCategory(ctx, []reference.ID{*d.New}, l.policy.SubCategories.Canonical(childID))
		if err != nil {
			return fmt.Errorf("agregar subcategoría al padre: %w", err)
		}
		if strict && matched == 0 {
			return notFound("categoría padre", []reference.ID{*d.New})
		}
	}
	return nil
}

// missing arma el ErrNotFound con los ids que no existen.
func (l linker) missing(ctx context.Context, checker repository.ExistenceChecker, want reference.Set, what string) error {
	existing, err := checker.FindExisting(ctx, want.IDs())
	if err != nil {
		return fmt.Errorf("resolver existencia: %w", err)
	}
	return notFound(what, want.Minus(existing).IDs())
}
