package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías. Create y Update mantienen consistentes ambos
// lados de cada relación (marcas, subcategorías, padre).
type CategoryUseCase struct {
	categories repository.CategoryRepository
	tx         TxRunner
	link       linker
	listLimit  int
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	tx TxRunner,
	policy reference.Policy,
	listLimit int,
) *CategoryUseCase {
	return &CategoryUseCase{
		categories: categories,
		tx:         tx,
		link:       linker{categories: categories, brands: brands, policy: policy},
		listLimit:  listLimit,
	}
}

// List devuelve las categorías hasta el tope configurado.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx, uc.listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	categoryID, err := reference.ParseID(id)
	if err != nil {
		return nil, err
	}
	return uc.reload(ctx, categoryID)
}

// Create inserta la categoría y enlaza marcas, padre y subcategorías.
// Una marca o un padre inexistente falla con ErrNotFound; la categoría ya insertada no se revierte
// salvo que el TxRunner sea transaccional.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	in.Normalize()
	if in.CategoryName == "" {
		return nil, fmt.Errorf("%w: categoryName es requerido", domain.ErrInvalidInput)
	}
	policy := uc.link.policy
	brands, err := reference.Normalize(dto.RawValues(in.Brands), policy.Brands.Key, reference.Strict)
	if err != nil {
		return nil, err
	}
	children, err := reference.Normalize(dto.RawValues(in.SubCategories), policy.SubCategories.Key, reference.Strict)
	if err != nil {
		return nil, err
	}
	var root *reference.ID
	if in.RootCategoryID != nil {
		id, err := reference.ParseID(*in.RootCategoryID)
		if err != nil {
			return nil, err
		}
		root = &id
	}
	if root != nil && children.Has(*root) {
		return nil, fmt.Errorf("%w: rootCategoryId no puede ser también subcategoría", domain.ErrInvalidInput)
	}

	category := &entity.Category{
		ID:             reference.NewID(),
		Name:           in.CategoryName,
		RootCategoryID: root,
		SubCategories:  policy.SubCategories.Encode(children),
		Brands:         policy.Brands.Encode(brands),
	}

	err = uc.tx.Run(ctx, func(ctx context.Context) error {
		if err := uc.categories.Create(ctx, category); err != nil {
			return fmt.Errorf("insertar categoría: %w", err)
		}
		if err := uc.link.syncBrandSide(ctx, category.ID, reference.Delta{Add: brands}, true); err != nil {
			return err
		}
		if err := uc.link.syncParent(ctx, category.ID, reference.DiffParent(nil, root), true); err != nil {
			return err
		}
		return uc.link.syncChildren(ctx, category.ID, reference.Delta{Add: children})
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("category_id", category.ID.Hex()).Msg("crear categoría")
		return nil, domain.AsBadRequest(err)
	}
	return uc.reload(ctx, category.ID)
}

// Update aplica una actualización parcial: carga el estado actual, calcula los deltas por eje,
// reescribe el documento y parchea los lados inversos. La respuesta se relee de la base.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	categoryID, err := reference.ParseID(id)
	if err != nil {
		return nil, err
	}
	in.Normalize()

	current, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, notFound("categoría", []reference.ID{categoryID})
	}

	policy := uc.link.policy
	var (
		patch       entity.CategoryPatch
		brandDelta  reference.Delta
		childDelta  reference.Delta
		parentDelta reference.ParentDelta
	)

	if in.CategoryName.Present() {
		if in.CategoryName.Value == "" {
			return nil, fmt.Errorf("%w: categoryName no puede ser vacío", domain.ErrInvalidInput)
		}
		name := in.CategoryName.Value
		patch.Name = &name
	}

	desiredParent := current.RootCategoryID
	if in.RootCategoryID.Set {
		desiredParent = nil
		if in.RootCategoryID.Present() && in.RootCategoryID.Value != "" {
			parent, err := reference.ParseID(in.RootCategoryID.Value)
			if err != nil {
				return nil, err
			}
			desiredParent = &parent
		}
		patch.Root = &entity.ParentPatch{ID: desiredParent}
		parentDelta = reference.DiffParent(current.RootCategoryID, desiredParent)
	}

	desiredChildren := reference.SetOf(current.SubCategories)
	if in.SubCategories.Set {
		desired, err := reference.Normalize(dto.RawValues(in.SubCategories.Value), policy.SubCategories.Key, reference.Strict)
		if err != nil {
			return nil, err
		}
		childDelta = reference.Diff(reference.SetOf(current.SubCategories), desired)
		patch.SubCategories = policy.SubCategories.Encode(desired)
		desiredChildren = desired
	}

	if in.Brands.Set {
		desired, err := reference.Normalize(dto.RawValues(in.Brands.Value), policy.Brands.Key, reference.Strict)
		if err != nil {
			return nil, err
		}
		brandDelta = reference.Diff(reference.SetOf(current.Brands), desired)
		patch.Brands = policy.Brands.Encode(desired)
	}

	if patch.Empty() {
		return nil, fmt.Errorf("%w: no hay campos para actualizar", domain.ErrInvalidInput)
	}
	if in.RootCategoryID.Set || in.SubCategories.Set {
		if err := validateHierarchy(categoryID, desiredParent, desiredChildren); err != nil {
			return nil, err
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("category_id", categoryID.Hex()).
		Int("brands_add", brandDelta.Add.Len()).
		Int("brands_remove", brandDelta.Remove.Len()).
		Int("children_add", childDelta.Add.Len()).
		Int("children_remove", childDelta.Remove.Len()).
		Bool("parent_changed", parentDelta.Changed).
		Msg("deltas de relación")

	err = uc.tx.Run(ctx, func(ctx context.Context) error {
		matched, err := uc.categories.Update(ctx, categoryID, patch)
		if err != nil {
			return fmt.Errorf("actualizar categoría: %w", err)
		}
		if !matched {
			return notFound("categoría", []reference.ID{categoryID})
		}
		if err := uc.link.syncBrandSide(ctx, categoryID, brandDelta, false); err != nil {
			return err
		}
		if err := uc.link.syncChildren(ctx, categoryID, childDelta); err != nil {
			return err
		}
		return uc.link.syncParent(ctx, categoryID, parentDelta, false)
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("category_id", categoryID.Hex()).Msg("actualizar categoría")
		return nil, domain.AsBadRequest(err)
	}
	return uc.reload(ctx, categoryID)
}

// Delete borra en lote. Antes de borrar quita cada categoría de las marcas, de los padres que
// la listan y del rootCategoryId de sus hijos.
func (uc *CategoryUseCase) Delete(ctx context.Context, in dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error) {
	if len(in.IDs) == 0 {
		return nil, fmt.Errorf("%w: ids no puede ser vacío", domain.ErrInvalidInput)
	}
	existing, missing, err := ResolveExisting(ctx, uc.categories, in.IDs)
	if err != nil {
		return nil, err
	}
	var deleted int64
	if existing.Len() > 0 {
		ids := existing.IDs()
		err = uc.tx.Run(ctx, func(ctx context.Context) error {
			if err := uc.link.brands.PullCategories(ctx, nil, ids); err != nil {
				return fmt.Errorf("quitar categorías de marcas: %w", err)
			}
			if err := uc.categories.PullSubCategories(ctx, nil, ids); err != nil {
				return fmt.Errorf("quitar categorías de sus padres: %w", err)
			}
			for _, id := range ids {
				if err := uc.categories.ClearParent(ctx, nil, id); err != nil {
					return fmt.Errorf("liberar subcategorías: %w", err)
				}
			}
			n, err := uc.categories.DeleteMany(ctx, ids)
			if err != nil {
				return fmt.Errorf("borrar categorías: %w", err)
			}
			deleted = n
			return nil
		})
		if err != nil {
			return nil, domain.AsBadRequest(err)
		}
	}
	return &dto.BulkDeleteResponse{Requested: len(in.IDs), Deleted: int(deleted), NotFound: missing}, nil
}

// reload relee la categoría: la respuesta siempre refleja lo que quedó guardado.
func (uc *CategoryUseCase) reload(ctx context.Context, id reference.ID) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFound("categoría", []reference.ID{id})
	}
	return toCategoryResponse(category), nil
}

func validateHierarchy(self reference.ID, parent *reference.ID, children reference.Set) error {
	if parent != nil && *parent == self {
		return fmt.Errorf("%w: una categoría no puede ser su propio padre", domain.ErrInvalidInput)
	}
	if children.Has(self) {
		return fmt.Errorf("%w: una categoría no puede ser su propia subcategoría", domain.ErrInvalidInput)
	}
	if parent != nil && children.Has(*parent) {
		return fmt.Errorf("%w: rootCategoryId no puede ser también subcategoría", domain.ErrInvalidInput)
	}
	return nil
}
