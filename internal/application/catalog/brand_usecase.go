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

// BrandUseCase casos de uso de marcas. Los cambios en categoryIdList se reflejan en
// Category.brands con el mismo cálculo de deltas que usa CategoryUseCase.
type BrandUseCase struct {
	brands    repository.BrandRepository
	tx        TxRunner
	link      linker
	listLimit int
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(
	brands repository.BrandRepository,
	categories repository.CategoryRepository,
	tx TxRunner,
	policy reference.Policy,
	listLimit int,
) *BrandUseCase {
	return &BrandUseCase{
		brands:    brands,
		tx:        tx,
		link:      linker{categories: categories, brands: brands, policy: policy},
		listLimit: listLimit,
	}
}

// List devuelve las marcas hasta el tope configurado.
func (uc *BrandUseCase) List(ctx context.Context) ([]dto.BrandResponse, error) {
	list, err := uc.brands.List(ctx, uc.listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *toBrandResponse(b))
	}
	return out, nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(ctx context.Context, id string) (*dto.BrandResponse, error) {
	brandID, err := reference.ParseID(id)
	if err != nil {
		return nil, err
	}
	brand, err := uc.brands.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, notFound("marca", []reference.ID{brandID})
	}
	return toBrandResponse(brand), nil
}

// Create inserta la marca y la agrega a Category.brands de cada categoría listada.
// Una categoría inexistente falla con ErrNotFound.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	in.Normalize()
	if in.BrandName == "" || in.BrandSymbol == "" {
		return nil, fmt.Errorf("%w: brandName y brandSymbol son requeridos", domain.ErrInvalidInput)
	}
	policy := uc.link.policy
	categories, err := reference.Normalize(dto.RawValues(in.CategoryIDList), policy.BrandCategories.Key, reference.Strict)
	if err != nil {
		return nil, err
	}
	brand := &entity.Brand{
		ID:             reference.NewID(),
		Name:           in.BrandName,
		Symbol:         in.BrandSymbol,
		Icon:           in.BrandIcon,
		CategoryIDList: policy.BrandCategories.Encode(categories),
	}

	err = uc.tx.Run(ctx, func(ctx context.Context) error {
		if err := uc.brands.Create(ctx, brand); err != nil {
			return fmt.Errorf("insertar marca: %w", err)
		}
		return uc.link.syncCategorySide(ctx, brand.ID, reference.Delta{Add: categories}, true)
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("brand_id", brand.ID.Hex()).Msg("crear marca")
		return nil, domain.AsBadRequest(err)
	}
	return uc.GetByID(ctx, brand.ID.Hex())
}

// Update aplica solo los campos presentes y no nulos. Si llega categoryIdList se calcula el
// delta contra lo guardado y se parchea Category.brands (se toleran categorías inexistentes).
func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brandID, err := reference.ParseID(id)
	if err != nil {
		return nil, err
	}
	in.Normalize()

	var patch entity.BrandPatch
	if in.BrandName.Present() {
		if in.BrandName.Value == "" {
			return nil, fmt.Errorf("%w: brandName no puede ser vacío", domain.ErrInvalidInput)
		}
		patch.Name = &in.BrandName.Value
	}
	if in.BrandSymbol.Present() {
		patch.Symbol = &in.BrandSymbol.Value
	}
	if in.BrandIcon.Present() {
		patch.Icon = &in.BrandIcon.Value
	}

	var delta reference.Delta
	if in.CategoryIDList.Present() {
		key := uc.link.policy.BrandCategories.Key
		desired, err := reference.Normalize(dto.RawValues(in.CategoryIDList.Value), key, reference.Strict)
		if err != nil {
			return nil, err
		}
		current, err := uc.brands.GetByID(ctx, brandID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, notFound("marca", []reference.ID{brandID})
		}
		delta = reference.Diff(reference.SetOf(current.CategoryIDList), desired)
		patch.CategoryIDList = uc.link.policy.BrandCategories.Encode(desired)
	}

	if patch.Empty() {
		return nil, fmt.Errorf("%w: campos inválidos para actualizar", domain.ErrInvalidInput)
	}

	var updated *entity.Brand
	err = uc.tx.Run(ctx, func(ctx context.Context) error {
		b, err := uc.brands.Update(ctx, brandID, patch)
		if err != nil {
			return fmt.Errorf("actualizar marca: %w", err)
		}
		if b == nil {
			return notFound("marca", []reference.ID{brandID})
		}
		updated = b
		return uc.link.syncCategorySide(ctx, brandID, delta, false)
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("brand_id", brandID.Hex()).Msg("actualizar marca")
		return nil, domain.AsBadRequest(err)
	}
	return toBrandResponse(updated), nil
}

// Delete borra en lote y quita cada marca de Category.brands.
func (uc *BrandUseCase) Delete(ctx context.Context, in dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error) {
	if len(in.IDs) == 0 {
		return nil, fmt.Errorf("%w: ids no puede ser vacío", domain.ErrInvalidInput)
	}
	existing, missing, err := ResolveExisting(ctx, uc.brands, in.IDs)
	if err != nil {
		return nil, err
	}
	var deleted int64
	if existing.Len() > 0 {
		ids := existing.IDs()
		err = uc.tx.Run(ctx, func(ctx context.Context) error {
			if err := uc.link.categories.PullBrands(ctx, nil, ids); err != nil {
				return fmt.Errorf("quitar marcas de categorías: %w", err)
			}
			n, err := uc.brands.DeleteMany(ctx, ids)
			if err != nil {
				return fmt.Errorf("borrar marcas: %w", err)
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
