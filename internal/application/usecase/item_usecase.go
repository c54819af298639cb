package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/catalog"
	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos. Sus referencias a marca y categoría no se
// sincronizan ni se validan.
type ItemUseCase struct {
	repo      repository.ItemRepository
	listLimit int
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, listLimit int) *ItemUseCase {
	return &ItemUseCase{repo: repo, listLimit: listLimit}
}

// Create crea un nuevo artículo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	in.Normalize()
	if in.Name == "" || in.BrandID == "" || in.CategoryID == "" || in.SubCategoryID == "" {
		return nil, fmt.Errorf("%w: name, brandId, categoryId y subCategoryId son requeridos", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, fmt.Errorf("%w: price y quantity no pueden ser negativos", domain.ErrInvalidInput)
	}
	item := &entity.Item{
		ID:             reference.NewID(),
		Name:           in.Name,
		Currency:       in.Currency,
		Price:          in.Price,
		Description:    in.Description,
		ImageURL:       in.ImageURL,
		BrandID:        in.BrandID,
		CategoryID:     in.CategoryID,
		SubCategoryID:  in.SubCategoryID,
		Quantity:       in.Quantity,
		IsFavoriteItem: in.IsFavoriteItem,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, item.ID.Hex())
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	itemID, err := reference.ParseID(id)
	if err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	return toItemResponse(item), nil
}

// List lista artículos hasta el tope configurado.
func (uc *ItemUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx, uc.listLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return items, nil
}

// Update actualiza los campos presentes y no nulos.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	itemID, err := reference.ParseID(id)
	if err != nil {
		return nil, err
	}
	in.Normalize()

	var patch entity.ItemPatch
	if in.Name.Present() {
		if in.Name.Value == "" {
			return nil, fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
		}
		patch.Name = &in.Name.Value
	}
	if in.Currency.Present() {
		patch.Currency = &in.Currency.Value
	}
	if in.Price.Present() {
		if in.Price.Value.IsNegative() {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
		}
		patch.Price = &in.Price.Value
	}
	if in.Description.Present() {
		patch.Description = &in.Description.Value
	}
	if in.ImageURL.Present() {
		patch.ImageURL = &in.ImageURL.Value
	}
	if in.BrandID.Present() {
		patch.BrandID = &in.BrandID.Value
	}
	if in.CategoryID.Present() {
		patch.CategoryID = &in.CategoryID.Value
	}
	if in.SubCategoryID.Present() {
		patch.SubCategoryID = &in.SubCategoryID.Value
	}
	if in.Quantity.Present() {
		if in.Quantity.Value < 0 {
			return nil, fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
		}
		patch.Quantity = &in.Quantity.Value
	}
	if in.IsFavoriteItem.Present() {
		patch.IsFavoriteItem = &in.IsFavoriteItem.Value
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: campos inválidos para actualizar", domain.ErrInvalidInput)
	}

	item, err := uc.repo.Update(ctx, itemID, patch)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	return toItemResponse(item), nil
}

// Delete borra en lote e informa cuáles ids no existían.
func (uc *ItemUseCase) Delete(ctx context.Context, in dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error) {
	if len(in.IDs) == 0 {
		return nil, fmt.Errorf("%w: ids no puede ser vacío", domain.ErrInvalidInput)
	}
	existing, missing, err := catalog.ResolveExisting(ctx, uc.repo, in.IDs)
	if err != nil {
		return nil, err
	}
	var deleted int64
	if existing.Len() > 0 {
		deleted, err = uc.repo.DeleteMany(ctx, existing.IDs())
		if err != nil {
			return nil, err
		}
	}
	return &dto.BulkDeleteResponse{Requested: len(in.IDs), Deleted: int(deleted), NotFound: missing}, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:             it.ID.Hex(),
		Name:           it.Name,
		Currency:       it.Currency,
		Price:          it.Price,
		Description:    it.Description,
		ImageURL:       it.ImageURL,
		BrandID:        it.BrandID,
		CategoryID:     it.CategoryID,
		SubCategoryID:  it.SubCategoryID,
		Quantity:       it.Quantity,
		IsFavoriteItem: it.IsFavoriteItem,
	}
}
