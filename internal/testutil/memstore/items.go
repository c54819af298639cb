package memstore

import (
	"context"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// ItemRepo implementación en memoria de repository.ItemRepository.
type ItemRepo struct {
	s *Store
}

func cloneItem(it *entity.Item) *entity.Item {
	if it == nil {
		return nil
	}
	cp := *it
	return &cp
}

func (r *ItemRepo) FindExisting(ctx context.Context, ids []reference.ID) (reference.Set, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("items.FindExisting"); err != nil {
		return reference.Set{}, err
	}
	return existing(r.s.items, ids), nil
}

func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("items.Create"); err != nil {
		return err
	}
	if it.ID.IsZero() {
		it.ID = reference.NewID()
	}
	if _, ok := r.s.items[it.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.track(it.ID)
	r.s.items[it.ID] = cloneItem(it)
	return nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id reference.ID) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("items.GetByID"); err != nil {
		return nil, err
	}
	return cloneItem(r.s.items[id]), nil
}

func (r *ItemRepo) List(ctx context.Context, limit int) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("items.List"); err != nil {
		return nil, err
	}
	out := make([]*entity.Item, 0)
	for _, id := range scope(r.s, r.s.items, nil) {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, cloneItem(r.s.items[id]))
	}
	return out, nil
}

func (r *ItemRepo) Update(ctx context.Context, id reference.ID, patch entity.ItemPatch) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("items.Update"); err != nil {
		return nil, err
	}
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Currency != nil {
		it.Currency = *patch.Currency
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.Description != nil {
		d := *patch.Description
		it.Description = &d
	}
	if patch.ImageURL != nil {
		u := *patch.ImageURL
		it.ImageURL = &u
	}
	if patch.BrandID != nil {
		it.BrandID = *patch.BrandID
	}
	if patch.CategoryID != nil {
		it.CategoryID = *patch.CategoryID
	}
	if patch.SubCategoryID != nil {
		it.SubCategoryID = *patch.SubCategoryID
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.IsFavoriteItem != nil {
		it.IsFavoriteItem = *patch.IsFavoriteItem
	}
	return cloneItem(it), nil
}

func (r *ItemRepo) DeleteMany(ctx context.Context, ids []reference.ID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("items.DeleteMany"); err != nil {
		return 0, err
	}
	return deleteMany(r.s.items, ids), nil
}
