package memstore

import (
	"context"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// BrandRepo implementación en memoria de repository.BrandRepository.
type BrandRepo struct {
	s *Store
}

func (r *BrandRepo) FindExisting(ctx context.Context, ids []reference.ID) (reference.Set, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("brands.FindExisting"); err != nil {
		return reference.Set{}, err
	}
	return existing(r.s.brands, ids), nil
}

func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("brands.Create"); err != nil {
		return err
	}
	if b.ID.IsZero() {
		b.ID = reference.NewID()
	}
	if _, ok := r.s.brands[b.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.track(b.ID)
	r.s.brands[b.ID] = cloneBrand(b)
	return nil
}

func (r *BrandRepo) GetByID(ctx context.Context, id reference.ID) (*entity.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("brands.GetByID"); err != nil {
		return nil, err
	}
	return cloneBrand(r.s.brands[id]), nil
}

func (r *BrandRepo) List(ctx context.Context, limit int) ([]*entity.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("brands.List"); err != nil {
		return nil, err
	}
	out := make([]*entity.Brand, 0)
	for _, id := range scope(r.s, r.s.brands, nil) {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, cloneBrand(r.s.brands[id]))
	}
	return out, nil
}

func (r *BrandRepo) Update(ctx context.Context, id reference.ID, patch entity.BrandPatch) (*entity.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("brands.Update"); err != nil {
		return nil, err
	}
	b, ok := r.s.brands[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.Symbol != nil {
		b.Symbol = *patch.Symbol
	}
	if patch.Icon != nil {
		icon := *patch.Icon
		b.Icon = &icon
	}
	if patch.CategoryIDList != nil {
		b.CategoryIDList = cloneRefs(patch.CategoryIDList)
	}
	return cloneBrand(b), nil
}

func (r *BrandRepo) DeleteMany(ctx context.Context, ids []reference.ID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("brands.DeleteMany"); err != nil {
		return 0, err
	}
	return deleteMany(r.s.brands, ids), nil
}

func (r *BrandRepo) AddCategory(ctx context.Context, brandIDs []reference.ID, category reference.Reference) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("brands.AddCategory"); err != nil {
		return 0, err
	}
	matched := scope(r.s, r.s.brands, brandIDs)
	for _, id := range matched {
		b := r.s.brands[id]
		b.CategoryIDList = addToSet(b.CategoryIDList, category)
	}
	return int64(len(matched)), nil
}

func (r *BrandRepo) PullCategories(ctx context.Context, brandIDs []reference.ID, categoryIDs []reference.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("brands.PullCategories"); err != nil {
		return err
	}
	targets := reference.NewSet(categoryIDs...)
	for _, id := range scope(r.s, r.s.brands, brandIDs) {
		b := r.s.brands[id]
		b.CategoryIDList = pull(b.CategoryIDList, targets)
	}
	return nil
}
