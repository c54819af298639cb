package memstore

import (
	"context"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// CategoryRepo implementación en memoria de repository.CategoryRepository.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) FindExisting(ctx context.Context, ids []reference.ID) (reference.Set, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.FindExisting"); err != nil {
		return reference.Set{}, err
	}
	return existing(r.s.categories, ids), nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.Create"); err != nil {
		return err
	}
	if c.ID.IsZero() {
		c.ID = reference.NewID()
	}
	if _, ok := r.s.categories[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.track(c.ID)
	r.s.categories[c.ID] = cloneCategory(c)
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id reference.ID) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.GetByID"); err != nil {
		return nil, err
	}
	return cloneCategory(r.s.categories[id]), nil
}

func (r *CategoryRepo) List(ctx context.Context, limit int) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.List"); err != nil {
		return nil, err
	}
	out := make([]*entity.Category, 0)
	for _, id := range scope(r.s, r.s.categories, nil) {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, cloneCategory(r.s.categories[id]))
	}
	return out, nil
}

func (r *CategoryRepo) Update(ctx context.Context, id reference.ID, patch entity.CategoryPatch) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.Update"); err != nil {
		return false, err
	}
	c, ok := r.s.categories[id]
	if !ok {
		return false, nil
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Root != nil {
		c.RootCategoryID = nil
		if patch.Root.ID != nil {
			root := *patch.Root.ID
			c.RootCategoryID = &root
		}
	}
	if patch.SubCategories != nil {
		c.SubCategories = cloneRefs(patch.SubCategories)
	}
	if patch.Brands != nil {
		c.Brands = cloneRefs(patch.Brands)
	}
	return true, nil
}

func (r *CategoryRepo) DeleteMany(ctx context.Context, ids []reference.ID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.DeleteMany"); err != nil {
		return 0, err
	}
	return deleteMany(r.s.categories, ids), nil
}

func (r *CategoryRepo) AddBrand(ctx context.Context, categoryIDs []reference.ID, brand reference.Reference) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.AddBrand"); err != nil {
		return 0, err
	}
	matched := scope(r.s, r.s.categories, categoryIDs)
	for _, id := range matched {
		c := r.s.categories[id]
		c.Brands = addToSet(c.Brands, brand)
	}
	return int64(len(matched)), nil
}

func (r *CategoryRepo) PullBrands(ctx context.Context, categoryIDs []reference.ID, brandIDs []reference.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.PullBrands"); err != nil {
		return err
	}
	targets := reference.NewSet(brandIDs...)
	for _, id := range scope(r.s, r.s.categories, categoryIDs) {
		c := r.s.categories[id]
		c.Brands = pull(c.Brands, targets)
	}
	return nil
}

func (r *CategoryRepo) AddSubCategory(ctx context.Context, parentIDs []reference.ID, child reference.Reference) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.AddSubCategory"); err != nil {
		return 0, err
	}
	matched := scope(r.s, r.s.categories, parentIDs)
	for _, id := range matched {
		c := r.s.categories[id]
		c.SubCategories = addToSet(c.SubCategories, child)
	}
	return int64(len(matched)), nil
}

func (r *CategoryRepo) PullSubCategories(ctx context.Context, parentIDs []reference.ID, childIDs []reference.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.PullSubCategories"); err != nil {
		return err
	}
	targets := reference.NewSet(childIDs...)
	for _, id := range scope(r.s, r.s.categories, parentIDs) {
		c := r.s.categories[id]
		c.SubCategories = pull(c.SubCategories, targets)
	}
	return nil
}

func (r *CategoryRepo) DetachSubCategories(ctx context.Context, keep reference.ID, childIDs []reference.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.DetachSubCategories"); err != nil {
		return err
	}
	targets := reference.NewSet(childIDs...)
	for _, id := range scope(r.s, r.s.categories, nil) {
		if id == keep {
			continue
		}
		c := r.s.categories[id]
		c.SubCategories = pull(c.SubCategories, targets)
	}
	return nil
}

func (r *CategoryRepo) SetParent(ctx context.Context, childIDs []reference.ID, parent reference.ID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.SetParent"); err != nil {
		return 0, err
	}
	matched := scope(r.s, r.s.categories, childIDs)
	for _, id := range matched {
		p := parent
		r.s.categories[id].RootCategoryID = &p
	}
	return int64(len(matched)), nil
}

func (r *CategoryRepo) ClearParent(ctx context.Context, childIDs []reference.ID, parent reference.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("categories.ClearParent"); err != nil {
		return err
	}
	for _, id := range scope(r.s, r.s.categories, childIDs) {
		c := r.s.categories[id]
		if c.RootCategoryID != nil && *c.RootCategoryID == parent {
			c.RootCategoryID = nil
		}
	}
	return nil
}
