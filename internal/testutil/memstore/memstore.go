// Package memstore implementa en memoria los puertos de persistencia del catálogo con la misma
// semántica que el adaptador de Mongo: $addToSet exacto para agregados, pulls que reconocen
// cualquier forma guardada y conteos de coincidencias. Pensado para tests.
package memstore

import (
	"context"
	"sync"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.BrandRepository    = (*BrandRepo)(nil)
	_ repository.ItemRepository     = (*ItemRepo)(nil)
)

// Store estado compartido por los tres repositorios.
type Store struct {
	mu         sync.Mutex
	categories map[reference.ID]*entity.Category
	brands     map[reference.ID]*entity.Brand
	items      map[reference.ID]*entity.Item
	order      []reference.ID
	failures   map[string]error
	calls      map[string]int
}

// New construye un store vacío.
func New() *Store {
	return &Store{
		categories: map[reference.ID]*entity.Category{},
		brands:     map[reference.ID]*entity.Brand{},
		items:      map[reference.ID]*entity.Item{},
		failures:   map[string]error{},
		calls:      map[string]int{},
	}
}

// FailOn hace que la operación op (p.ej. "brands.AddCategory") devuelva err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// Calls cuántas veces se invocó op.
func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// enter registra la llamada y devuelve la falla inyectada. Requiere s.mu tomado.
func (s *Store) enter(op string) error {
	s.calls[op]++
	return s.failures[op]
}

// Categories repositorio de categorías sobre el store.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Brands repositorio de marcas sobre el store.
func (s *Store) Brands() *BrandRepo { return &BrandRepo{s: s} }

// Items repositorio de artículos sobre el store.
func (s *Store) Items() *ItemRepo { return &ItemRepo{s: s} }

// Category copia de la categoría guardada (nil si no existe). Para aserciones.
func (s *Store) Category(id reference.ID) *entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCategory(s.categories[id])
}

// Brand copia de la marca guardada (nil si no existe). Para aserciones.
func (s *Store) Brand(id reference.ID) *entity.Brand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBrand(s.brands[id])
}

// PutCategory guarda la categoría tal cual, sin sincronizar lados inversos (datos semilla).
func (s *Store) PutCategory(c *entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.track(c.ID)
	s.categories[c.ID] = cloneCategory(c)
}

// PutBrand guarda la marca tal cual.
func (s *Store) PutBrand(b *entity.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.track(b.ID)
	s.brands[b.ID] = cloneBrand(b)
}

func (s *Store) track(id reference.ID) {
	for _, existing := range s.order {
		if existing == id {
			return
		}
	}
	s.order = append(s.order, id)
}

// TxRunner ejecuta fn directamente: sin rollback, como Mongo sin transacciones.
type TxRunner struct{}

func (TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func cloneRefs(refs []reference.Reference) []reference.Reference {
	if refs == nil {
		return nil
	}
	out := make([]reference.Reference, len(refs))
	copy(out, refs)
	return out
}

func cloneCategory(c *entity.Category) *entity.Category {
	if c == nil {
		return nil
	}
	cp := *c
	if c.RootCategoryID != nil {
		root := *c.RootCategoryID
		cp.RootCategoryID = &root
	}
	cp.SubCategories = cloneRefs(c.SubCategories)
	cp.Brands = cloneRefs(c.Brands)
	return &cp
}

func cloneBrand(b *entity.Brand) *entity.Brand {
	if b == nil {
		return nil
	}
	cp := *b
	cp.CategoryIDList = cloneRefs(b.CategoryIDList)
	return &cp
}

// addToSet agrega ref salvo que ya exista exactamente igual.
func addToSet(refs []reference.Reference, ref reference.Reference) []reference.Reference {
	for _, r := range refs {
		if r == ref {
			return refs
		}
	}
	return append(refs, ref)
}

// pull quita toda entrada cuyo id esté en targets, sin importar la forma.
func pull(refs []reference.Reference, targets reference.Set) []reference.Reference {
	out := refs[:0:0]
	for _, r := range refs {
		if !targets.Has(r.Target()) {
			out = append(out, r)
		}
	}
	return out
}

// scope devuelve los ids de ids que existen en m, o todos los de m en orden de alta si ids es nil.
func scope[T any](s *Store, m map[reference.ID]T, ids []reference.ID) []reference.ID {
	if ids == nil {
		out := make([]reference.ID, 0, len(m))
		for _, id := range s.order {
			if _, ok := m[id]; ok {
				out = append(out, id)
			}
		}
		return out
	}
	out := make([]reference.ID, 0, len(ids))
	for _, id := range reference.NewSet(ids...).IDs() {
		if _, ok := m[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func existing[T any](m map[reference.ID]T, ids []reference.ID) reference.Set {
	out := reference.NewSet()
	for _, id := range ids {
		if _, ok := m[id]; ok {
			out.Add(id)
		}
	}
	return out
}

func deleteMany[T any](m map[reference.ID]T, ids []reference.ID) int64 {
	var n int64
	for _, id := range reference.NewSet(ids...).IDs() {
		if _, ok := m[id]; ok {
			delete(m, id)
			n++
		}
	}
	return n
}
