package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/catalog"
	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/testutil/memstore"
)

type fixture struct {
	store      *memstore.Store
	categories *catalog.CategoryUseCase
	brands     *catalog.BrandUseCase
	ctx        context.Context
}

func newFixture() *fixture {
	store := memstore.New()
	policy := reference.DefaultPolicy()
	return &fixture{
		store:      store,
		categories: catalog.NewCategoryUseCase(store.Categories(), store.Brands(), memstore.TxRunner{}, policy, 100),
		brands:     catalog.NewBrandUseCase(store.Brands(), store.Categories(), memstore.TxRunner{}, policy, 100),
		ctx:        context.Background(),
	}
}

func (f *fixture) brand(name string) reference.ID {
	id := reference.NewID()
	f.store.PutBrand(&entity.Brand{ID: id, Name: name, Symbol: name})
	return id
}

func (f *fixture) category(t *testing.T, in dto.CreateCategoryRequest) reference.ID {
	t.Helper()
	out, err := f.categories.Create(f.ctx, in)
	require.NoError(t, err)
	id, err := reference.ParseID(out.ID)
	require.NoError(t, err)
	return id
}

func refs(values ...any) []dto.RawReference {
	out := make([]dto.RawReference, 0, len(values))
	for _, v := range values {
		if id, ok := v.(reference.ID); ok {
			v = id.Hex()
		}
		out = append(out, dto.RawReference{Value: v})
	}
	return out
}

func strPtr(s string) *string { return &s }

func brandCategories(f *fixture, id reference.ID) reference.Set {
	return reference.SetOf(f.store.Brand(id).CategoryIDList)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SinRelaciones(t *testing.T) {
	f := newFixture()

	out, err := f.categories.Create(f.ctx, dto.CreateCategoryRequest{CategoryName: "  Audio  "})
	require.NoError(t, err)
	assert.Equal(t, "Audio", out.CategoryName)
	assert.Nil(t, out.RootCategoryID)
	assert.Empty(t, out.Brands)
	assert.Empty(t, out.SubCategories)
	assert.Zero(t, f.store.Calls("brands.AddCategory"))
	assert.Zero(t, f.store.Calls("categories.AddSubCategory"))
}

func TestCreate_ConMarca_AgregaCategoriaEnLaMarca(t *testing.T) {
	f := newFixture()
	b1 := f.brand("B1")

	c1 := f.category(t, dto.CreateCategoryRequest{CategoryName: "C1", Brands: refs(b1)})

	assert.Equal(t, []reference.Reference{reference.Wrapped{Key: "categoryId", ID: c1}}, f.store.Brand(b1).CategoryIDList)
	assert.Equal(t, []reference.Reference{reference.Bare{ID: b1}}, f.store.Category(c1).Brands)
}

func TestCreate_MarcaInexistente_NotFoundSinRevertir(t *testing.T) {
	f := newFixture()
	ghost := reference.NewID()

	_, err := f.categories.Create(f.ctx, dto.CreateCategoryRequest{CategoryName: "C2", Brands: refs(ghost)})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), ghost.Hex())

	list, err := f.categories.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "la categoría insertada queda guardada")
	assert.Equal(t, "C2", list[0].CategoryName)
}

func TestCreate_PadreInexistente_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.categories.Create(f.ctx, dto.CreateCategoryRequest{
		CategoryName:   "Hija",
		RootCategoryID: strPtr(reference.NewID().Hex()),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ConPadre_AgregaSubcategoria(t *testing.T) {
	f := newFixture()
	p := f.category(t, dto.CreateCategoryRequest{CategoryName: "Padre"})

	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "Hija", RootCategoryID: strPtr(p.Hex())})

	assert.Equal(t, []reference.Reference{reference.Wrapped{Key: "subCategoryId", ID: c}}, f.store.Category(p).SubCategories)
	require.NotNil(t, f.store.Category(c).RootCategoryID)
	assert.Equal(t, p, *f.store.Category(c).RootCategoryID)
}

func TestCreate_ConSubcategorias_LasReasigna(t *testing.T) {
	f := newFixture()
	old := f.category(t, dto.CreateCategoryRequest{CategoryName: "Viejo"})
	child := f.category(t, dto.CreateCategoryRequest{CategoryName: "Hija", RootCategoryID: strPtr(old.Hex())})

	p := f.category(t, dto.CreateCategoryRequest{
		CategoryName:  "Nuevo",
		SubCategories: refs(map[string]any{"subCategoryId": child.Hex()}),
	})

	assert.Empty(t, f.store.Category(old).SubCategories)
	assert.Equal(t, p, *f.store.Category(child).RootCategoryID)
}

func TestCreate_ReferenciaMalFormada(t *testing.T) {
	f := newFixture()

	_, err := f.categories.Create(f.ctx, dto.CreateCategoryRequest{
		CategoryName: "C",
		Brands:       refs(map[string]any{"a": reference.NewID().Hex(), "b": "x"}),
	})
	assert.ErrorIs(t, err, domain.ErrMalformedReference)
	assert.Zero(t, f.store.Calls("categories.Create"), "falla antes de escribir")
}

func TestCreate_IDInvalido(t *testing.T) {
	f := newFixture()

	_, err := f.categories.Create(f.ctx, dto.CreateCategoryRequest{CategoryName: "C", Brands: refs("zzz")})
	require.ErrorIs(t, err, domain.ErrInvalidIdentifier)
	assert.Contains(t, err.Error(), "zzz")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CambiaMarcaB1PorB2(t *testing.T) {
	f := newFixture()
	b1, b2 := f.brand("B1"), f.brand("B2")
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C", Brands: refs(b1)})

	out, err := f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{Brands: dto.Some(refs(b2))})
	require.NoError(t, err)

	assert.Equal(t, []any{b2.Hex()}, out.Brands)
	assert.False(t, brandCategories(f, b1).Has(c))
	assert.True(t, brandCategories(f, b2).Has(c))
}

func TestUpdate_CambiaPadreP1PorP2(t *testing.T) {
	f := newFixture()
	p1 := f.category(t, dto.CreateCategoryRequest{CategoryName: "P1"})
	p2 := f.category(t, dto.CreateCategoryRequest{CategoryName: "P2"})
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C", RootCategoryID: strPtr(p1.Hex())})

	out, err := f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{RootCategoryID: dto.Some(p2.Hex())})
	require.NoError(t, err)

	require.NotNil(t, out.RootCategoryID)
	assert.Equal(t, p2.Hex(), *out.RootCategoryID)
	assert.False(t, reference.SetOf(f.store.Category(p1).SubCategories).Has(c))
	assert.True(t, reference.SetOf(f.store.Category(p2).SubCategories).Has(c))
}

func TestUpdate_MismoPadre_NoTocaPadres(t *testing.T) {
	f := newFixture()
	p1 := f.category(t, dto.CreateCategoryRequest{CategoryName: "P1"})
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C", RootCategoryID: strPtr(p1.Hex())})
	pulls := f.store.Calls("categories.PullSubCategories")
	adds := f.store.Calls("categories.AddSubCategory")

	_, err := f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{RootCategoryID: dto.Some(p1.Hex())})
	require.NoError(t, err)

	assert.Equal(t, pulls, f.store.Calls("categories.PullSubCategories"))
	assert.Equal(t, adds, f.store.Calls("categories.AddSubCategory"))
}

func TestUpdate_PadreNulo_QuitaDelPadre(t *testing.T) {
	f := newFixture()
	p1 := f.category(t, dto.CreateCategoryRequest{CategoryName: "P1"})
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C", RootCategoryID: strPtr(p1.Hex())})

	out, err := f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{RootCategoryID: dto.Null[string]()})
	require.NoError(t, err)

	assert.Nil(t, out.RootCategoryID)
	assert.Empty(t, f.store.Category(p1).SubCategories)
}

func TestUpdate_Idempotente(t *testing.T) {
	f := newFixture()
	b1 := f.brand("B1")
	p := f.category(t, dto.CreateCategoryRequest{CategoryName: "P"})
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C"})
	req := dto.UpdateCategoryRequest{
		CategoryName:  dto.Some("C'"),
		Brands:        dto.Some(refs(b1)),
		SubCategories: dto.Some(refs(p)),
	}

	first, err := f.categories.Update(f.ctx, c.Hex(), req)
	require.NoError(t, err)
	brandAfter := f.store.Brand(b1)
	childAfter := f.store.Category(p)

	second, err := f.categories.Update(f.ctx, c.Hex(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, brandAfter, f.store.Brand(b1))
	assert.Equal(t, childAfter, f.store.Category(p))
}

func TestUpdate_QuitarSubcategoria_LiberaAlHijo(t *testing.T) {
	f := newFixture()
	p := f.category(t, dto.CreateCategoryRequest{CategoryName: "P"})
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C", RootCategoryID: strPtr(p.Hex())})

	_, err := f.categories.Update(f.ctx, p.Hex(), dto.UpdateCategoryRequest{SubCategories: dto.Null[[]dto.RawReference]()})
	require.NoError(t, err)

	assert.Nil(t, f.store.Category(c).RootCategoryID)
	assert.Empty(t, f.store.Category(p).SubCategories)
}

func TestUpdate_FormasMezcladasEnLoGuardado(t *testing.T) {
	f := newFixture()
	b1, b2 := f.brand("B1"), f.brand("B2")
	c := reference.NewID()
	f.store.PutCategory(&entity.Category{
		ID:   c,
		Name: "Legada",
		Brands: []reference.Reference{
			reference.Bare{ID: b1},
			reference.Wrapped{Key: "brandId", ID: b1},
			reference.Wrapped{Key: "brandId", ID: b2},
		},
	})

	_, err := f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{Brands: dto.Some(refs(b1))})
	require.NoError(t, err)

	assert.Equal(t, []reference.Reference{reference.Bare{ID: b1}}, f.store.Category(c).Brands)
	assert.Zero(t, brandCategories(f, b2).Len())
}

func TestUpdate_SinCampos(t *testing.T) {
	f := newFixture()
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C"})

	_, err := f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{CategoryName: dto.Null[string]()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_Inexistente(t *testing.T) {
	f := newFixture()

	_, err := f.categories.Update(f.ctx, reference.NewID().Hex(), dto.UpdateCategoryRequest{CategoryName: dto.Some("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_JerarquiaInvalida(t *testing.T) {
	f := newFixture()
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C"})

	_, err := f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{RootCategoryID: dto.Some(c.Hex())})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{SubCategories: dto.Some(refs(c))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_MarcaInexistenteSeTolera(t *testing.T) {
	f := newFixture()
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C"})
	ghost := reference.NewID()

	out, err := f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{Brands: dto.Some(refs(ghost))})
	require.NoError(t, err)
	assert.Equal(t, []any{ghost.Hex()}, out.Brands)
}

func TestUpdate_FallaIntermedia_BadRequestConEscriturasParciales(t *testing.T) {
	f := newFixture()
	b1, b2 := f.brand("B1"), f.brand("B2")
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C", Brands: refs(b1)})
	f.store.FailOn("brands.PullCategories", errors.New("conexión perdida"))

	_, err := f.categories.Update(f.ctx, c.Hex(), dto.UpdateCategoryRequest{Brands: dto.Some(refs(b2))})
	require.ErrorIs(t, err, domain.ErrBadRequest)
	var bre *domain.BadRequestError
	require.ErrorAs(t, err, &bre)
	assert.Contains(t, err.Error(), "conexión perdida")

	// sin transacción, lo escrito antes de la falla queda
	assert.Equal(t, []reference.Reference{reference.Bare{ID: b2}}, f.store.Category(c).Brands)
	assert.True(t, brandCategories(f, b2).Has(c))
	assert.True(t, brandCategories(f, b1).Has(c), "el pull que falló no se aplicó")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_LoteConFaltantes(t *testing.T) {
	f := newFixture()
	x := f.category(t, dto.CreateCategoryRequest{CategoryName: "X"})
	z := f.category(t, dto.CreateCategoryRequest{CategoryName: "Z"})
	y := reference.NewID()

	out, err := f.categories.Delete(f.ctx, dto.BulkDeleteRequest{IDs: []string{x.Hex(), y.Hex(), z.Hex()}})
	require.NoError(t, err)
	assert.Equal(t, &dto.BulkDeleteResponse{Requested: 3, Deleted: 2, NotFound: []string{y.Hex()}}, out)
}

func TestDelete_IDInvalidoFallaTodoElLote(t *testing.T) {
	f := newFixture()
	x := f.category(t, dto.CreateCategoryRequest{CategoryName: "X"})

	_, err := f.categories.Delete(f.ctx, dto.BulkDeleteRequest{IDs: []string{x.Hex(), "nope"}})
	require.ErrorIs(t, err, domain.ErrInvalidIdentifier)
	assert.NotNil(t, f.store.Category(x))
	assert.Zero(t, f.store.Calls("categories.FindExisting"))
}

func TestDelete_DesprendeReferenciasInversas(t *testing.T) {
	f := newFixture()
	b1 := f.brand("B1")
	p := f.category(t, dto.CreateCategoryRequest{CategoryName: "P"})
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C", RootCategoryID: strPtr(p.Hex()), Brands: refs(b1)})
	child := f.category(t, dto.CreateCategoryRequest{CategoryName: "Nieta", RootCategoryID: strPtr(c.Hex())})

	_, err := f.categories.Delete(f.ctx, dto.BulkDeleteRequest{IDs: []string{c.Hex()}})
	require.NoError(t, err)

	assert.Nil(t, f.store.Category(c))
	assert.Zero(t, brandCategories(f, b1).Len())
	assert.Empty(t, f.store.Category(p).SubCategories)
	assert.Nil(t, f.store.Category(child).RootCategoryID)
}
