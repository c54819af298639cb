package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

func TestBrandCreate_ReflejaEnCategorias(t *testing.T) {
	f := newFixture()
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C"})

	out, err := f.brands.Create(f.ctx, dto.CreateBrandRequest{
		BrandName:      "Acme",
		BrandSymbol:    "ACM",
		CategoryIDList: refs(c),
	})
	require.NoError(t, err)
	b, err := reference.ParseID(out.ID)
	require.NoError(t, err)

	assert.Equal(t, []any{map[string]string{"categoryId": c.Hex()}}, out.CategoryIDList)
	assert.Equal(t, []reference.Reference{reference.Bare{ID: b}}, f.store.Category(c).Brands)
}

func TestBrandCreate_CategoriaInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.brands.Create(f.ctx, dto.CreateBrandRequest{
		BrandName:      "Acme",
		BrandSymbol:    "ACM",
		CategoryIDList: refs(reference.NewID()),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBrandUpdate_DiffDeCategorias(t *testing.T) {
	f := newFixture()
	c1 := f.category(t, dto.CreateCategoryRequest{CategoryName: "C1"})
	c2 := f.category(t, dto.CreateCategoryRequest{CategoryName: "C2"})
	created, err := f.brands.Create(f.ctx, dto.CreateBrandRequest{BrandName: "Acme", BrandSymbol: "A", CategoryIDList: refs(c1)})
	require.NoError(t, err)
	b, _ := reference.ParseID(created.ID)

	out, err := f.brands.Update(f.ctx, created.ID, dto.UpdateBrandRequest{
		BrandSymbol:    dto.Some("ACM"),
		CategoryIDList: dto.Some(refs(c2)),
	})
	require.NoError(t, err)

	assert.Equal(t, "ACM", out.BrandSymbol)
	assert.Equal(t, "Acme", out.BrandName)
	assert.False(t, reference.SetOf(f.store.Category(c1).Brands).Has(b))
	assert.True(t, reference.SetOf(f.store.Category(c2).Brands).Has(b))
}

func TestBrandUpdate_NulosSeIgnoran(t *testing.T) {
	f := newFixture()
	created, err := f.brands.Create(f.ctx, dto.CreateBrandRequest{BrandName: "Acme", BrandSymbol: "A"})
	require.NoError(t, err)

	_, err = f.brands.Update(f.ctx, created.ID, dto.UpdateBrandRequest{BrandName: dto.Null[string]()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBrandUpdate_Inexistente(t *testing.T) {
	f := newFixture()

	_, err := f.brands.Update(f.ctx, reference.NewID().Hex(), dto.UpdateBrandRequest{BrandName: dto.Some("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBrandDelete_QuitaDeCategorias(t *testing.T) {
	f := newFixture()
	b1 := f.brand("B1")
	c := f.category(t, dto.CreateCategoryRequest{CategoryName: "C", Brands: refs(b1)})

	out, err := f.brands.Delete(f.ctx, dto.BulkDeleteRequest{IDs: []string{b1.Hex(), b1.Hex()}})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Requested)
	assert.Equal(t, 1, out.Deleted)
	assert.Empty(t, out.NotFound)
	assert.Nil(t, f.store.Brand(b1))
	assert.Empty(t, f.store.Category(c).Brands)
}
