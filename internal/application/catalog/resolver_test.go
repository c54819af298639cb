package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/catalog"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/testutil/memstore"
)

func TestResolveExisting_UnaSolaConsulta(t *testing.T) {
	store := memstore.New()
	a, b := reference.NewID(), reference.NewID()
	store.PutBrand(&entity.Brand{ID: a, Name: "A"})

	existing, missing, err := catalog.ResolveExisting(context.Background(), store.Brands(),
		[]string{b.Hex(), a.Hex(), b.Hex()})
	require.NoError(t, err)

	assert.Equal(t, []reference.ID{a}, existing.IDs())
	assert.Equal(t, []string{b.Hex()}, missing)
	assert.Equal(t, 1, store.Calls("brands.FindExisting"))
}

func TestResolveExisting_TodosExisten(t *testing.T) {
	store := memstore.New()
	a := reference.NewID()
	store.PutBrand(&entity.Brand{ID: a, Name: "A"})

	_, missing, err := catalog.ResolveExisting(context.Background(), store.Brands(), []string{a.Hex()})
	require.NoError(t, err)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestResolveExisting_IDMalFormado(t *testing.T) {
	store := memstore.New()

	_, _, err := catalog.ResolveExisting(context.Background(), store.Brands(), []string{reference.NewID().Hex(), "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
	assert.Zero(t, store.Calls("brands.FindExisting"))
}
