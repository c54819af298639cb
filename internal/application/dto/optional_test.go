package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
)

func TestOptional_AusenteNuloYValor(t *testing.T) {
	var in dto.UpdateCategoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"rootCategoryId": null, "brands": ["a", {"brandId": "b"}]}`), &in))

	assert.False(t, in.CategoryName.Set, "categoryName no vino en el cuerpo")
	assert.True(t, in.RootCategoryID.Set)
	assert.True(t, in.RootCategoryID.Null)
	assert.False(t, in.RootCategoryID.Present())
	assert.False(t, in.SubCategories.Set)
	require.True(t, in.Brands.Present())
	require.Len(t, in.Brands.Value, 2)
	assert.Equal(t, "a", in.Brands.Value[0].Value)
	assert.Equal(t, map[string]any{"brandId": "b"}, in.Brands.Value[1].Value)
}

func TestCleanString_RecortaYNormaliza(t *testing.T) {
	// "e" + acento combinante se compone a "é".
	assert.Equal(t, "Caf\u00e9", dto.CleanString("  Cafe\u0301 "))
}

func TestCreateItemRequest_MonedaPorDefecto(t *testing.T) {
	in := dto.CreateItemRequest{Name: " Zapato "}
	in.Normalize()
	assert.Equal(t, "Zapato", in.Name)
	assert.Equal(t, "$", in.Currency)
}
