package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

func TestCategoryDoc_IdaYVuelta(t *testing.T) {
	parent, b1, child := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	in := &entity.Category{
		ID:             primitive.NewObjectID(),
		Name:           "Audio",
		RootCategoryID: &parent,
		SubCategories:  []reference.Reference{reference.Wrapped{Key: "subCategoryId", ID: child}},
		Brands:         []reference.Reference{reference.Bare{ID: b1}},
	}

	raw, err := bson.Marshal(newCategoryDoc(in))
	require.NoError(t, err)

	var doc categoryDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))
	out, err := doc.toEntity(reference.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeRefs_EntradaIlegible(t *testing.T) {
	_, err := decodeRefs(bson.A{bson.D{{Key: "brandId", Value: "no-es-id"}}}, "brandId", "brands")
	assert.Error(t, err)
}

func TestDecodePrice(t *testing.T) {
	p, err := decodePrice(int64(12))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12).Equal(p))

	p, err = decodePrice(nil)
	require.NoError(t, err)
	assert.True(t, p.IsZero())

	_, err = decodePrice(true)
	assert.Error(t, err)
}

func TestVariants(t *testing.T) {
	id := primitive.NewObjectID()
	v := variants("brandId", []reference.ID{id})
	assert.Equal(t, bson.A{
		id,
		id.Hex(),
		bson.D{{Key: "brandId", Value: id}},
		bson.D{{Key: "brandId", Value: id.Hex()}},
	}, v)
	assert.Equal(t, bson.M{}, idFilter(nil))
}
