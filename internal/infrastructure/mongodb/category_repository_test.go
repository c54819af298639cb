package mongodb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/infrastructure/mongodb"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestCategoryRepo_GetByID_FormasLegadas(t *testing.T) {
	mt := newMock(t)
	mt.Run("lee ids como texto y listas mezcladas", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		id, parent := primitive.NewObjectID(), primitive.NewObjectID()
		b1, b2, child := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fake_shop.categories", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "categoryName", Value: "Laptops"},
			{Key: "rootCategoryId", Value: parent.Hex()},
			{Key: "subCategories", Value: bson.A{bson.D{{Key: "subCategoryId", Value: child.Hex()}}}},
			{Key: "brands", Value: bson.A{b1, b2.Hex(), bson.D{{Key: "brandId", Value: b1}}}},
		}))

		c, err := repo.GetByID(context.Background(), id)
		require.NoError(mt, err)
		require.NotNil(mt, c)
		assert.Equal(mt, "Laptops", c.Name)
		require.NotNil(mt, c.RootCategoryID)
		assert.Equal(mt, parent, *c.RootCategoryID)
		assert.Equal(mt, []reference.Reference{reference.Wrapped{Key: "subCategoryId", ID: child}}, c.SubCategories)
		assert.Equal(mt, []reference.Reference{
			reference.Bare{ID: b1},
			reference.Bare{ID: b2},
			reference.Wrapped{Key: "brandId", ID: b1},
		}, c.Brands)
		assert.Equal(mt, 2, reference.SetOf(c.Brands).Len())
	})

	mt.Run("no encontrada devuelve nil, nil", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fake_shop.categories", mtest.FirstBatch))

		c, err := repo.GetByID(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Nil(mt, c)
	})
}

func TestCategoryRepo_Create(t *testing.T) {
	mt := newMock(t)
	mt.Run("asigna id y guarda listas vacías", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c := &entity.Category{Name: "Audio"}
		require.NoError(mt, repo.Create(context.Background(), c))
		assert.False(mt, c.ID.IsZero())

		cmd := mt.GetStartedEvent().Command
		doc := cmd.Lookup("documents", "0").Document()
		assert.Equal(mt, "Audio", doc.Lookup("categoryName").StringValue())
		assert.Equal(mt, bson.TypeArray, doc.Lookup("brands").Type)
		_, err := doc.LookupErr("rootCategoryId")
		assert.Error(mt, err, "rootCategoryId ausente no se escribe")
	})

	mt.Run("clave duplicada", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		err := repo.Create(context.Background(), &entity.Category{ID: primitive.NewObjectID(), Name: "Audio"})
		assert.ErrorIs(mt, err, domain.ErrDuplicate)
	})
}

func TestCategoryRepo_FindExisting(t *testing.T) {
	mt := newMock(t)
	mt.Run("una consulta proyectando _id", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fake_shop.categories", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: a}},
		))

		found, err := repo.FindExisting(context.Background(), []reference.ID{a, b})
		require.NoError(mt, err)
		assert.True(mt, found.Has(a))
		assert.False(mt, found.Has(b))

		evt := mt.GetStartedEvent()
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, int32(1), evt.Command.Lookup("projection", "_id").Int32())
		assert.Nil(mt, mt.GetStartedEvent(), "una sola consulta")
	})

	mt.Run("sin ids no consulta", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		found, err := repo.FindExisting(context.Background(), nil)
		require.NoError(mt, err)
		assert.Zero(mt, found.Len())
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestCategoryRepo_Update(t *testing.T) {
	mt := newMock(t)
	mt.Run("padre nulo se elimina con $unset", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		name := "Sonido"
		matched, err := repo.Update(context.Background(), primitive.NewObjectID(), entity.CategoryPatch{
			Name: &name,
			Root: &entity.ParentPatch{},
		})
		require.NoError(mt, err)
		assert.True(mt, matched)

		u := mt.GetStartedEvent().Command.Lookup("updates", "0", "u").Document()
		assert.Equal(mt, "Sonido", u.Lookup("$set", "categoryName").StringValue())
		_, err = u.LookupErr("$unset", "rootCategoryId")
		assert.NoError(mt, err)
	})

	mt.Run("sin coincidencias devuelve false", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		name := "X"
		matched, err := repo.Update(context.Background(), primitive.NewObjectID(), entity.CategoryPatch{Name: &name})
		require.NoError(mt, err)
		assert.False(mt, matched)
	})
}

func TestCategoryRepo_AddBrand_DevuelveCoincidencias(t *testing.T) {
	mt := newMock(t)
	mt.Run("addToSet en forma canónica", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		brand := primitive.NewObjectID()
		n, err := repo.AddBrand(context.Background(),
			[]reference.ID{primitive.NewObjectID(), primitive.NewObjectID()}, reference.Bare{ID: brand})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), n)

		added := mt.GetStartedEvent().Command.Lookup("updates", "0", "u", "$addToSet", "brands")
		assert.Equal(mt, brand, added.ObjectID())
	})
}

func TestCategoryRepo_PullBrands_TodasLasFormas(t *testing.T) {
	mt := newMock(t)
	mt.Run("pull con oid, texto y envueltos", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}, bson.E{Key: "nModified", Value: 2}))

		brand := primitive.NewObjectID()
		require.NoError(mt, repo.PullBrands(context.Background(), nil, []reference.ID{brand}))

		cmd := mt.GetStartedEvent().Command
		filter := cmd.Lookup("updates", "0", "q").Document()
		elems, err := filter.Elements()
		require.NoError(mt, err)
		assert.Empty(mt, elems, "nil = todas las categorías")

		in, ok := cmd.Lookup("updates", "0", "u", "$pull", "brands", "$in").ArrayOK()
		require.True(mt, ok)
		values, err := in.Values()
		require.NoError(mt, err)
		require.Len(mt, values, 4)
		assert.Equal(mt, brand, values[0].ObjectID())
		assert.Equal(mt, brand.Hex(), values[1].StringValue())
		assert.Equal(mt, brand, values[2].Document().Lookup("brandId").ObjectID())
		assert.Equal(mt, brand.Hex(), values[3].Document().Lookup("brandId").StringValue())
	})
}

func TestCategoryRepo_ClearParent_SoloDelPadreIndicado(t *testing.T) {
	mt := newMock(t)
	mt.Run("filtra por rootCategoryId", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB, reference.DefaultPolicy())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		parent, child := primitive.NewObjectID(), primitive.NewObjectID()
		require.NoError(mt, repo.ClearParent(context.Background(), []reference.ID{child}, parent))

		q := mt.GetStartedEvent().Command.Lookup("updates", "0", "q").Document()
		values, err := q.Lookup("rootCategoryId", "$in").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, values, 2)
		assert.Equal(mt, parent, values[0].ObjectID())
		assert.Equal(mt, parent.Hex(), values[1].StringValue())
	})
}
