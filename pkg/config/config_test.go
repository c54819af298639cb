package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fakeshop-admin-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "fakeshop-admin-api", cfg.App.Name)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "fake_shop", cfg.Mongo.Database)
	assert.False(t, cfg.Mongo.Transactions)
	assert.Equal(t, 100, cfg.Catalog.ListLimit)
	assert.Equal(t, 1000, cfg.Catalog.ItemListLimit)
	assert.Equal(t, "bare", cfg.Catalog.BrandsForm)
	assert.Equal(t, "wrapped", cfg.Catalog.SubCategoriesForm)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_AliasMongooseConnection(t *testing.T) {
	t.Setenv("MONGOOSE_CONNECTION", "mongodb://legacy:27017")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://legacy:27017", cfg.Mongo.URI)
}

func TestLoad_MongoURITienePrioridad(t *testing.T) {
	t.Setenv("MONGOOSE_CONNECTION", "mongodb://legacy:27017")
	t.Setenv("MONGO_URI", "mongodb://primary:27017")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://primary:27017", cfg.Mongo.URI)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("MONGO_TRANSACTIONS", "true")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_LIST_LIMIT", "25")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Mongo.Transactions)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.Catalog.ListLimit)
}

func TestLoad_TopeNoPositivo(t *testing.T) {
	t.Setenv("ITEM_LIST_LIMIT", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
