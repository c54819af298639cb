// seed carga un catálogo de ejemplo (marcas, categorías y artículos) a través de los casos
// de uso, de modo que los lados inversos de cada relación quedan poblados por el propio
// orquestador.
//
// Uso: go run ./cmd/seed -file catalog.json [-charset latin1]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/catalog"
	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
	"github.com/jhoicas/fakeshop-admin-api/internal/application/usecase"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/fakeshop-admin-api/pkg/config"
	"github.com/jhoicas/fakeshop-admin-api/pkg/logger"
)

func main() {
	file := flag.String("file", "catalog.json", "fixture JSON con brands, categories e items")
	charset := flag.String("charset", "utf-8", "codificación del archivo (utf-8, latin1, windows-1252)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir fixture")
	}
	fx, err := decodeFixture(f, *charset)
	_ = f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("leer fixture")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = log.WithContext(ctx)

	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	policy, err := reference.NewPolicy(cfg.Catalog.BrandsForm, cfg.Catalog.SubCategoriesForm)
	if err != nil {
		log.Fatal().Err(err).Msg("forma de referencias")
	}
	db := client.Database(cfg.Mongo.Database)
	categoryRepo := mongodb.NewCategoryRepository(db, policy)
	brandRepo := mongodb.NewBrandRepository(db, policy)
	tx := mongodb.NewTxRunner(client, cfg.Mongo.Transactions)
	brandUC := catalog.NewBrandUseCase(brandRepo, categoryRepo, tx, policy, cfg.Catalog.ListLimit)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo, brandRepo, tx, policy, cfg.Catalog.ListLimit)
	itemUC := usecase.NewItemUseCase(mongodb.NewItemRepository(db), cfg.Catalog.ItemListLimit)

	brandIDs := map[string]string{}
	for _, b := range fx.Brands {
		out, err := brandUC.Create(ctx, dto.CreateBrandRequest{BrandName: b.BrandName, BrandSymbol: b.BrandSymbol, BrandIcon: b.BrandIcon})
		if err != nil {
			log.Fatal().Err(err).Str("brand", b.BrandName).Msg("crear marca")
		}
		brandIDs[b.BrandName] = out.ID
	}

	categoryIDs := map[string]string{}
	for _, s := range fx.Categories {
		req, err := categoryRequest(s, brandIDs, categoryIDs)
		if err != nil {
			log.Fatal().Err(err).Msg("fixture inválido")
		}
		out, err := categoryUC.Create(ctx, req)
		if err != nil {
			log.Fatal().Err(err).Str("category", s.CategoryName).Msg("crear categoría")
		}
		categoryIDs[s.CategoryName] = out.ID
	}

	for _, it := range fx.Items {
		if _, err := itemUC.Create(ctx, it); err != nil {
			log.Fatal().Err(err).Str("item", it.Name).Msg("crear artículo")
		}
	}

	log.Info().
		Int("brands", len(fx.Brands)).
		Int("categories", len(fx.Categories)).
		Int("items", len(fx.Items)).
		Msg("catálogo cargado")
}
