package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/catalog"
	"github.com/jhoicas/fakeshop-admin-api/internal/application/usecase"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/infrastructure/mongodb"
	httpRouter "github.com/jhoicas/fakeshop-admin-api/internal/interfaces/http"
	"github.com/jhoicas/fakeshop-admin-api/pkg/config"
	"github.com/jhoicas/fakeshop-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("transactions", cfg.Mongo.Transactions).
		Msg("iniciando aplicación")

	policy, err := reference.NewPolicy(cfg.Catalog.BrandsForm, cfg.Catalog.SubCategoriesForm)
	if err != nil {
		log.Fatal().Err(err).Msg("forma de referencias")
	}

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}

	db := client.Database(cfg.Mongo.Database)
	categoryRepo := mongodb.NewCategoryRepository(db, policy)
	brandRepo := mongodb.NewBrandRepository(db, policy)
	itemRepo := mongodb.NewItemRepository(db)
	txRunner := mongodb.NewTxRunner(client, cfg.Mongo.Transactions)

	categoryUC := catalog.NewCategoryUseCase(categoryRepo, brandRepo, txRunner, policy, cfg.Catalog.ListLimit)
	brandUC := catalog.NewBrandUseCase(brandRepo, categoryRepo, txRunner, policy, cfg.Catalog.ListLimit)
	itemUC := usecase.NewItemUseCase(itemRepo, cfg.Catalog.ItemListLimit)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs (solo si el JSON generado existe)
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    "Fake Shop Admin API",
		}))
	} else {
		log.Warn().Str("path", cfg.App.DocsPath).Msg("swagger deshabilitado: no se encontró el archivo")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		BrandUC:    brandUC,
		ItemUC:     itemUC,
		Health:     mongodb.NewHealthChecker(client),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cerrar conexión a MongoDB")
	}

	log.Info().Msg("aplicación detenida")
}
