package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/catalog"
	"github.com/jhoicas/fakeshop-admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *catalog.CategoryUseCase
	BrandUC    *catalog.BrandUseCase
	ItemUC     *usecase.ItemUseCase
	Health     Pinger
}

// Router registra las rutas de administración.
func Router(app fiber.Router, deps RouterDeps) {
	admin := app.Group("/admin")

	admin.Get("/health", NewHealthHandler(deps.Health).Check)

	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Delete("/", categoryHandler.Delete)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", categoryHandler.Update)

	brands := admin.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Get("/", brandHandler.List)
	brands.Post("/", brandHandler.Create)
	brands.Delete("/", brandHandler.Delete)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Patch("/:id", brandHandler.Update)

	items := admin.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Delete("/", itemHandler.Delete)
	items.Get("/:id", itemHandler.GetByID)
	items.Patch("/:id", itemHandler.Update)
}
