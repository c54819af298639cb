package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/catalog"
	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
)

// BrandHandler maneja las peticiones HTTP para Brand.
type BrandHandler struct {
	uc *catalog.BrandUseCase
}

// NewBrandHandler construye el handler.
func NewBrandHandler(uc *catalog.BrandUseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// List godoc
// @Summary      Listar marcas
// @Tags         brands
// @Produce      json
// @Success      200  {array}   dto.BrandResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /admin/brands [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener marca por ID
// @Tags         brands
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  dto.BrandResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/brands/{id} [get]
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear marca
// @Description  Inserta la marca y la agrega a Category.brands de cada categoría de categoryIdList.
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "Datos de la marca"
// @Success      201   {object}  dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/brands [post]
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar marca
// @Description  Actualización parcial; los cambios en categoryIdList se reflejan en Category.brands.
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la marca"
// @Param        body  body  dto.UpdateBrandRequest  true  "Campos a actualizar"
// @Success      202   {object}  dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/brands/{id} [patch]
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBrandRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// Delete godoc
// @Summary      Borrar marcas en lote
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkDeleteRequest  true  "IDs a borrar"
// @Success      200   {object}  dto.BulkDeleteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/brands [delete]
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
