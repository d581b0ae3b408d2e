package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Directorio-api/internal/application/catalog"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
)

// ShopHandler maneja las peticiones HTTP para Shop.
type ShopHandler struct {
	uc *catalog.ShopUseCase
}

// NewShopHandler construye el handler.
func NewShopHandler(uc *catalog.ShopUseCase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// List godoc
// @Summary      Listar shops (más recientes primero, con su categoría)
// @Tags         shops
// @Produce      json
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Success      200  {array}  dto.ShopListItem
// @Router       /api/shops [get]
func (h *ShopHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("category_id"), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de shop: shop + categoría + menú completo ordenado
// @Tags         shops
// @Produce      json
// @Param        id   path  string  true  "ID del shop"
// @Success      200  {object}  dto.ShopDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shops/{id} [get]
func (h *ShopHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDetail(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear shop
// @Tags         shops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShopRequest  true  "Datos del shop"
// @Success      201   {object}  dto.ShopResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shops [post]
func (h *ShopHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar shop (parcial)
// @Tags         shops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del shop"
// @Param        body  body  dto.UpdateShopRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ShopResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shops/{id} [put]
func (h *ShopHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar shop (cascada sobre sus ítems de menú)
// @Tags         shops
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del shop"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shops/{id} [delete]
func (h *ShopHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "shop eliminado"})
}
