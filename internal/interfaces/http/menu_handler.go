package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Directorio-api/internal/application/catalog"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
)

// MenuHandler maneja las peticiones HTTP para MenuItem.
type MenuHandler struct {
	uc *catalog.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *catalog.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// ListByShop godoc
// @Summary      Listar ítems de un shop (orden alfabético por nombre)
// @Tags         menus
// @Produce      json
// @Param        shopId  path  string  true  "ID del shop"
// @Success      200  {array}  dto.MenuItemResponse
// @Router       /api/menus/shop/{shopId} [get]
func (h *MenuHandler) ListByShop(c *fiber.Ctx) error {
	out, err := h.uc.ListByShop(c.Params("shopId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem de menú
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menus [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo inválido o campo numérico no parseable"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem de menú (parcial)
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.UpdateMenuItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menus/{id} [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		// Un numérico presente pero no parseable ("abc") cae aquí:
		// nada se persiste y el valor almacenado queda intacto.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo inválido o campo numérico no parseable"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem de menú
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ítem de menú eliminado"})
}
