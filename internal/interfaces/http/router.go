package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/catalog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *catalog.CategoryUseCase
	ShopUC     *catalog.ShopUseCase
	MenuUC     *catalog.MenuUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas del catálogo son
// públicas (el directorio se navega anónimo); toda mutación requiere Bearer
// Token con claim de admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	admin := api.Group("/admin")
	authHandler := NewAuthHandler(deps.AuthUC)
	admin.Post("/login", authHandler.Login)

	requireAdmin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireAdmin()}

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", append(requireAdmin, categoryHandler.Create)...)
	categories.Put("/:id", append(requireAdmin, categoryHandler.Update)...)
	categories.Delete("/:id", append(requireAdmin, categoryHandler.Delete)...)

	// Shops
	shops := api.Group("/shops")
	shopHandler := NewShopHandler(deps.ShopUC)
	shops.Get("/", shopHandler.List)
	shops.Get("/:id", shopHandler.GetByID)
	shops.Post("/", append(requireAdmin, shopHandler.Create)...)
	shops.Put("/:id", append(requireAdmin, shopHandler.Update)...)
	shops.Delete("/:id", append(requireAdmin, shopHandler.Delete)...)

	// Menus
	menus := api.Group("/menus")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menus.Get("/shop/:shopId", menuHandler.ListByShop)
	menus.Post("/", append(requireAdmin, menuHandler.Create)...)
	menus.Put("/:id", append(requireAdmin, menuHandler.Update)...)
	menus.Delete("/:id", append(requireAdmin, menuHandler.Delete)...)
}
