// seed puebla el directorio con datos de demo de forma idempotente: un
// admin (upsert por email), categorías, shops e ítems de menú vía las
// operaciones ensure del catálogo. Ejecutarlo dos veces no duplica filas.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Directorio-api/internal/application/catalog"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Directorio-api/pkg/config"
	"github.com/jhoicas/Directorio-api/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración de esquema")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	shopRepo := postgres.NewShopRepository(pool)
	menuRepo := postgres.NewMenuItemRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	categoryUC := catalog.NewCategoryUseCase(categoryRepo, shopRepo)
	shopUC := catalog.NewShopUseCase(shopRepo, categoryRepo, menuRepo)
	menuUC := catalog.NewMenuUseCase(menuRepo, shopRepo)

	// Admin: upsert por email. Siempre se escribe hash bcrypt, nunca texto plano.
	const adminEmail = "admin@example.com"
	const adminPassword = "password123"
	existing, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now()
		admin := &entity.User{
			ID:           uuid.New().String(),
			Email:        adminEmail,
			PasswordHash: string(hash),
			Name:         "Super Admin",
			Mobile:       "1234567890",
			IsAdmin:      true,
			Status:       entity.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
	}

	// Categorías principales
	beverages := ensureCategory(log, categoryUC, "Beverages", "https://picsum.photos/seed/bev/200/200")
	fastFood := ensureCategory(log, categoryUC, "Fast Food", "https://picsum.photos/seed/ff/200/200")
	ensureCategory(log, categoryUC, "Desserts", "https://picsum.photos/seed/des/200/200")

	// Shops
	cafe := ensureShop(log, shopUC, dto.CreateShopRequest{
		CategoryID:  beverages.ID,
		Name:        "Cafe Good",
		LogoURL:     "https://picsum.photos/seed/cafe/600/400",
		Description: "A cozy cafe for great coffee and snacks",
		Address:     "123 Coffee St",
		PhoneNumber: "9876543210",
	})
	burger := ensureShop(log, shopUC, dto.CreateShopRequest{
		CategoryID:  fastFood.ID,
		Name:        "Burger Barn",
		LogoURL:     "https://picsum.photos/seed/burger/600/400",
		Description: "Tasty burgers and fries",
		Address:     "456 Burger Ave",
		PhoneNumber: "9123456780",
	})

	// Menús
	ensureMenuItem(log, menuUC, cafe.ID, "Cappuccino", "Rich espresso with milk foam", 120, "https://picsum.photos/seed/capp/200/200", "Hot Beverages", false)
	ensureMenuItem(log, menuUC, cafe.ID, "Blueberry Muffin", "Freshly baked muffin", 80, "https://picsum.photos/seed/muff/200/200", "Bakery", true)
	ensureMenuItem(log, menuUC, burger.ID, "Classic Burger", "Beef patty with lettuce and tomato", 220, "https://picsum.photos/seed/classic/200/200", "Main", false)
	ensureMenuItem(log, menuUC, burger.ID, "Fries", "Crispy golden fries", 70, "https://picsum.photos/seed/fries/200/200", "Sides", true)

	categories, _ := categoryRepo.Count()
	shops, _ := shopRepo.Count()
	menus, _ := menuRepo.Count()
	log.Info().
		Str("admin", adminEmail).
		Int64("categories", categories).
		Int64("shops", shops).
		Int64("menus", menus).
		Msg("seeding completo")
}

func ensureCategory(log *logger.Logger, uc *catalog.CategoryUseCase, name, imageURL string) *dto.CategoryResponse {
	out, err := uc.Ensure(name, imageURL, true)
	if err != nil {
		log.Fatal().Err(err).Str("category", name).Msg("ensure category")
	}
	return out
}

func ensureShop(log *logger.Logger, uc *catalog.ShopUseCase, in dto.CreateShopRequest) *dto.ShopResponse {
	out, err := uc.Ensure(in)
	if err != nil {
		log.Fatal().Err(err).Str("shop", in.Name).Msg("ensure shop")
	}
	return out
}

func ensureMenuItem(log *logger.Logger, uc *catalog.MenuUseCase, shopID, itemName, description string, price int64, imageURL, categoryName string, quickSnack bool) {
	p := decimal.NewFromInt(price)
	_, err := uc.Ensure(dto.CreateMenuItemRequest{
		ShopID:       shopID,
		ItemName:     itemName,
		Description:  description,
		Price:        &p,
		ImageURL:     imageURL,
		CategoryName: categoryName,
		IsQuickSnack: quickSnack,
	})
	if err != nil {
		log.Fatal().Err(err).Str("item", itemName).Msg("ensure menu item")
	}
}
