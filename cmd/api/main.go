package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/catalog"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/memory"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Directorio-api/internal/interfaces/http"
	"github.com/jhoicas/Directorio-api/pkg/config"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	var (
		categoryRepo repository.CategoryRepository
		shopRepo     repository.ShopRepository
		menuRepo     repository.MenuItemRepository
		userRepo     repository.UserRepository
	)

	switch cfg.DB.Driver {
	case "memory":
		// Modo dev/demo: catálogo en proceso, sin PostgreSQL.
		store := memory.NewStore()
		categoryRepo = memory.NewCategoryRepository(store)
		shopRepo = memory.NewShopRepository(store)
		menuRepo = memory.NewMenuItemRepository(store)
		userRepo = memory.NewUserRepository(store)
	default:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migración de esquema")
			}
		}
		categoryRepo = postgres.NewCategoryRepository(pool)
		shopRepo = postgres.NewShopRepository(pool)
		menuRepo = postgres.NewMenuItemRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
	}

	categoryUC := catalog.NewCategoryUseCase(categoryRepo, shopRepo)
	shopUC := catalog.NewShopUseCase(shopRepo, categoryRepo, menuRepo)
	menuUC := catalog.NewMenuUseCase(menuRepo, shopRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Directorio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ShopUC:     shopUC,
		MenuUC:     menuUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
