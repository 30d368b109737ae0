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

	"github.com/muycriollo/catalogo-api/internal/application/auth"
	"github.com/muycriollo/catalogo-api/internal/application/catalog"
	infrapdf "github.com/muycriollo/catalogo-api/internal/infrastructure/pdf"
	"github.com/muycriollo/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/muycriollo/catalogo-api/internal/interfaces/http"
	"github.com/muycriollo/catalogo-api/pkg/config"
	"github.com/muycriollo/catalogo-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	combinationRepo := postgres.NewCombinationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := catalog.NewProductUseCase(productRepo)
	variantUC := catalog.NewVariantUseCase(productRepo, variantRepo)
	matrixUC := catalog.NewMatrixUseCase(txRunner, productRepo, variantRepo, combinationRepo)
	availabilityUC := catalog.NewAvailabilityUseCase(productRepo, variantRepo, combinationRepo)

	// PDF: etiquetas de stock por combinación
	labelGenerator := infrapdf.NewMarotoLabelGenerator()
	labelUC := catalog.NewLabelUseCase(productRepo, combinationRepo, labelGenerator)

	authUC := auth.NewAuthUseCase(auth.Config{
		AdminUser:    cfg.Admin.User,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
		JWTSecret:    cfg.JWT.Secret,
		JWTIssuer:    cfg.JWT.Issuer,
		ExpMinutes:   cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		VariantUC:      variantUC,
		MatrixUC:       matrixUC,
		AvailabilityUC: availabilityUC,
		LabelUC:        labelUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
