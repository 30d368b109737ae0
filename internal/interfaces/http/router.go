package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muycriollo/catalogo-api/internal/application/auth"
	"github.com/muycriollo/catalogo-api/internal/application/catalog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *catalog.ProductUseCase
	VariantUC      *catalog.VariantUseCase
	MatrixUC       *catalog.MatrixUseCase
	AvailabilityUC *catalog.AvailabilityUseCase
	LabelUC        *catalog.LabelUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Vitrina (público): catálogo y disponibilidad por opción
	productHandler := NewProductHandler(deps.ProductUC)
	availabilityHandler := NewAvailabilityHandler(deps.AvailabilityUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/availability", availabilityHandler.Get)

	// Panel admin (protegido: Bearer Token + rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole("admin"))

	adminProducts := admin.Group("/products")
	adminProducts.Post("/", productHandler.Create)
	adminProducts.Put("/:id", productHandler.Update)
	adminProducts.Delete("/:id", productHandler.Delete)

	// Catálogo de variantes (eje, valor)
	variantHandler := NewVariantHandler(deps.VariantUC)
	adminProducts.Post("/:id/variants", variantHandler.Add)
	adminProducts.Get("/:id/variants", variantHandler.List)
	admin.Delete("/variants/:variantId", variantHandler.Delete)

	// Matriz de combinaciones y stock
	matrixHandler := NewMatrixHandler(deps.MatrixUC)
	adminProducts.Post("/:id/matrix", matrixHandler.Generate)
	adminProducts.Put("/:id/base-stock", matrixHandler.SetBaseStock)
	admin.Put("/combinations/:combinationId/stock", matrixHandler.SetStock)

	// Etiquetas de stock en PDF
	labelHandler := NewLabelHandler(deps.LabelUC)
	adminProducts.Get("/:id/labels", labelHandler.Download)
}
