package http

import (
	"github.com/gofiber/fiber/v2"

	appauth "github.com/channelry/merchant-api/internal/application/auth"
	appcatalog "github.com/channelry/merchant-api/internal/application/catalog"
	"github.com/channelry/merchant-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *appauth.UseCase
	ProductUC *usecase.ProductUseCase
	MenuUC    *usecase.MenuUseCase
	CatalogUC *appcatalog.UseCase
	Actioner  *appcatalog.Actioner
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:uid", productHandler.GetByUID)
	products.Put("/:uid", productHandler.Update)

	// Menus (protegido)
	menus := protected.Group("/menus")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menus.Post("/", menuHandler.Create)
	menus.Get("/", menuHandler.List)

	// Inventory (protegido). Las rutas fijas van antes que las de
	// parámetros para que /create y /perform no se lean como uid/sku.
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.CatalogUC, deps.Actioner)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/create", inventoryHandler.Create)
	inventory.Post("/perform", inventoryHandler.Perform)
	inventory.Post("/:uid/create", inventoryHandler.CreateForProduct)
	inventory.Get("/:uid/:sku", inventoryHandler.Retrieve)
	inventory.Put("/:uid/:sku", inventoryHandler.Update)
}
