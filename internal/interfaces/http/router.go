package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *catalog.CategoryUseCase
	SubcategoryUC *catalog.SubcategoryUseCase
	ProductUC     *catalog.ProductUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// Política de acceso (consistente en todas las rutas):
//   - Lecturas del catálogo: públicas.
//   - Escrituras: requieren Bearer Token válido.
//   - Deletes y administración de usuarios: además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Users (solo admin)
	users := api.Group("/users", authRequired, adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", authRequired, categoryHandler.Create)
	categories.Put("/:id", authRequired, categoryHandler.Update)
	categories.Delete("/:id", authRequired, adminOnly, categoryHandler.Delete)

	// Subcategories
	subcategories := api.Group("/subcategories")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	subcategories.Get("/", subcategoryHandler.List)
	subcategories.Get("/category/:categoryId", subcategoryHandler.ListByCategory)
	subcategories.Post("/", authRequired, subcategoryHandler.Create)
	subcategories.Put("/:id", authRequired, subcategoryHandler.Update)
	subcategories.Delete("/:id", authRequired, adminOnly, subcategoryHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/report", authRequired, productHandler.Report)
	products.Post("/", authRequired, productHandler.Create)
	products.Put("/:id", authRequired, productHandler.Update)
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)
}
