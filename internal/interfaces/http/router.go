package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facility-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LocationUC   *usecase.LocationUseCase
	DepartmentUC *usecase.DepartmentUseCase
	CategoryUC   *usecase.CategoryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Locations (raíz de la jerarquía)
	locationHandler := NewLocationHandler(deps.LocationUC)
	app.Post("/locations", locationHandler.Create)
	app.Get("/locations", locationHandler.List)
	app.Get("/locations/:locationID", locationHandler.GetByID)
	app.Put("/locations/:locationID", locationHandler.Update)
	app.Delete("/locations/:locationID", locationHandler.Delete)

	// Departments, anidados bajo su location
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	app.Post("/locations/:locationID/departments", departmentHandler.Create)
	app.Get("/locations/:locationID/departments", departmentHandler.List)
	app.Get("/locations/:locationID/departments/:departmentID", departmentHandler.GetByID)
	app.Put("/locations/:locationID/departments/:departmentID", departmentHandler.Update)
	app.Delete("/departments/:departmentID", departmentHandler.Delete)

	// Categories, anidadas bajo su department
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	app.Post("/locations/:locationID/departments/:departmentID/categories", categoryHandler.Create)
	app.Get("/locations/:locationID/departments/:departmentID/categories", categoryHandler.List)
	app.Get("/locations/:locationID/departments/:departmentID/categories/:categoryID", categoryHandler.GetByID)
	app.Put("/locations/:locationID/departments/:departmentID/categories/:categoryID", categoryHandler.Update)
	app.Delete("/categories/:categoryID", categoryHandler.Delete)
}
