package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facility-api/internal/application/dto"
	"github.com/jhoicas/facility-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category, anidadas bajo el
// location y el department del path salvo Delete, que opera solo por id.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create POST /locations/:locationID/departments/:departmentID/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("invalid request body"))
	}
	return c.JSON(h.uc.Create(c.Context(), c.Params("locationID"), c.Params("departmentID"), in))
}

// List GET /locations/:locationID/departments/:departmentID/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Context(), c.Params("locationID"), c.Params("departmentID")))
}

// GetByID GET /locations/:locationID/departments/:departmentID/categories/:categoryID
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(c.Context(), c.Params("locationID"), c.Params("departmentID"), c.Params("categoryID")))
}

// Update PUT /locations/:locationID/departments/:departmentID/categories/:categoryID
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("invalid request body"))
	}
	return c.JSON(h.uc.Update(c.Context(), c.Params("locationID"), c.Params("departmentID"), c.Params("categoryID"), in))
}

// Delete DELETE /categories/:categoryID
// La ruta no declara ancestros: el borrado no verifica el padre.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	return c.JSON(h.uc.Delete(c.Context(), c.Params("categoryID")))
}
