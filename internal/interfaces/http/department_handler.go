package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facility-api/internal/application/dto"
	"github.com/jhoicas/facility-api/internal/application/usecase"
)

// DepartmentHandler maneja las peticiones HTTP para Department, anidadas bajo
// el location del path salvo Delete, que opera solo por id.
type DepartmentHandler struct {
	uc *usecase.DepartmentUseCase
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(uc *usecase.DepartmentUseCase) *DepartmentHandler {
	return &DepartmentHandler{uc: uc}
}

// Create POST /locations/:locationID/departments
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("invalid request body"))
	}
	return c.JSON(h.uc.Create(c.Context(), c.Params("locationID"), in))
}

// List GET /locations/:locationID/departments
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Context(), c.Params("locationID")))
}

// GetByID GET /locations/:locationID/departments/:departmentID
func (h *DepartmentHandler) GetByID(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(c.Context(), c.Params("locationID"), c.Params("departmentID")))
}

// Update PUT /locations/:locationID/departments/:departmentID
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("invalid request body"))
	}
	return c.JSON(h.uc.Update(c.Context(), c.Params("locationID"), c.Params("departmentID"), in))
}

// Delete DELETE /departments/:departmentID
// La ruta no declara location: el borrado no verifica el padre.
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	return c.JSON(h.uc.Delete(c.Context(), c.Params("departmentID")))
}
