package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facility-api/internal/application/dto"
	"github.com/jhoicas/facility-api/internal/application/usecase"
)

// LocationHandler maneja las peticiones HTTP para Location.
// Toda respuesta es transporte 200 con el envelope {status, message|data}:
// el campo status del cuerpo es el único indicador de éxito.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create POST /locations
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("invalid request body"))
	}
	return c.JSON(h.uc.Create(c.Context(), in))
}

// List GET /locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Context()))
}

// GetByID GET /locations/:locationID
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(c.Context(), c.Params("locationID")))
}

// Update PUT /locations/:locationID
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("invalid request body"))
	}
	return c.JSON(h.uc.Update(c.Context(), c.Params("locationID"), in))
}

// Delete DELETE /locations/:locationID
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	return c.JSON(h.uc.Delete(c.Context(), c.Params("locationID")))
}
