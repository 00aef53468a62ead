package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/petshop-api/internal/application/customers"
	"github.com/jcastro/petshop-api/internal/application/dto"
)

// CustomerHandler maneja las peticiones de clientes.
type CustomerHandler struct {
	useCase *customers.UseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(useCase *customers.UseCase) *CustomerHandler {
	return &CustomerHandler{useCase: useCase}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.useCase.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.useCase.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.useCase.List(c.Query("search"), c.QueryBool("active_only"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.useCase.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.useCase.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Analytics GET /api/customers/:id/analytics
func (h *CustomerHandler) Analytics(c *fiber.Ctx) error {
	resp, err := h.useCase.Analytics(c.Context(), c.Params("id"), c.QueryInt("days"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
