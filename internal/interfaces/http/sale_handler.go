package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/application/sales"
)

// SaleHandler maneja el ciclo de vida de las ventas: registro, consulta,
// cancelación y recibo en PDF.
type SaleHandler struct {
	useCase *sales.UseCase
	receipt sales.ReceiptGenerator
}

// NewSaleHandler construye el handler.
func NewSaleHandler(useCase *sales.UseCase, receipt sales.ReceiptGenerator) *SaleHandler {
	return &SaleHandler{useCase: useCase, receipt: receipt}
}

// Create POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.useCase.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.useCase.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.SaleListQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	resp, err := h.useCase.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Cancel PUT /api/sales/:id/cancel
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.useCase.Cancel(c.Context(), c.Params("id"), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Receipt GET /api/sales/:id/receipt
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	sale, err := h.useCase.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	pdf, err := h.receipt.GenerateReceipt(c.Context(), sale)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s.pdf", sale.Code))
	return c.Send(pdf)
}
