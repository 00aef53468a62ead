package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/application/reports"
)

// ReportHandler maneja las consultas de reportes y el dashboard.
type ReportHandler struct {
	useCase *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(useCase *reports.UseCase) *ReportHandler {
	return &ReportHandler{useCase: useCase}
}

// Dashboard GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.useCase.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Revenue GET /api/reports/revenue
func (h *ReportHandler) Revenue(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	points, err := h.useCase.RevenueByPeriod(c.Context(), c.Query("group_by", "day"), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"revenue": points})
}

// TopSelling GET /api/reports/top-selling
func (h *ReportHandler) TopSelling(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	items, err := h.useCase.TopSelling(c.Context(), q, c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// Profitability GET /api/reports/profitability
func (h *ReportHandler) Profitability(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	items, err := h.useCase.Profitability(c.Context(), q, c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// InventoryValue GET /api/reports/inventory-value
func (h *ReportHandler) InventoryValue(c *fiber.Ctx) error {
	resp, err := h.useCase.InventoryValue(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PaymentMethods GET /api/reports/payment-methods
func (h *ReportHandler) PaymentMethods(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	methods, err := h.useCase.SalesByPaymentMethod(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"payment_methods": methods})
}
