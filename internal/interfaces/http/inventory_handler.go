package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones de inventario: recepciones, consultas,
// ajustes y stock mínimo.
type InventoryHandler struct {
	stockIn *inventory.StockInUseCase
	query   *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stockIn *inventory.StockInUseCase, query *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{stockIn: stockIn, query: query}
}

// StockIn POST /api/inventory/stock-in
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.stockIn.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.query.List(c.Query("search"), c.QueryBool("low_stock_only"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByItem GET /api/inventory/:itemId
func (h *InventoryHandler) GetByItem(c *fiber.Ctx) error {
	row, err := h.query.GetByItem(c.Params("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

// LowStock GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	rows, err := h.query.LowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"inventory": rows, "total": len(rows)})
}

// UpdateMinStock PUT /api/inventory/min-stock/:itemId
func (h *InventoryHandler) UpdateMinStock(c *fiber.Ctx) error {
	var in dto.UpdateMinStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.query.UpdateMinStock(c.Params("itemId"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Adjust POST /api/inventory/adjust
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.query.Adjust(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// History GET /api/inventory/stock-in
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	fromDate, err := parseDateQuery(c.Query("from_date"), false)
	if err != nil {
		return respondError(c, err)
	}
	toDate, err := parseDateQuery(c.Query("to_date"), true)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.query.History(fromDate, toDate, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// parseDateQuery interpreta YYYY-MM-DD; endOfDay desplaza al final del día
// para que el rango sea inclusivo.
func parseDateQuery(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, errInvalidDate(value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t, nil
}
