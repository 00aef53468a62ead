package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/petshop-api/internal/application/catalog"
	"github.com/jcastro/petshop-api/internal/application/dto"
)

// ItemTypeHandler maneja las peticiones de categorías del catálogo.
type ItemTypeHandler struct {
	uc *catalog.ItemTypeUseCase
}

// NewItemTypeHandler construye el handler.
func NewItemTypeHandler(uc *catalog.ItemTypeUseCase) *ItemTypeHandler {
	return &ItemTypeHandler{uc: uc}
}

// Create POST /api/item-types
func (h *ItemTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	itemType, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(itemType)
}

// List GET /api/item-types
func (h *ItemTypeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	itemTypes, pageInfo, err := h.uc.List(c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"item_types": itemTypes, "page": pageInfo})
}

// ListActive GET /api/item-types/active
func (h *ItemTypeHandler) ListActive(c *fiber.Ctx) error {
	itemTypes, err := h.uc.ListActive()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"item_types": itemTypes})
}

// GetByID GET /api/item-types/:id
func (h *ItemTypeHandler) GetByID(c *fiber.Ctx) error {
	itemType, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(itemType)
}

// Update PUT /api/item-types/:id
func (h *ItemTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	itemType, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(itemType)
}

// Delete DELETE /api/item-types/:id
func (h *ItemTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
