package dto

import "github.com/shopspring/decimal"

// CreateItemTypeRequest body para POST /api/item-types.
type CreateItemTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"` // default true
}

// UpdateItemTypeRequest body para PUT /api/item-types/:id (campos opcionales).
type UpdateItemTypeRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ItemTypeResponse categoría en respuestas.
type ItemTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// CreateItemRequest body para POST /api/items.
// El código se genera en el servidor; la fila de inventario se crea junto al artículo.
type CreateItemRequest struct {
	Name         string          `json:"name"`
	ItemTypeID   string          `json:"item_type_id"`
	Description  string          `json:"description,omitempty"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Unit         string          `json:"unit,omitempty"` // default "pcs"
	ImagePath    string          `json:"image_path,omitempty"`
	IsActive     *bool           `json:"is_active,omitempty"` // default true
}

// UpdateItemRequest body para PUT /api/items/:id (campos opcionales).
type UpdateItemRequest struct {
	Name         *string          `json:"name,omitempty"`
	ItemTypeID   *string          `json:"item_type_id,omitempty"`
	Description  *string          `json:"description,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	ImagePath    *string          `json:"image_path,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

// ItemResponse artículo en respuestas.
type ItemResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	ItemTypeID   string          `json:"item_type_id"`
	ItemTypeName string          `json:"item_type_name,omitempty"`
	Description  string          `json:"description,omitempty"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Unit         string          `json:"unit"`
	ImagePath    string          `json:"image_path,omitempty"`
	IsActive     bool            `json:"is_active"`
	Quantity     *int            `json:"quantity,omitempty"` // stock actual, si se consultó con inventario
}

// ItemListResponse página de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
