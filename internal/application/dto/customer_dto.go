package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name     string     `json:"name"`
	Phone    string     `json:"phone,omitempty"` // único si no está vacío
	Email    string     `json:"email,omitempty"`
	Address  string     `json:"address,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id (campos opcionales).
type UpdateCustomerRequest struct {
	Name     *string    `json:"name,omitempty"`
	Phone    *string    `json:"phone,omitempty"`
	Email    *string    `json:"email,omitempty"`
	Address  *string    `json:"address,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID       string     `json:"id"`
	Code     string     `json:"code"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone,omitempty"`
	Email    string     `json:"email,omitempty"`
	Address  string     `json:"address,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	IsActive bool       `json:"is_active"`
}

// CustomerListResponse página de clientes.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Page      PageResponse       `json:"page"`
}

// CustomerAnalyticsResponse agregado histórico de compras del cliente.
type CustomerAnalyticsResponse struct {
	Customer   CustomerResponse  `json:"customer"`
	Days       int               `json:"days"`
	SaleCount  int               `json:"sale_count"`
	TotalSpent decimal.Decimal   `json:"total_spent"`
	AvgSale    decimal.Decimal   `json:"avg_sale"`
	LastSaleAt *time.Time        `json:"last_sale_at,omitempty"`
	TopItems   []TopItemResponse `json:"top_items"`
}
