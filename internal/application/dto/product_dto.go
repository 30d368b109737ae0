package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU           string           `json:"sku" validate:"required,min=1,max=100"`
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	IsOnSale      bool             `json:"is_on_sale"`
	IsNew         bool             `json:"is_new"`
	Priority      int              `json:"priority"`
	Category      string           `json:"category"`
	Brand         string           `json:"brand"`
	BaseStock     int              `json:"base_stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto. No incluye stock:
// el stock base se edita con su endpoint propio y total_stock siempre es derivado.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	IsOnSale      *bool            `json:"is_on_sale"`
	IsNew         *bool            `json:"is_new"`
	Active        *bool            `json:"active"`
	Priority      *int             `json:"priority"`
	Category      *string          `json:"category"`
	Brand         *string          `json:"brand"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string           `json:"id"`
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	IsOnSale      bool             `json:"is_on_sale"`
	IsNew         bool             `json:"is_new"`
	Active        bool             `json:"active"`
	Priority      int              `json:"priority"`
	Category      string           `json:"category,omitempty"`
	Brand         string           `json:"brand,omitempty"`
	BaseStock     int              `json:"base_stock"`
	TotalStock    int              `json:"total_stock"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
