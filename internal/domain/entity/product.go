package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// BaseStock solo aplica cuando el producto no tiene combinaciones; TotalStock es
// derivado (Σ stock de combinaciones, o BaseStock si no hay) y lo recalcula
// siempre el motor de variantes, nunca se edita a mano.
type Product struct {
	ID            string
	SKU           string
	Name          string
	Description   string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal // precio antes de oferta (solo si IsOnSale)
	IsOnSale      bool
	IsNew         bool
	Active        bool
	Priority      int
	Category      string
	Brand         string
	BaseStock     int
	TotalStock    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
