package dto

// CreateVariantRequest entrada para agregar una entrada (eje, valor) al
// catálogo de variantes de un producto.
type CreateVariantRequest struct {
	Axis  string `json:"axis" validate:"required,min=1,max=50"`
	Value string `json:"value" validate:"required,min=1,max=100"`
}

// VariantResponse salida de una entrada del catálogo de variantes.
type VariantResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Axis      string `json:"axis"`
	Value     string `json:"value"`
}

// CombinationResponse salida de una combinación de la matriz.
type CombinationResponse struct {
	ID         string            `json:"id"`
	ProductID  string            `json:"product_id"`
	Attributes map[string]string `json:"attributes"`
	Stock      int               `json:"stock"`
}

// MatrixResponse salida de la regeneración de la matriz. Si el catálogo quedó
// sin ejes y hay combinaciones, RequiresConfirmation viene en true y nada se
// persistió: el caller debe repetir con confirm=true para colapsar la matriz.
type MatrixResponse struct {
	Combinations         []CombinationResponse `json:"combinations"`
	Deleted              int                   `json:"deleted"`
	TotalStock           int                   `json:"total_stock"`
	RequiresConfirmation bool                  `json:"requires_confirmation"`
}

// SetStockRequest entrada para fijar el stock de una combinación.
type SetStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// SetBaseStockRequest entrada para fijar el stock base (solo sin combinaciones).
type SetBaseStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// StockResponse salida de un edit de stock: la combinación (si aplica) y el
// total recalculado en la misma transacción.
type StockResponse struct {
	Combination *CombinationResponse `json:"combination,omitempty"`
	TotalStock  int                  `json:"total_stock"`
}
