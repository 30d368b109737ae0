package catalog

import (
	"context"

	"github.com/muycriollo/catalogo-api/internal/domain/entity"
	"github.com/muycriollo/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La lista de combinaciones y total_stock de un
// producto son un solo agregado: siempre se escriben juntos y dentro de la
// misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		combinationRepo repository.CombinationRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// StockLabelGenerator genera el PDF de etiquetas de góndola de un producto
// (una etiqueta por combinación, o una sola con el stock base si no hay matriz).
type StockLabelGenerator interface {
	GenerateStockLabels(ctx context.Context, product *entity.Product, combinations []entity.Combination) ([]byte, error)
}
