package variant

import (
	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
)

// TotalStock calcula el stock total del producto: Σ stock de combinaciones si
// hay alguna, o el stock base si no hay ninguna. Es la única regla válida para
// derivar total_stock; ningún otro camino debe escribirlo directamente.
func TotalStock(combinations []entity.Combination, baseStock int) int {
	if len(combinations) == 0 {
		return baseStock
	}
	total := 0
	for _, c := range combinations {
		total += c.Stock
	}
	return total
}

// SetStock fija el stock de una combinación por ID y devuelve la lista
// actualizada junto con el total recalculado. No muta la lista recibida: con
// stock negativo devuelve domain.ErrStockOutOfRange y con ID desconocido
// domain.ErrNotFound, dejando el estado previo intacto.
func SetStock(combinations []entity.Combination, combinationID string, stock int) ([]entity.Combination, int, error) {
	if stock < 0 {
		return nil, 0, domain.ErrStockOutOfRange
	}
	updated := make([]entity.Combination, len(combinations))
	copy(updated, combinations)
	found := false
	for i := range updated {
		if updated[i].ID == combinationID {
			updated[i].Stock = stock
			found = true
			break
		}
	}
	if !found {
		return nil, 0, domain.ErrNotFound
	}
	return updated, TotalStock(updated, 0), nil
}
