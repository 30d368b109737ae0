package repository

import "github.com/muycriollo/catalogo-api/internal/domain/entity"

// VariantRepository define el puerto de persistencia para las entradas del
// catálogo de variantes (pares eje/valor por producto).
type VariantRepository interface {
	Create(v *entity.ProductVariant) error
	ListByProduct(productID string) ([]entity.ProductVariant, error)
	// Delete borra una entrada del catálogo. No toca las combinaciones: eso lo
	// decide la reconciliación en la próxima regeneración de la matriz.
	Delete(id string) error
}
