package postgres

import (
	"context"
	"fmt"

	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
	"github.com/muycriollo/catalogo-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación de VariantRepository sobre PostgreSQL (usable con pool o tx).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

// Create persiste una entrada (eje, valor) del catálogo de variantes.
func (r *VariantRepo) Create(v *entity.ProductVariant) error {
	query := `
		INSERT INTO product_variants (id, product_id, axis, value, created_at)
		VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(context.Background(), query, v.ID, v.ProductID, v.Axis, v.Value)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variant: %w", err)
	}
	return nil
}

// ListByProduct lista las entradas del producto en orden de inserción.
// El orden importa: define el orden de ejes y valores del generador.
func (r *VariantRepo) ListByProduct(productID string) ([]entity.ProductVariant, error) {
	query := `
		SELECT id, product_id, axis, value
		FROM product_variants WHERE product_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductVariant
	for rows.Next() {
		var v entity.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Axis, &v.Value); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Delete elimina una entrada por ID.
func (r *VariantRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_variants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete variant: %w", err)
	}
	return nil
}
