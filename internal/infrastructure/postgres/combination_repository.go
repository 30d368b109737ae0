package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/muycriollo/catalogo-api/internal/domain/entity"
	"github.com/muycriollo/catalogo-api/internal/domain/repository"
)

var _ repository.CombinationRepository = (*CombinationRepo)(nil)

// CombinationRepo implementación de CombinationRepository sobre PostgreSQL
// (usable con pool o tx). Los atributos se guardan como JSONB.
type CombinationRepo struct {
	q Querier
}

// NewCombinationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCombinationRepository(q Querier) *CombinationRepo {
	return &CombinationRepo{q: q}
}

// Create persiste una combinación nueva con sus atributos y stock.
func (r *CombinationRepo) Create(c *entity.Combination) error {
	query := `
		INSERT INTO product_combinations (id, product_id, attributes, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.ProductID, c.Attributes, c.Stock)
	if err != nil {
		return fmt.Errorf("insert combination: %w", err)
	}
	return nil
}

// GetByID obtiene una combinación por ID.
func (r *CombinationRepo) GetByID(id string) (*entity.Combination, error) {
	query := `
		SELECT id, product_id, attributes, stock
		FROM product_combinations WHERE id = $1`
	c, err := scanCombination(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get combination: %w", err)
	}
	return c, nil
}

// ListByProduct lista las combinaciones del producto en orden de creación.
func (r *CombinationRepo) ListByProduct(productID string) ([]entity.Combination, error) {
	return r.listByProduct(productID, false)
}

// ListByProductForUpdate lista las combinaciones bloqueando las filas
// (SELECT FOR UPDATE). Usar solo dentro de una transacción.
func (r *CombinationRepo) ListByProductForUpdate(productID string) ([]entity.Combination, error) {
	return r.listByProduct(productID, true)
}

func (r *CombinationRepo) listByProduct(productID string, forUpdate bool) ([]entity.Combination, error) {
	query := `
		SELECT id, product_id, attributes, stock
		FROM product_combinations WHERE product_id = $1 ORDER BY created_at, id`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list combinations: %w", err)
	}
	defer rows.Close()
	var list []entity.Combination
	for rows.Next() {
		c, err := scanCombination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan combination: %w", err)
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

// UpdateStock actualiza el stock de una combinación.
func (r *CombinationRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_combinations SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update combination stock: %w", err)
	}
	return nil
}

// DeleteByIDs elimina las combinaciones indicadas. Con lista vacía no hace nada.
func (r *CombinationRepo) DeleteByIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM product_combinations WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return fmt.Errorf("delete combinations: %w", err)
	}
	return nil
}

func scanCombination(row pgxScanner) (*entity.Combination, error) {
	var c entity.Combination
	if err := row.Scan(&c.ID, &c.ProductID, &c.Attributes, &c.Stock); err != nil {
		return nil, err
	}
	return &c, nil
}
