package variant

import (
	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
)

// ReconcileResult es la salida de la reconciliación: la nueva lista de
// combinaciones (candidatas, con identidad y stock preservados donde hubo
// coincidencia) y la lista de combinaciones persistidas que quedaron
// inalcanzables y deben borrarse.
type ReconcileResult struct {
	Combinations []entity.Combination
	Deletions    []entity.Combination
	// NeedsConfirmation se activa cuando el catálogo quedó sin ejes y existen
	// combinaciones: colapsar la matriz descarta todo el stock por variante,
	// así que no se procede sin confirmación explícita del admin.
	NeedsConfirmation bool
}

// Reconcile cruza los AttributeSet candidatos con las combinaciones ya
// persistidas del producto. Para cada candidato busca una combinación con
// AttributeSet igual (sin importar el orden de claves): si existe se conserva
// tal cual (mismo ID y stock); si no, se crea nueva con stock 0 y sin ID. Toda
// combinación existente no consumida por un candidato va a Deletions.
//
// Caso destructivo: candidatos vacíos con combinaciones existentes. Sin
// confirmed la función no altera nada y devuelve NeedsConfirmation junto con
// domain.ErrDestructiveRegeneration; con confirmed devuelve lista vacía y
// todas las existentes en Deletions (el producto vuelve a modo stock base).
func Reconcile(candidates []entity.AttributeSet, existing []entity.Combination, confirmed bool) (ReconcileResult, error) {
	if len(candidates) == 0 {
		if len(existing) == 0 {
			return ReconcileResult{}, nil
		}
		if !confirmed {
			return ReconcileResult{
				Combinations:      existing,
				NeedsConfirmation: true,
			}, domain.ErrDestructiveRegeneration
		}
		return ReconcileResult{Deletions: existing}, nil
	}

	// Índice por clave canónica; la igualdad de AttributeSet garantiza misma Key.
	byKey := make(map[string]int, len(existing))
	for i, c := range existing {
		byKey[c.Attributes.Key()] = i
	}

	consumed := make([]bool, len(existing))
	result := ReconcileResult{Combinations: make([]entity.Combination, 0, len(candidates))}
	for _, candidate := range candidates {
		if i, ok := byKey[candidate.Key()]; ok && !consumed[i] {
			consumed[i] = true
			result.Combinations = append(result.Combinations, existing[i])
			continue
		}
		result.Combinations = append(result.Combinations, entity.Combination{
			Attributes: candidate.Clone(),
			Stock:      0,
		})
	}
	for i, c := range existing {
		if !consumed[i] {
			result.Deletions = append(result.Deletions, c)
		}
	}
	return result, nil
}
