package variant

import (
	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
)

// Selection es una selección parcial del cliente: eje → valor elegido.
// Puede estar vacía o incompleta.
type Selection map[string]string

// CompleteFor indica si la selección asigna exactamente un valor a cada eje
// del catálogo.
func (s Selection) CompleteFor(c *Catalog) bool {
	if c.Empty() {
		return false
	}
	for _, axis := range c.axes {
		if s[axis] == "" {
			return false
		}
	}
	return true
}

// Availability calcula, para cada valor candidato de cada eje del catálogo, si
// existe al menos una combinación con stock compatible con ese valor y con el
// resto de la selección actual: available(A, v) ⇔ ∃ C con C[A] == v,
// C[B] == selection[B] para todo otro eje B ya seleccionado, y C.stock > 0.
//
// La selección del propio eje A se reemplaza hipotéticamente por v (probar
// otro color no queda restringido por el color ya elegido). Los valores no
// disponibles se reportan igual — la vitrina los muestra tachados, nunca los
// oculta. Elegir un valor incompatible con el resto de la selección no se
// bloquea ni resetea otros ejes: la disponibilidad se recalcula contra la
// nueva selección y la resolución exacta informa que no hay coincidencia.
//
// Sin combinaciones persistidas todo valor se considera disponible (el stock
// se maneja a nivel de producto).
func Availability(combinations []entity.Combination, c *Catalog, selection Selection) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(c.axes))
	for _, axis := range c.axes {
		perValue := make(map[string]bool, len(c.values[axis]))
		for _, value := range c.values[axis] {
			perValue[value] = available(combinations, selection, axis, value)
		}
		out[axis] = perValue
	}
	return out
}

func available(combinations []entity.Combination, selection Selection, axis, value string) bool {
	if len(combinations) == 0 {
		return true
	}
	for _, c := range combinations {
		if c.Stock <= 0 {
			continue
		}
		if c.Attributes[axis] != value {
			continue
		}
		if matchesOthers(c.Attributes, selection, axis) {
			return true
		}
	}
	return false
}

// matchesOthers verifica que la combinación coincida con la selección en todos
// los ejes ya elegidos distintos del eje probado.
func matchesOthers(attrs entity.AttributeSet, selection Selection, probed string) bool {
	for axis, value := range selection {
		if axis == probed || value == "" {
			continue
		}
		if attrs[axis] != value {
			return false
		}
	}
	return true
}

// Resolve busca la combinación cuyo AttributeSet es exactamente igual a la
// selección (mismo conjunto de ejes y mismos valores). Solo aplica a
// selecciones completas; si no hay coincidencia exacta devuelve
// domain.ErrCombinationMismatch — catálogo y combinaciones desincronizados se
// reportan, nunca se adivina un stock.
func Resolve(combinations []entity.Combination, c *Catalog, selection Selection) (*entity.Combination, error) {
	if !selection.CompleteFor(c) {
		return nil, domain.ErrCombinationMismatch
	}
	want := entity.NewAttributeSet(selection)
	for i := range combinations {
		if combinations[i].Attributes.Equal(want) {
			found := combinations[i]
			return &found, nil
		}
	}
	return nil, domain.ErrCombinationMismatch
}
