package variant

import "github.com/muycriollo/catalogo-api/internal/domain/entity"

// Combinations genera el producto cartesiano de los valores de cada eje y
// devuelve un AttributeSet candidato por tupla, en recorrido en profundidad
// con el orden de ejes fijado por primera aparición. Con el mismo catálogo la
// secuencia resultante es siempre la misma (regenerar es idempotente).
// Un eje con un solo valor igual aparece como clave en cada AttributeSet.
// Catálogo vacío → secuencia vacía.
func (c *Catalog) Combinations() []entity.AttributeSet {
	if c.Empty() {
		return nil
	}
	var out []entity.AttributeSet
	current := make(map[string]string, len(c.axes))

	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(c.axes) {
			out = append(out, entity.NewAttributeSet(current))
			return
		}
		axis := c.axes[depth]
		for _, value := range c.values[axis] {
			current[axis] = value
			walk(depth + 1)
		}
		delete(current, axis)
	}
	walk(0)
	return out
}
