// Package variant implementa el motor de variantes e inventario por matriz:
// agrupa el catálogo de variantes por eje, genera el producto cartesiano de
// combinaciones, reconcilia lo generado contra lo persistido preservando stock
// e identidad, agrega el stock total del producto y resuelve disponibilidad de
// opciones en la vitrina. Todo el paquete es puro y síncrono: recibe y devuelve
// valores en memoria; la persistencia es responsabilidad del caller.
package variant

import (
	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
)

// Catalog es el catálogo de variantes de un producto agrupado por eje.
// Los ejes conservan el orden de primera aparición y los valores de cada eje
// se deduplican conservando el orden de primera aparición, de modo que dos
// catálogos construidos con las mismas entradas generan siempre la misma
// secuencia de combinaciones.
type Catalog struct {
	axes   []string
	values map[string][]string
}

// NewCatalog agrupa las entradas (eje, valor) por eje. Recorta espacios y
// rechaza entradas con eje o valor vacío (domain.ErrInvalidAxisValue).
func NewCatalog(entries []entity.ProductVariant) (*Catalog, error) {
	c := &Catalog{values: make(map[string][]string)}
	for _, e := range entries {
		e.Normalize()
		if !e.Valid() {
			return nil, domain.ErrInvalidAxisValue
		}
		list, seen := c.values[e.Axis]
		if !seen {
			c.axes = append(c.axes, e.Axis)
		}
		if contains(list, e.Value) {
			continue
		}
		c.values[e.Axis] = append(list, e.Value)
	}
	return c, nil
}

// Empty indica si el catálogo no tiene ejes.
func (c *Catalog) Empty() bool { return len(c.axes) == 0 }

// Axes devuelve los ejes en orden de primera aparición.
func (c *Catalog) Axes() []string {
	out := make([]string, len(c.axes))
	copy(out, c.axes)
	return out
}

// Values devuelve los valores de un eje en orden de primera aparición.
func (c *Catalog) Values(axis string) []string {
	list := c.values[axis]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
