package entity

import "strings"

// ProductVariant es una entrada del catálogo de variantes: un par (eje, valor)
// definido para un producto, ej. {Color, Rojo} o {Talle, M}.
// El eje es sensible a mayúsculas y debe usarse de forma consistente.
type ProductVariant struct {
	ID        string
	ProductID string
	Axis      string // ej. "Color", "Talle"
	Value     string // ej. "Rojo", "M"
}

// Normalize recorta espacios en eje y valor.
func (v *ProductVariant) Normalize() {
	v.Axis = strings.TrimSpace(v.Axis)
	v.Value = strings.TrimSpace(v.Value)
}

// Valid indica si la entrada tiene eje y valor no vacíos tras recortar.
func (v ProductVariant) Valid() bool {
	return strings.TrimSpace(v.Axis) != "" && strings.TrimSpace(v.Value) != ""
}
