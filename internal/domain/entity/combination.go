package entity

import "sort"

// AttributeSet asigna exactamente un valor a cada eje presente; es la identidad
// de una combinación dentro de un producto. La igualdad es independiente del
// orden de las claves. Se persiste como JSONB (eje → valor).
//
// Tratar como inmutable: construir con Clone o NewAttributeSet y no mutar
// después de compartir.
type AttributeSet map[string]string

// NewAttributeSet copia el mapa recibido.
func NewAttributeSet(values map[string]string) AttributeSet {
	out := make(AttributeSet, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

// Clone devuelve una copia independiente.
func (a AttributeSet) Clone() AttributeSet {
	return NewAttributeSet(a)
}

// Equal compara por conjunto de ejes y valor por eje, sin importar el orden.
func (a AttributeSet) Equal(b AttributeSet) bool {
	if len(a) != len(b) {
		return false
	}
	for axis, value := range a {
		other, ok := b[axis]
		if !ok || other != value {
			return false
		}
	}
	return true
}

// Axes devuelve los ejes en orden alfabético (orden canónico para claves).
func (a AttributeSet) Axes() []string {
	axes := make([]string, 0, len(a))
	for axis := range a {
		axes = append(axes, axis)
	}
	sort.Strings(axes)
	return axes
}

// Key devuelve una representación canónica ("Color=Rojo;Talle=M") usable como
// clave de índice; dos AttributeSet iguales producen la misma Key.
func (a AttributeSet) Key() string {
	axes := a.Axes()
	var b []byte
	for i, axis := range axes {
		if i > 0 {
			b = append(b, ';')
		}
		b = append(b, axis...)
		b = append(b, '=')
		b = append(b, a[axis]...)
	}
	return string(b)
}

// Combination es el registro de stock de un AttributeSet de un producto.
// ID vacío significa "nueva" (aún no persistida); las combinaciones cargadas
// de la base siempre traen ID. Invariante: dentro de un producto no hay dos
// combinaciones con AttributeSet igual.
type Combination struct {
	ID         string
	ProductID  string
	Attributes AttributeSet
	Stock      int
}

// IsNew indica si la combinación aún no fue persistida.
func (c Combination) IsNew() bool { return c.ID == "" }
