package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                = errors.New("recurso no encontrado")
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrDuplicate               = errors.New("recurso duplicado")
	ErrUnauthorized            = errors.New("no autorizado")
	ErrConflict                = errors.New("conflicto con el estado actual")
	ErrInvalidAxisValue        = errors.New("eje o valor de variante vacío")
	ErrStockOutOfRange         = errors.New("stock fuera de rango: debe ser un entero no negativo")
	ErrCombinationMismatch     = errors.New("la selección no corresponde a ninguna combinación")
	ErrDestructiveRegeneration = errors.New("regenerar sin ejes elimina todas las combinaciones: requiere confirmación")
	ErrHasCombinations         = errors.New("el producto tiene combinaciones: el stock base no aplica")
)
