package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
	"github.com/muycriollo/catalogo-api/internal/domain/variant"
)

func catalogoColorTalle(t *testing.T) *variant.Catalog {
	t.Helper()
	return mustCatalog(t, entries(
		[2]string{"Color", "Rojo"},
		[2]string{"Color", "Azul"},
		[2]string{"Talle", "M"},
		[2]string{"Talle", "L"},
	))
}

// Escenario del dominio: con Rojo seleccionado, Talle M (stock 0) queda no
// disponible y Talle L (stock 5) disponible.
func TestAvailability_TalleAgotadoQuedaDeshabilitado(t *testing.T) {
	c := catalogoColorTalle(t)
	combos := []entity.Combination{
		combo("c1", 0, map[string]string{"Color": "Rojo", "Talle": "M"}),
		combo("c2", 5, map[string]string{"Color": "Rojo", "Talle": "L"}),
	}

	avail := variant.Availability(combos, c, variant.Selection{"Color": "Rojo"})

	assert.False(t, avail["Talle"]["M"], "Rojo/M sin stock debe quedar no disponible")
	assert.True(t, avail["Talle"]["L"], "Rojo/L con stock debe quedar disponible")
}

// Todo valor del catálogo aparece en la respuesta, disponible o no: la vitrina
// los tacha pero nunca los oculta.
func TestAvailability_ValoresNoDisponiblesSeReportanIgual(t *testing.T) {
	c := catalogoColorTalle(t)
	combos := []entity.Combination{
		combo("c1", 5, map[string]string{"Color": "Rojo", "Talle": "M"}),
	}

	avail := variant.Availability(combos, c, nil)

	require.Contains(t, avail, "Color")
	require.Contains(t, avail, "Talle")
	assert.Len(t, avail["Color"], 2)
	assert.Len(t, avail["Talle"], 2)
	assert.False(t, avail["Color"]["Azul"], "Azul no tiene combinación con stock: reportado como no disponible")
}

// Al probar un valor del eje A, la selección previa de A se reemplaza
// hipotéticamente (elegir Rojo no bloquea ver si Azul está disponible).
func TestAvailability_ElPropioEjeSeReemplazaHipoteticamente(t *testing.T) {
	c := catalogoColorTalle(t)
	combos := []entity.Combination{
		combo("c1", 2, map[string]string{"Color": "Rojo", "Talle": "M"}),
		combo("c2", 2, map[string]string{"Color": "Azul", "Talle": "M"}),
	}

	avail := variant.Availability(combos, c, variant.Selection{"Color": "Rojo", "Talle": "M"})
	assert.True(t, avail["Color"]["Azul"], "Azul/M tiene stock: debe seguir disponible aunque Rojo esté elegido")
}

// Monotonicidad: si available(A,v) con una selección, sigue disponible con
// cualquier subconjunto de esa selección (quitar restricciones no deshabilita).
func TestAvailability_Monotonicidad(t *testing.T) {
	c := catalogoColorTalle(t)
	combos := []entity.Combination{
		combo("c1", 1, map[string]string{"Color": "Rojo", "Talle": "L"}),
	}

	conSeleccion := variant.Availability(combos, c, variant.Selection{"Color": "Rojo"})
	require.True(t, conSeleccion["Talle"]["L"])

	sinSeleccion := variant.Availability(combos, c, nil)
	assert.True(t, sinSeleccion["Talle"]["L"], "quitar la restricción de Color no puede deshabilitar L")
}

// Sin combinaciones persistidas todo se considera disponible (el stock se
// maneja a nivel de producto).
func TestAvailability_SinCombinacionesTodoDisponible(t *testing.T) {
	c := catalogoColorTalle(t)
	avail := variant.Availability(nil, c, variant.Selection{"Color": "Rojo"})
	for axis, values := range avail {
		for value, ok := range values {
			assert.True(t, ok, "%s=%s debe estar disponible sin matriz", axis, value)
		}
	}
}

// Una selección incompatible no se bloquea: la disponibilidad se recalcula y
// el resto de los ejes queda deshabilitado según la nueva selección.
func TestAvailability_SeleccionIncompatibleNoSeBloquea(t *testing.T) {
	c := catalogoColorTalle(t)
	combos := []entity.Combination{
		combo("c1", 3, map[string]string{"Color": "Rojo", "Talle": "M"}),
		combo("c2", 3, map[string]string{"Color": "Azul", "Talle": "L"}),
	}

	// El cliente eligió Azul aunque tenía Talle M seleccionado.
	avail := variant.Availability(combos, c, variant.Selection{"Color": "Azul", "Talle": "M"})
	assert.False(t, avail["Talle"]["M"], "Azul/M no existe con stock")
	assert.True(t, avail["Talle"]["L"], "Azul/L sí")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de selección completa
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_SeleccionCompletaEncuentraCombinacion(t *testing.T) {
	c := catalogoColorTalle(t)
	combos := []entity.Combination{
		combo("c1", 7, map[string]string{"Color": "Rojo", "Talle": "M"}),
		combo("c2", 5, map[string]string{"Color": "Rojo", "Talle": "L"}),
	}

	got, err := variant.Resolve(combos, c, variant.Selection{"Color": "Rojo", "Talle": "L"})
	require.NoError(t, err)
	assert.Equal(t, "c2", got.ID)
	assert.Equal(t, 5, got.Stock, "el stock mostrado al cliente es el de la combinación exacta")
}

// Selección incompleta: no se resuelve (falta un eje).
func TestResolve_SeleccionIncompleta(t *testing.T) {
	c := catalogoColorTalle(t)
	combos := []entity.Combination{
		combo("c1", 7, map[string]string{"Color": "Rojo", "Talle": "M"}),
	}

	_, err := variant.Resolve(combos, c, variant.Selection{"Color": "Rojo"})
	assert.ErrorIs(t, err, domain.ErrCombinationMismatch)
}

// Catálogo y combinaciones desincronizados: se reporta "sin combinación",
// nunca se adivina un stock.
func TestResolve_SinCoincidenciaExactaNoAdivina(t *testing.T) {
	c := catalogoColorTalle(t)
	// La matriz quedó vieja: no existe Azul/L persistida.
	combos := []entity.Combination{
		combo("c1", 7, map[string]string{"Color": "Rojo", "Talle": "M"}),
	}

	got, err := variant.Resolve(combos, c, variant.Selection{"Color": "Azul", "Talle": "L"})
	assert.ErrorIs(t, err, domain.ErrCombinationMismatch)
	assert.Nil(t, got)
}
