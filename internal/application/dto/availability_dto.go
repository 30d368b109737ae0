package dto

// AxisOptionsResponse valores de un eje en orden de catálogo, con su
// disponibilidad. Los valores no disponibles se muestran deshabilitados en la
// vitrina, nunca se ocultan.
type AxisOptionsResponse struct {
	Axis   string           `json:"axis"`
	Values []OptionResponse `json:"values"`
}

// OptionResponse un valor candidato de un eje.
type OptionResponse struct {
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

// AvailabilityResponse salida del resolver de disponibilidad para la vitrina.
// Resolved solo viene cuando la selección está completa y coincide exactamente
// con una combinación persistida.
type AvailabilityResponse struct {
	ProductID string                `json:"product_id"`
	Axes      []AxisOptionsResponse `json:"axes"`
	Selection map[string]string     `json:"selection"`
	Complete  bool                  `json:"complete"`
	Resolved  *CombinationResponse  `json:"resolved,omitempty"`
}
