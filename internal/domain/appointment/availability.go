package appointment

type AvailabilityInput struct {
	// YYYY-MM-DD
	Date         string
	PrestationID string
}

// Availability é o contrato de saída do filtro: lista ordenada e deduplicada
// de horários HH:MM, ou lista vazia com um motivo legível.
type Availability struct {
	Date   string   `json:"date"`
	Times  []string `json:"times"`
	Reason string   `json:"reason,omitempty"`
}
