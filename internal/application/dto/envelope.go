package dto

import "fmt"

// Envelope cuerpo uniforme de toda respuesta de la API: el campo status es el
// único indicador de éxito; el transporte siempre responde 200 (convención
// deliberada para compatibilidad con los clientes existentes, no una omisión).
type Envelope struct {
	Status    bool   `json:"status"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Locations any    `json:"locations,omitempty"`
}

// OK resultado exitoso con mensaje.
func OK(message string) Envelope {
	return Envelope{Status: true, Message: message}
}

// WithData resultado exitoso con datos bajo la clave "data".
func WithData(data any) Envelope {
	return Envelope{Status: true, Data: data}
}

// WithLocations resultado exitoso del listado de locations, que por contrato
// histórico usa la clave "locations" en lugar de "data".
func WithLocations(items any) Envelope {
	return Envelope{Status: true, Locations: items}
}

// Fail resultado negativo con mensaje. Un mensaje vacío produce {status:false}
// a secas (caso "sin registros" del listado de locations).
func Fail(message string) Envelope {
	return Envelope{Status: false, Message: message}
}

// Failf resultado negativo con mensaje formateado.
func Failf(format string, args ...any) Envelope {
	return Envelope{Status: false, Message: fmt.Sprintf(format, args...)}
}
