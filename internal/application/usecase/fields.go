package usecase

import "github.com/jhoicas/facility-api/internal/domain/repository"

// optional devuelve el valor a persistir para un campo opcional del payload:
// null cuando está ausente, en lugar de rechazar la petición.
func optional(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// setIfPresent agrega el campo al conjunto de actualización solo si viene
// presente y no vacío. Los valores vacíos se omiten por paridad con el
// comportamiento histórico: una actualización con cadena vacía es un no-op,
// por lo que no es posible limpiar un campo a "".
func setIfPresent(fields repository.Fields, key string, p *string) {
	if p != nil && *p != "" {
		fields[key] = *p
	}
}
