package dto

// CreateDepartmentRequest payload de POST /locations/:locationID/departments.
// department_name es obligatorio; department_type ausente se persiste como null.
type CreateDepartmentRequest struct {
	Name *string `json:"department_name"`
	Type *string `json:"department_type"`
}

// UpdateDepartmentRequest payload de PUT sobre un department (parcial).
type UpdateDepartmentRequest struct {
	Name *string `json:"department_name"`
	Type *string `json:"department_type"`
}

// DepartmentResponse representación de un department en las respuestas.
// location_id es la referencia al padre inmediato, inmutable tras la creación.
type DepartmentResponse struct {
	ID         string `json:"department_id"`
	LocationID string `json:"location_id"`
	Name       string `json:"department_name"`
	Type       string `json:"department_type"`
}
