package dto

// CreateCategoryRequest payload de POST sobre categories.
// category_name es obligatorio; category_description ausente se persiste como null.
type CreateCategoryRequest struct {
	Name        *string `json:"category_name"`
	Description *string `json:"category_description"`
}

// UpdateCategoryRequest payload de PUT sobre una category (parcial).
type UpdateCategoryRequest struct {
	Name        *string `json:"category_name"`
	Description *string `json:"category_description"`
}

// CategoryResponse representación de una category en las respuestas.
// department_id es la referencia al padre inmediato; la relación con el
// location es solo transitiva a través del department.
type CategoryResponse struct {
	ID           string `json:"category_id"`
	DepartmentID string `json:"department_id"`
	Name         string `json:"category_name"`
	Description  string `json:"category_description"`
}
