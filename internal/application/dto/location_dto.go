package dto

// CreateLocationRequest payload de POST /locations.
// location_name es obligatorio; location_description ausente se persiste como null.
type CreateLocationRequest struct {
	Name        *string `json:"location_name"`
	Description *string `json:"location_description"`
}

// UpdateLocationRequest payload de PUT /locations/:id. Solo se tocan los
// campos presentes y no vacíos (actualización parcial).
type UpdateLocationRequest struct {
	Name        *string `json:"location_name"`
	Description *string `json:"location_description"`
}

// LocationResponse representación de un location en las respuestas.
type LocationResponse struct {
	ID          string `json:"location_id"`
	Name        string `json:"location_name"`
	Description string `json:"location_description"`
}
