package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID valida y decodifica un identificador opaco recibido por path.
// El formato nativo del almacén es un ObjectID (24 caracteres hex); cualquier
// token con longitud o alfabeto incorrecto produce ErrInvalidIdentifier en
// lugar de llegar al almacén.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return id, nil
}
