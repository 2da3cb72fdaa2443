package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Colecciones lógicas del almacén, una por tipo de entidad.
const (
	CollectionLocations   = "locations"
	CollectionDepartments = "departments"
	CollectionCategories  = "categories"
)

// Filter predicado de consulta sobre los campos de un documento.
type Filter map[string]any

// Fields conjunto parcial de campos a insertar o actualizar.
// Un valor nil se persiste como null (campos opcionales ausentes).
type Fields map[string]any

// Record documento sin esquema tal como lo devuelve el almacén.
type Record map[string]any

// ObjectID devuelve el valor del campo como identificador, o el identificador
// cero si el campo no existe o tiene otro tipo.
func (r Record) ObjectID(key string) primitive.ObjectID {
	if id, ok := r[key].(primitive.ObjectID); ok {
		return id
	}
	return primitive.NilObjectID
}

// String devuelve el valor del campo como cadena, o "" si el campo no existe,
// es null o tiene otro tipo.
func (r Record) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Cursor secuencia perezosa, finita y no reiniciable sobre los documentos que
// coinciden con un filtro. Una secuencia vacía es un resultado válido, no un error.
type Cursor interface {
	// Next avanza al siguiente documento; false al agotarse o ante un error.
	Next(ctx context.Context) bool
	// Record devuelve el documento actual tras un Next exitoso.
	Record() Record
	// Err devuelve el error que interrumpió la iteración, si lo hubo.
	Err() error
	// Close libera los recursos del cursor.
	Close(ctx context.Context) error
}

// DocumentStore puerto mínimo sobre una colección de documentos.
// Cada operación es atómica a nivel de documento; no hay transacciones
// multi-documento ni reintentos.
type DocumentStore interface {
	// Insert persiste un documento nuevo y devuelve el identificador asignado
	// por el almacén. No hay restricción de unicidad sobre el contenido.
	Insert(ctx context.Context, collection string, fields Fields) (primitive.ObjectID, error)

	// FindOne devuelve el primer documento que coincide con el filtro,
	// o (nil, nil) si ninguno coincide.
	FindOne(ctx context.Context, collection string, filter Filter) (Record, error)

	// FindMany devuelve un cursor sobre los documentos que coinciden con el filtro.
	FindMany(ctx context.Context, collection string, filter Filter) (Cursor, error)

	// UpdateFields aplica un conjunto parcial de campos (estilo $set) al
	// documento que coincide con {_id: id} más el filtro extra. Nunca borra
	// campos ausentes. Un conjunto vacío de campos es un no-op que devuelve 0.
	// Devuelve la cantidad de documentos que coincidieron.
	UpdateFields(ctx context.Context, collection string, id primitive.ObjectID, extra Filter, fields Fields) (int64, error)

	// DeleteOne elimina a lo sumo un documento que coincide con el filtro y
	// devuelve la cantidad eliminada (0 o 1).
	DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error)
}
