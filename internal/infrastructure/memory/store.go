// Package memory implementa el puerto DocumentStore en proceso, sin
// dependencias externas. Lo usa la suite de tests y sirve para desarrollo
// local sin una instancia de MongoDB.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/facility-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repository.DocumentStore = (*Store)(nil)

// Store almacén de documentos en memoria, seguro para uso concurrente.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[primitive.ObjectID]repository.Record
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{collections: make(map[string]map[primitive.ObjectID]repository.Record)}
}

// collection devuelve la colección, creándola si no existe. Muta el mapa de
// colecciones: solo puede llamarse con el lock de escritura tomado.
func (s *Store) collection(name string) map[primitive.ObjectID]repository.Record {
	coll, ok := s.collections[name]
	if !ok {
		coll = make(map[primitive.ObjectID]repository.Record)
		s.collections[name] = coll
	}
	return coll
}

// lookup devuelve la colección si existe, o nil. No muta nada: es la variante
// para los caminos de solo lectura bajo RLock (iterar un mapa nil es válido).
func (s *Store) lookup(name string) map[primitive.ObjectID]repository.Record {
	return s.collections[name]
}

// matches replica la semántica de igualdad de un filtro plano: todos los
// pares clave/valor del filtro deben coincidir con el documento.
func matches(rec repository.Record, filter repository.Filter) bool {
	for k, want := range filter {
		if rec[k] != want {
			return false
		}
	}
	return true
}

func clone(rec repository.Record) repository.Record {
	out := make(repository.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

// Insert asigna un ObjectID nuevo y guarda una copia de los campos.
func (s *Store) Insert(ctx context.Context, collection string, fields repository.Fields) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	rec := make(repository.Record, len(fields)+1)
	for k, v := range fields {
		rec[k] = v
	}
	rec["_id"] = id
	s.collection(collection)[id] = rec
	return id, nil
}

// FindOne devuelve una copia del primer documento que coincide, o (nil, nil).
func (s *Store) FindOne(ctx context.Context, collection string, filter repository.Filter) (repository.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.lookup(collection) {
		if matches(rec, filter) {
			return clone(rec), nil
		}
	}
	return nil, nil
}

// FindMany devuelve un cursor sobre una instantánea de los documentos que
// coinciden en este momento. El cursor es finito y no reiniciable.
func (s *Store) FindMany(ctx context.Context, collection string, filter repository.Filter) (repository.Cursor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var snapshot []repository.Record
	for _, rec := range s.lookup(collection) {
		if matches(rec, filter) {
			snapshot = append(snapshot, clone(rec))
		}
	}
	return &cursor{records: snapshot}, nil
}

// UpdateFields aplica los campos al documento que coincide con {_id: id} más
// el filtro extra. Un conjunto vacío de campos es un no-op que devuelve 0,
// igual que el adaptador de MongoDB.
func (s *Store) UpdateFields(ctx context.Context, collection string, id primitive.ObjectID, extra repository.Filter, fields repository.Fields) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.collection(collection)[id]
	if !ok || !matches(rec, extra) {
		return 0, nil
	}
	for k, v := range fields {
		rec[k] = v
	}
	return 1, nil
}

// DeleteOne elimina a lo sumo un documento que coincide con el filtro.
func (s *Store) DeleteOne(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll := s.collection(collection)
	for id, rec := range coll {
		if matches(rec, filter) {
			delete(coll, id)
			return 1, nil
		}
	}
	return 0, nil
}

// cursor itera sobre una instantánea tomada al momento del FindMany.
type cursor struct {
	records []repository.Record
	pos     int
	current repository.Record
	closed  bool
}

func (c *cursor) Next(ctx context.Context) bool {
	if c.closed || c.pos >= len(c.records) {
		return false
	}
	c.current = c.records[c.pos]
	c.pos++
	return true
}

func (c *cursor) Record() repository.Record { return c.current }

func (c *cursor) Err() error { return nil }

func (c *cursor) Close(ctx context.Context) error {
	c.closed = true
	return nil
}
