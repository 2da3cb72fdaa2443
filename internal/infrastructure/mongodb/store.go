package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/facility-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.DocumentStore = (*Store)(nil)

// Store implementación del puerto DocumentStore sobre una base MongoDB.
type Store struct {
	db *mongo.Database
}

// NewStore construye el adaptador de persistencia sobre la base indicada.
func NewStore(client *mongo.Client, database string) *Store {
	return &Store{db: client.Database(database)}
}

// Insert persiste un documento nuevo; el almacén asigna el ObjectID.
func (s *Store) Insert(ctx context.Context, collection string, fields repository.Fields) (primitive.ObjectID, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(fields))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert %s: identificador inesperado %T", collection, res.InsertedID)
	}
	return id, nil
}

// FindOne devuelve el primer documento que coincide, o (nil, nil) si no hay.
func (s *Store) FindOne(ctx context.Context, collection string, filter repository.Filter) (repository.Record, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M(filter)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find one %s: %w", collection, err)
	}
	return repository.Record(doc), nil
}

// FindMany devuelve un cursor perezoso sobre los documentos que coinciden.
func (s *Store) FindMany(ctx context.Context, collection string, filter repository.Filter) (repository.Cursor, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M(filter))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	return &cursor{cur: cur}, nil
}

// UpdateFields aplica un $set parcial sobre {_id: id} ∪ extra. Un conjunto
// vacío de campos es un no-op que devuelve 0: Mongo rechaza un $set vacío y el
// contrato del puerto lo absorbe aquí.
func (s *Store) UpdateFields(ctx context.Context, collection string, id primitive.ObjectID, extra repository.Filter, fields repository.Fields) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	filter := bson.M{"_id": id}
	for k, v := range extra {
		filter[k] = v
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", collection, err)
	}
	return res.MatchedCount, nil
}

// DeleteOne elimina a lo sumo un documento y devuelve la cantidad eliminada.
func (s *Store) DeleteOne(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M(filter))
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}

// cursor adapta *mongo.Cursor al contrato del puerto.
type cursor struct {
	cur *mongo.Cursor
	rec repository.Record
	err error
}

func (c *cursor) Next(ctx context.Context) bool {
	if !c.cur.Next(ctx) {
		return false
	}
	var doc bson.M
	if err := c.cur.Decode(&doc); err != nil {
		c.err = err
		return false
	}
	c.rec = repository.Record(doc)
	return true
}

func (c *cursor) Record() repository.Record { return c.rec }

func (c *cursor) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.cur.Err()
}

func (c *cursor) Close(ctx context.Context) error { return c.cur.Close(ctx) }
