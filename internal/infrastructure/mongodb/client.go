package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/facility-api/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewClient crea el cliente de MongoDB con un pool acotado de capacidad fija.
// La adquisición es por operación: el driver toma una conexión del pool y la
// devuelve en cada salida, con éxito o con error. Hace ping para validar la
// conexión antes de entregar el cliente.
func NewClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMaxConnIdleTime(time.Duration(cfg.MaxIdleSeconds) * time.Second).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping a MongoDB: %w", err)
	}
	return client, nil
}
