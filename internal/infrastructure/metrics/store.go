// Package metrics instrumenta el puerto DocumentStore con Prometheus:
// contadores de operaciones y errores, e histograma de duración, etiquetados
// por operación y colección.
package metrics

import (
	"context"
	"time"

	"github.com/jhoicas/facility-api/internal/domain/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repository.DocumentStore = (*InstrumentedStore)(nil)

// StoreMetrics colectores de las operaciones del almacén.
type StoreMetrics struct {
	ops      *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewStoreMetrics registra los colectores en el registry indicado.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	factory := promauto.With(reg)
	return &StoreMetrics{
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "facility_store_operations_total",
			Help: "Operaciones ejecutadas contra el almacén de documentos.",
		}, []string{"operation", "collection"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "facility_store_errors_total",
			Help: "Operaciones del almacén terminadas en error.",
		}, []string{"operation", "collection"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "facility_store_operation_seconds",
			Help:    "Duración de las operaciones del almacén.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation", "collection"}),
	}
}

func (m *StoreMetrics) observe(op, collection string, start time.Time, err error) {
	m.ops.WithLabelValues(op, collection).Inc()
	m.duration.WithLabelValues(op, collection).Observe(time.Since(start).Seconds())
	if err != nil {
		m.errors.WithLabelValues(op, collection).Inc()
	}
}

// InstrumentedStore decorador del puerto DocumentStore que delega en el
// almacén real y registra métricas por operación.
type InstrumentedStore struct {
	next repository.DocumentStore
	m    *StoreMetrics
}

// NewInstrumentedStore envuelve el almacén con los colectores indicados.
func NewInstrumentedStore(next repository.DocumentStore, m *StoreMetrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, m: m}
}

func (s *InstrumentedStore) Insert(ctx context.Context, collection string, fields repository.Fields) (primitive.ObjectID, error) {
	start := time.Now()
	id, err := s.next.Insert(ctx, collection, fields)
	s.m.observe("insert", collection, start, err)
	return id, err
}

func (s *InstrumentedStore) FindOne(ctx context.Context, collection string, filter repository.Filter) (repository.Record, error) {
	start := time.Now()
	rec, err := s.next.FindOne(ctx, collection, filter)
	s.m.observe("find_one", collection, start, err)
	return rec, err
}

func (s *InstrumentedStore) FindMany(ctx context.Context, collection string, filter repository.Filter) (repository.Cursor, error) {
	start := time.Now()
	cur, err := s.next.FindMany(ctx, collection, filter)
	s.m.observe("find_many", collection, start, err)
	return cur, err
}

func (s *InstrumentedStore) UpdateFields(ctx context.Context, collection string, id primitive.ObjectID, extra repository.Filter, fields repository.Fields) (int64, error) {
	start := time.Now()
	n, err := s.next.UpdateFields(ctx, collection, id, extra, fields)
	s.m.observe("update_fields", collection, start, err)
	return n, err
}

func (s *InstrumentedStore) DeleteOne(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	start := time.Now()
	n, err := s.next.DeleteOne(ctx, collection, filter)
	s.m.observe("delete_one", collection, start, err)
	return n, err
}
