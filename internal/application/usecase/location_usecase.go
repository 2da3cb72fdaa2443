package usecase

import (
	"context"

	"github.com/jhoicas/facility-api/internal/application/dto"
	"github.com/jhoicas/facility-api/internal/domain"
	"github.com/jhoicas/facility-api/internal/domain/repository"
	"github.com/jhoicas/facility-api/pkg/logger"
)

// LocationUseCase operaciones CRUD para locations, la raíz de la jerarquía
// (sin padre). Toda salida es un Envelope: ningún fallo de las capas
// inferiores se propaga como error de transporte.
type LocationUseCase struct {
	store repository.DocumentStore
	log   *logger.Logger
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(store repository.DocumentStore, log *logger.Logger) *LocationUseCase {
	return &LocationUseCase{store: store, log: log}
}

// Create inserta un location nuevo. El almacén asigna el identificador.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) dto.Envelope {
	if in.Name == nil || *in.Name == "" {
		return dto.Fail("location_name is required")
	}
	fields := repository.Fields{
		"location_name":        *in.Name,
		"location_description": optional(in.Description),
	}
	if _, err := uc.store.Insert(ctx, repository.CollectionLocations, fields); err != nil {
		uc.log.Error().Err(err).Msg("insertar location")
		return dto.Failf("service error %v", err)
	}
	return dto.OK("location added")
}

// List devuelve todos los locations. Sin registros responde {status:false}
// sin mensaje, el contrato histórico de este listado.
func (uc *LocationUseCase) List(ctx context.Context) dto.Envelope {
	cur, err := uc.store.FindMany(ctx, repository.CollectionLocations, repository.Filter{})
	if err != nil {
		uc.log.Error().Err(err).Msg("listar locations")
		return dto.Failf("service error %v", err)
	}
	defer cur.Close(ctx)

	var items []dto.LocationResponse
	for cur.Next(ctx) {
		items = append(items, toLocationResponse(cur.Record()))
	}
	if err := cur.Err(); err != nil {
		uc.log.Error().Err(err).Msg("iterar locations")
		return dto.Failf("service error %v", err)
	}
	if len(items) == 0 {
		return dto.Fail("")
	}
	return dto.WithLocations(items)
}

// Get devuelve un location por identificador.
func (uc *LocationUseCase) Get(ctx context.Context, rawID string) dto.Envelope {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawID)
	}
	rec, err := uc.store.FindOne(ctx, repository.CollectionLocations, repository.Filter{"_id": id})
	if err != nil {
		uc.log.Error().Err(err).Str("location_id", rawID).Msg("buscar location")
		return dto.Failf("service error %v", err)
	}
	if rec == nil {
		return dto.Failf("location %s was not found", rawID)
	}
	return dto.WithData(toLocationResponse(rec))
}

// Update aplica una actualización parcial: solo los campos presentes y no
// vacíos del payload. Reporta éxito siempre que la llamada al almacén no
// falle, aunque ningún documento haya coincidido (paridad histórica).
func (uc *LocationUseCase) Update(ctx context.Context, rawID string, in dto.UpdateLocationRequest) dto.Envelope {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawID)
	}
	fields := repository.Fields{}
	setIfPresent(fields, "location_name", in.Name)
	setIfPresent(fields, "location_description", in.Description)
	if _, err := uc.store.UpdateFields(ctx, repository.CollectionLocations, id, nil, fields); err != nil {
		uc.log.Error().Err(err).Str("location_id", rawID).Msg("actualizar location")
		return dto.Failf("service error %v", err)
	}
	return dto.OK("location updated")
}

// Delete elimina exactamente un location por identificador. No hay borrado en
// cascada: los departments huérfanos permanecen en su colección.
func (uc *LocationUseCase) Delete(ctx context.Context, rawID string) dto.Envelope {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawID)
	}
	n, err := uc.store.DeleteOne(ctx, repository.CollectionLocations, repository.Filter{"_id": id})
	if err != nil {
		uc.log.Error().Err(err).Str("location_id", rawID).Msg("eliminar location")
		return dto.Failf("service error %v", err)
	}
	if n != 1 {
		return dto.Failf("location %s was not deleted", rawID)
	}
	return dto.OK("location deleted")
}

func toLocationResponse(rec repository.Record) dto.LocationResponse {
	return dto.LocationResponse{
		ID:          rec.ObjectID("_id").Hex(),
		Name:        rec.String("location_name"),
		Description: rec.String("location_description"),
	}
}
