package usecase

import (
	"context"

	"github.com/jhoicas/facility-api/internal/application/dto"
	"github.com/jhoicas/facility-api/internal/domain"
	"github.com/jhoicas/facility-api/internal/domain/repository"
	"github.com/jhoicas/facility-api/pkg/logger"
)

// DepartmentUseCase operaciones CRUD para departments, siempre relativas al
// location declarado en el path (salvo Delete, que opera solo por id).
type DepartmentUseCase struct {
	store    repository.DocumentStore
	resolver *HierarchyResolver
	log      *logger.Logger
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(store repository.DocumentStore, resolver *HierarchyResolver, log *logger.Logger) *DepartmentUseCase {
	return &DepartmentUseCase{store: store, resolver: resolver, log: log}
}

// Create inserta un department bajo el location declarado. No se verifica que
// el location exista: la referencia al padre se guarda tal cual, sin
// validación de clave foránea.
func (uc *DepartmentUseCase) Create(ctx context.Context, rawLocationID string, in dto.CreateDepartmentRequest) dto.Envelope {
	locationID, err := domain.ParseID(rawLocationID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawLocationID)
	}
	if in.Name == nil || *in.Name == "" {
		return dto.Fail("department_name is required")
	}
	fields := repository.Fields{
		fieldLocationID:   locationID,
		"department_name": *in.Name,
		"department_type": optional(in.Type),
	}
	if _, err := uc.store.Insert(ctx, repository.CollectionDepartments, fields); err != nil {
		uc.log.Error().Err(err).Msg("insertar department")
		return dto.Failf("service error %v", err)
	}
	return dto.OK("department added")
}

// List devuelve los departments del location declarado. Cada documento del
// cursor se revalida contra el padre vía el resolver.
func (uc *DepartmentUseCase) List(ctx context.Context, rawLocationID string) dto.Envelope {
	locationID, err := domain.ParseID(rawLocationID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawLocationID)
	}
	cur, err := uc.store.FindMany(ctx, repository.CollectionDepartments, uc.resolver.DepartmentScope(locationID))
	if err != nil {
		uc.log.Error().Err(err).Str("location_id", rawLocationID).Msg("listar departments")
		return dto.Failf("service error %v", err)
	}
	defer cur.Close(ctx)

	var items []dto.DepartmentResponse
	for cur.Next(ctx) {
		rec := cur.Record()
		if !uc.resolver.BelongsTo(rec, fieldLocationID, locationID) {
			continue
		}
		items = append(items, toDepartmentResponse(rec))
	}
	if err := cur.Err(); err != nil {
		uc.log.Error().Err(err).Str("location_id", rawLocationID).Msg("iterar departments")
		return dto.Failf("service error %v", err)
	}
	if len(items) == 0 {
		return dto.Failf("departments were not found for location %s", rawLocationID)
	}
	return dto.WithData(items)
}

// Get devuelve un department por id dentro del alcance de su location: el
// filtro del almacén ya incluye al padre, así que un department existente
// pero de otro location aparece directamente como no encontrado.
func (uc *DepartmentUseCase) Get(ctx context.Context, rawLocationID, rawDepartmentID string) dto.Envelope {
	locationID, err := domain.ParseID(rawLocationID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawLocationID)
	}
	departmentID, err := domain.ParseID(rawDepartmentID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawDepartmentID)
	}
	filter := uc.resolver.DepartmentScope(locationID)
	filter["_id"] = departmentID
	rec, err := uc.store.FindOne(ctx, repository.CollectionDepartments, filter)
	if err != nil {
		uc.log.Error().Err(err).Str("department_id", rawDepartmentID).Msg("buscar department")
		return dto.Failf("service error %v", err)
	}
	if rec == nil {
		return dto.Failf("department %s was not found", rawDepartmentID)
	}
	return dto.WithData(toDepartmentResponse(rec))
}

// Update actualización parcial acotada por id y padre inmediato. Reporta
// éxito siempre que la llamada al almacén no falle, coincida o no un documento.
func (uc *DepartmentUseCase) Update(ctx context.Context, rawLocationID, rawDepartmentID string, in dto.UpdateDepartmentRequest) dto.Envelope {
	locationID, err := domain.ParseID(rawLocationID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawLocationID)
	}
	departmentID, err := domain.ParseID(rawDepartmentID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawDepartmentID)
	}
	fields := repository.Fields{}
	setIfPresent(fields, "department_name", in.Name)
	setIfPresent(fields, "department_type", in.Type)
	if _, err := uc.store.UpdateFields(ctx, repository.CollectionDepartments, departmentID, uc.resolver.DepartmentScope(locationID), fields); err != nil {
		uc.log.Error().Err(err).Str("department_id", rawDepartmentID).Msg("actualizar department")
		return dto.Failf("service error %v", err)
	}
	return dto.OK("department updated")
}

// Delete elimina un department estrictamente por id, sin filtro de padre:
// la ruta de borrado no declara location y el alcance no se verifica.
func (uc *DepartmentUseCase) Delete(ctx context.Context, rawDepartmentID string) dto.Envelope {
	departmentID, err := domain.ParseID(rawDepartmentID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawDepartmentID)
	}
	n, err := uc.store.DeleteOne(ctx, repository.CollectionDepartments, repository.Filter{"_id": departmentID})
	if err != nil {
		uc.log.Error().Err(err).Str("department_id", rawDepartmentID).Msg("eliminar department")
		return dto.Failf("service error %v", err)
	}
	if n != 1 {
		return dto.Failf("department %s was not deleted", rawDepartmentID)
	}
	return dto.OK("department deleted")
}

func toDepartmentResponse(rec repository.Record) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:         rec.ObjectID("_id").Hex(),
		LocationID: rec.ObjectID(fieldLocationID).Hex(),
		Name:       rec.String("department_name"),
		Type:       rec.String("department_type"),
	}
}
