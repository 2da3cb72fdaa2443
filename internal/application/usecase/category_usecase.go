package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/facility-api/internal/application/dto"
	"github.com/jhoicas/facility-api/internal/domain"
	"github.com/jhoicas/facility-api/internal/domain/repository"
	"github.com/jhoicas/facility-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryUseCase operaciones CRUD para categories. El alcance es de un solo
// nivel (department inmediato); el location del path solo se valida en modo
// estricto del resolver. Delete opera solo por id, como en departments.
type CategoryUseCase struct {
	store    repository.DocumentStore
	resolver *HierarchyResolver
	log      *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(store repository.DocumentStore, resolver *HierarchyResolver, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{store: store, resolver: resolver, log: log}
}

// parseChain decodifica los identificadores de la cadena location/department
// del path y, en modo estricto, valida que el department pertenezca al location.
func (uc *CategoryUseCase) parseChain(ctx context.Context, rawLocationID, rawDepartmentID string) (primitive.ObjectID, dto.Envelope, bool) {
	locationID, err := domain.ParseID(rawLocationID)
	if err != nil {
		return primitive.NilObjectID, dto.Failf("invalid identifier %s", rawLocationID), false
	}
	departmentID, err := domain.ParseID(rawDepartmentID)
	if err != nil {
		return primitive.NilObjectID, dto.Failf("invalid identifier %s", rawDepartmentID), false
	}
	if err := uc.resolver.VerifyDepartment(ctx, locationID, departmentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return primitive.NilObjectID, dto.Failf("department %s was not found", rawDepartmentID), false
		}
		uc.log.Error().Err(err).Str("department_id", rawDepartmentID).Msg("verificar cadena de ancestros")
		return primitive.NilObjectID, dto.Failf("service error %v", err), false
	}
	return departmentID, dto.Envelope{}, true
}

// Create inserta una category bajo el department declarado. El documento no
// guarda referencia al location: la relación con él es solo transitiva.
func (uc *CategoryUseCase) Create(ctx context.Context, rawLocationID, rawDepartmentID string, in dto.CreateCategoryRequest) dto.Envelope {
	departmentID, env, ok := uc.parseChain(ctx, rawLocationID, rawDepartmentID)
	if !ok {
		return env
	}
	if in.Name == nil || *in.Name == "" {
		return dto.Fail("category_name is required")
	}
	fields := repository.Fields{
		fieldDepartmentID:      departmentID,
		"category_name":        *in.Name,
		"category_description": optional(in.Description),
	}
	if _, err := uc.store.Insert(ctx, repository.CollectionCategories, fields); err != nil {
		uc.log.Error().Err(err).Msg("insertar category")
		return dto.Failf("service error %v", err)
	}
	return dto.OK("category added")
}

// List devuelve las categories del department declarado.
func (uc *CategoryUseCase) List(ctx context.Context, rawLocationID, rawDepartmentID string) dto.Envelope {
	departmentID, env, ok := uc.parseChain(ctx, rawLocationID, rawDepartmentID)
	if !ok {
		return env
	}
	cur, err := uc.store.FindMany(ctx, repository.CollectionCategories, uc.resolver.CategoryScope(departmentID))
	if err != nil {
		uc.log.Error().Err(err).Str("department_id", rawDepartmentID).Msg("listar categories")
		return dto.Failf("service error %v", err)
	}
	defer cur.Close(ctx)

	var items []dto.CategoryResponse
	for cur.Next(ctx) {
		rec := cur.Record()
		if !uc.resolver.BelongsTo(rec, fieldDepartmentID, departmentID) {
			continue
		}
		items = append(items, toCategoryResponse(rec))
	}
	if err := cur.Err(); err != nil {
		uc.log.Error().Err(err).Str("department_id", rawDepartmentID).Msg("iterar categories")
		return dto.Failf("service error %v", err)
	}
	if len(items) == 0 {
		return dto.Failf("categories were not found for department %s", rawDepartmentID)
	}
	return dto.WithData(items)
}

// Get devuelve una category por id dentro del alcance de su department.
func (uc *CategoryUseCase) Get(ctx context.Context, rawLocationID, rawDepartmentID, rawCategoryID string) dto.Envelope {
	departmentID, env, ok := uc.parseChain(ctx, rawLocationID, rawDepartmentID)
	if !ok {
		return env
	}
	categoryID, err := domain.ParseID(rawCategoryID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawCategoryID)
	}
	filter := uc.resolver.CategoryScope(departmentID)
	filter["_id"] = categoryID
	rec, err := uc.store.FindOne(ctx, repository.CollectionCategories, filter)
	if err != nil {
		uc.log.Error().Err(err).Str("category_id", rawCategoryID).Msg("buscar category")
		return dto.Failf("service error %v", err)
	}
	if rec == nil {
		return dto.Failf("category %s was not found", rawCategoryID)
	}
	return dto.WithData(toCategoryResponse(rec))
}

// Update actualización parcial acotada por id y department inmediato.
func (uc *CategoryUseCase) Update(ctx context.Context, rawLocationID, rawDepartmentID, rawCategoryID string, in dto.UpdateCategoryRequest) dto.Envelope {
	departmentID, env, ok := uc.parseChain(ctx, rawLocationID, rawDepartmentID)
	if !ok {
		return env
	}
	categoryID, err := domain.ParseID(rawCategoryID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawCategoryID)
	}
	fields := repository.Fields{}
	setIfPresent(fields, "category_name", in.Name)
	setIfPresent(fields, "category_description", in.Description)
	if _, err := uc.store.UpdateFields(ctx, repository.CollectionCategories, categoryID, uc.resolver.CategoryScope(departmentID), fields); err != nil {
		uc.log.Error().Err(err).Str("category_id", rawCategoryID).Msg("actualizar category")
		return dto.Failf("service error %v", err)
	}
	return dto.OK("category updated")
}

// Delete elimina una category estrictamente por id, sin filtro de padre.
func (uc *CategoryUseCase) Delete(ctx context.Context, rawCategoryID string) dto.Envelope {
	categoryID, err := domain.ParseID(rawCategoryID)
	if err != nil {
		return dto.Failf("invalid identifier %s", rawCategoryID)
	}
	n, err := uc.store.DeleteOne(ctx, repository.CollectionCategories, repository.Filter{"_id": categoryID})
	if err != nil {
		uc.log.Error().Err(err).Str("category_id", rawCategoryID).Msg("eliminar category")
		return dto.Failf("service error %v", err)
	}
	if n != 1 {
		return dto.Failf("category %s was not deleted", rawCategoryID)
	}
	return dto.OK("category deleted")
}

func toCategoryResponse(rec repository.Record) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           rec.ObjectID("_id").Hex(),
		DepartmentID: rec.ObjectID(fieldDepartmentID).Hex(),
		Name:         rec.String("category_name"),
		Description:  rec.String("category_description"),
	}
}
