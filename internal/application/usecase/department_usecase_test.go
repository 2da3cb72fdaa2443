package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/facility-api/internal/application/dto"
	"github.com/jhoicas/facility-api/internal/application/usecase"
	"github.com/jhoicas/facility-api/internal/domain/repository"
	"github.com/jhoicas/facility-api/internal/infrastructure/memory"
	"github.com/jhoicas/facility-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// seedDepartment inserta un department directamente en el almacén.
func seedDepartment(t *testing.T, store repository.DocumentStore, locationID primitive.ObjectID, name, depType string) primitive.ObjectID {
	t.Helper()
	id, err := store.Insert(context.Background(), repository.CollectionDepartments, repository.Fields{
		"location_id":     locationID,
		"department_name": name,
		"department_type": depType,
	})
	require.NoError(t, err)
	return id
}

func newDepartmentUC(store repository.DocumentStore, strict bool) *usecase.DepartmentUseCase {
	resolver := usecase.NewHierarchyResolver(store, strict)
	return usecase.NewDepartmentUseCase(store, resolver, logger.Nop())
}

func TestDepartment_CreateGuardaLaReferenciaAlPadre(t *testing.T) {
	store := memory.NewStore()
	uc := newDepartmentUC(store, false)
	ctx := context.Background()
	locID := primitive.NewObjectID()

	env := uc.Create(ctx, locID.Hex(), dto.CreateDepartmentRequest{Name: ptr("BAKERY"), Type: ptr("Food")})
	require.True(t, env.Status)
	assert.Equal(t, "department added", env.Message)

	rec, err := store.FindOne(ctx, repository.CollectionDepartments, repository.Filter{"department_name": "BAKERY"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, locID, rec.ObjectID("location_id"))
}

func TestDepartment_CreateNoVerificaQueElPadreExista(t *testing.T) {
	// Invariante débil heredado: la referencia al location se guarda tal cual,
	// sin comprobar que el location exista.
	uc := newDepartmentUC(memory.NewStore(), false)

	env := uc.Create(context.Background(), primitive.NewObjectID().Hex(), dto.CreateDepartmentRequest{Name: ptr("BAKERY")})
	assert.True(t, env.Status)
}

func TestDepartment_ListSoloIncluyeElAlcanceDelPadre(t *testing.T) {
	store := memory.NewStore()
	uc := newDepartmentUC(store, false)
	ctx := context.Background()
	loc1 := primitive.NewObjectID()
	loc2 := primitive.NewObjectID()
	seedDepartment(t, store, loc1, "BAKERY", "Food")
	seedDepartment(t, store, loc1, "DELI", "Food")
	seedDepartment(t, store, loc2, "PRODUCE", "Food")

	env := uc.List(ctx, loc1.Hex())
	require.True(t, env.Status)
	items := env.Data.([]dto.DepartmentResponse)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, loc1.Hex(), it.LocationID)
	}

	otros := uc.List(ctx, loc2.Hex())
	require.True(t, otros.Status)
	assert.Len(t, otros.Data.([]dto.DepartmentResponse), 1)
}

func TestDepartment_ListSinRegistrosLlevaMensaje(t *testing.T) {
	uc := newDepartmentUC(memory.NewStore(), false)
	locID := primitive.NewObjectID().Hex()

	env := uc.List(context.Background(), locID)
	assert.False(t, env.Status)
	assert.Equal(t, "departments were not found for location "+locID, env.Message)
}

func TestDepartment_GetConPadreEquivocadoEsNoEncontrado(t *testing.T) {
	store := memory.NewStore()
	uc := newDepartmentUC(store, false)
	ctx := context.Background()
	loc1 := primitive.NewObjectID()
	loc2 := primitive.NewObjectID()
	depID := seedDepartment(t, store, loc1, "BAKERY", "Food")

	// El filtro embebe el alcance del padre: un department existente pero de
	// otro location debe aparecer como no encontrado, nunca como otro registro.
	env := uc.Get(ctx, loc2.Hex(), depID.Hex())
	assert.False(t, env.Status)
	assert.Equal(t, "department "+depID.Hex()+" was not found", env.Message)

	ok := uc.Get(ctx, loc1.Hex(), depID.Hex())
	require.True(t, ok.Status)
	assert.Equal(t, "BAKERY", ok.Data.(dto.DepartmentResponse).Name)
}

func TestDepartment_UpdateAcotadoPorPadre(t *testing.T) {
	store := memory.NewStore()
	uc := newDepartmentUC(store, false)
	ctx := context.Background()
	locID := primitive.NewObjectID()
	otroLoc := primitive.NewObjectID()
	depID := seedDepartment(t, store, locID, "BAKERY", "Food")

	// Con el location equivocado el update no coincide con nada, pero por
	// paridad histórica igual reporta éxito.
	env := uc.Update(ctx, otroLoc.Hex(), depID.Hex(), dto.UpdateDepartmentRequest{Type: ptr("Bake Food")})
	assert.True(t, env.Status)

	rec, err := store.FindOne(ctx, repository.CollectionDepartments, repository.Filter{"_id": depID})
	require.NoError(t, err)
	assert.Equal(t, "Food", rec.String("department_type"), "el documento de otro alcance no debe cambiar")

	require.True(t, uc.Update(ctx, locID.Hex(), depID.Hex(), dto.UpdateDepartmentRequest{Type: ptr("Bake Food")}).Status)
	rec, err = store.FindOne(ctx, repository.CollectionDepartments, repository.Filter{"_id": depID})
	require.NoError(t, err)
	assert.Equal(t, "Bake Food", rec.String("department_type"))
}

func TestDepartment_DeleteNoVerificaElPadre(t *testing.T) {
	store := memory.NewStore()
	uc := newDepartmentUC(store, false)
	ctx := context.Background()
	depID := seedDepartment(t, store, primitive.NewObjectID(), "BAKERY", "Food")

	// El borrado opera estrictamente por id: procede aunque el caller tuviera
	// en mente un location distinto (la ruta ni siquiera lo declara).
	env := uc.Delete(ctx, depID.Hex())
	require.True(t, env.Status)
	assert.Equal(t, "department deleted", env.Message)

	again := uc.Delete(ctx, depID.Hex())
	assert.False(t, again.Status)
	assert.Equal(t, "department "+depID.Hex()+" was not deleted", again.Message)
}
