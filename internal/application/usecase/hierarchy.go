package usecase

import (
	"context"

	"github.com/jhoicas/facility-api/internal/domain"
	"github.com/jhoicas/facility-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campos de referencia al padre en los documentos hijos.
const (
	fieldLocationID   = "location_id"
	fieldDepartmentID = "department_id"
)

// HierarchyResolver construye los filtros de alcance de la jerarquía
// Location→Department→Category y valida la pertenencia de un documento a su
// padre declarado. Un documento que existe pero no pertenece al padre
// reclamado se trata siempre como "no encontrado", nunca como "prohibido".
type HierarchyResolver struct {
	store  repository.DocumentStore
	strict bool
}

// NewHierarchyResolver construye el resolver. Con strict=true las operaciones
// de Category validan además la cadena de ancestros (ver VerifyDepartment);
// con strict=false cada hijo se valida solo contra su padre inmediato.
func NewHierarchyResolver(store repository.DocumentStore, strict bool) *HierarchyResolver {
	return &HierarchyResolver{store: store, strict: strict}
}

// DepartmentScope filtro de alcance de los departments de un location.
func (r *HierarchyResolver) DepartmentScope(locationID primitive.ObjectID) repository.Filter {
	return repository.Filter{fieldLocationID: locationID}
}

// CategoryScope filtro de alcance de las categories de un department.
// El alcance es de un solo nivel: no incluye location_id aunque el contexto
// de la llamada lo tenga; la validación contra el ancestro completo solo
// ocurre en modo estricto vía VerifyDepartment.
func (r *HierarchyResolver) CategoryScope(departmentID primitive.ObjectID) repository.Filter {
	return repository.Filter{fieldDepartmentID: departmentID}
}

// BelongsTo informa si el campo de referencia al padre del documento coincide
// con el identificador de padre declarado.
func (r *HierarchyResolver) BelongsTo(rec repository.Record, parentField string, parentID primitive.ObjectID) bool {
	return rec.ObjectID(parentField) == parentID
}

// VerifyDepartment valida, solo en modo estricto, que el department declarado
// pertenezca al location declarado. Devuelve ErrNotFound si la cadena no
// coincide. En modo permisivo siempre pasa.
func (r *HierarchyResolver) VerifyDepartment(ctx context.Context, locationID, departmentID primitive.ObjectID) error {
	if !r.strict {
		return nil
	}
	rec, err := r.store.FindOne(ctx, repository.CollectionDepartments, repository.Filter{
		"_id":           departmentID,
		fieldLocationID: locationID,
	})
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	return nil
}
