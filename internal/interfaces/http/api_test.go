package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facility-api/internal/application/usecase"
	"github.com/jhoicas/facility-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/facility-api/internal/interfaces/http"
	"github.com/jhoicas/facility-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildTestApp construye la aplicación Fiber completa sobre el almacén en
// memoria, con la jerarquía en el modo indicado.
func buildTestApp(strict bool) *fiber.App {
	store := memory.NewStore()
	log := logger.Nop()
	resolver := usecase.NewHierarchyResolver(store, strict)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LocationUC:   usecase.NewLocationUseCase(store, log),
		DepartmentUC: usecase.NewDepartmentUseCase(store, resolver, log),
		CategoryUC:   usecase.NewCategoryUseCase(store, resolver, log),
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y decodifica la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, map[string]any) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestAPI_EscenarioLocationCompleto(t *testing.T) {
	app := buildTestApp(false)

	// Alta
	status, body := doJSON(t, app, http.MethodPost, "/locations", map[string]string{
		"location_name":        "SAS",
		"location_description": "region belongs to metro",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "location added", body["message"])

	// El listado incluye lo creado, con identificador generado por el almacén
	status, body = doJSON(t, app, http.MethodGet, "/locations", nil)
	assert.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["status"])
	locations := body["locations"].([]any)
	require.Len(t, locations, 1)
	loc := locations[0].(map[string]any)
	assert.Equal(t, "SAS", loc["location_name"])
	assert.Equal(t, "region belongs to metro", loc["location_description"])
	locID, ok := loc["location_id"].(string)
	require.True(t, ok)
	_, err := primitive.ObjectIDFromHex(locID)
	require.NoError(t, err, "el identificador generado debe ser un token válido del almacén")

	// Actualización parcial: solo la descripción
	status, body = doJSON(t, app, http.MethodPut, "/locations/"+locID, map[string]string{
		"location_description": "banglore",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "location updated", body["message"])

	_, body = doJSON(t, app, http.MethodGet, "/locations/"+locID, nil)
	require.Equal(t, true, body["status"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "SAS", data["location_name"], "el nombre no enviado no debe cambiar")
	assert.Equal(t, "banglore", data["location_description"])

	// Baja
	_, body = doJSON(t, app, http.MethodDelete, "/locations/"+locID, nil)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "location deleted", body["message"])
}

func TestAPI_GetLocationInexistenteSiempre200(t *testing.T) {
	app := buildTestApp(false)
	bogus := primitive.NewObjectID().Hex()

	status, body := doJSON(t, app, http.MethodGet, "/locations/"+bogus, nil)
	// Todo resultado viaja como transporte 200; status del cuerpo es el único
	// indicador de éxito.
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "location "+bogus+" was not found", body["message"])
}

func TestAPI_ListadoVacioDeLocations(t *testing.T) {
	app := buildTestApp(false)

	status, body := doJSON(t, app, http.MethodGet, "/locations", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["status"])
	_, hayMensaje := body["message"]
	assert.False(t, hayMensaje, "el listado de locations vacío no lleva mensaje")
}

func TestAPI_DepartmentsAcotadosPorLocation(t *testing.T) {
	app := buildTestApp(false)

	_, body := doJSON(t, app, http.MethodPost, "/locations", map[string]string{"location_name": "SAS"})
	require.Equal(t, true, body["status"])
	_, body = doJSON(t, app, http.MethodGet, "/locations", nil)
	loc1 := body["locations"].([]any)[0].(map[string]any)["location_id"].(string)
	loc2 := primitive.NewObjectID().Hex()

	_, body = doJSON(t, app, http.MethodPost, "/locations/"+loc1+"/departments", map[string]string{
		"department_name": "BAKERY",
		"department_type": "Food",
	})
	require.Equal(t, true, body["status"])
	assert.Equal(t, "department added", body["message"])

	// Listado bajo el padre correcto
	_, body = doJSON(t, app, http.MethodGet, "/locations/"+loc1+"/departments", nil)
	require.Equal(t, true, body["status"])
	deps := body["data"].([]any)
	require.Len(t, deps, 1)
	depID := deps[0].(map[string]any)["department_id"].(string)

	// Listado bajo otro location: vacío con mensaje
	_, body = doJSON(t, app, http.MethodGet, "/locations/"+loc2+"/departments", nil)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "departments were not found for location "+loc2, body["message"])

	// Get con el padre equivocado: no encontrado, nunca los datos de otro alcance
	_, body = doJSON(t, app, http.MethodGet, "/locations/"+loc2+"/departments/"+depID, nil)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "department "+depID+" was not found", body["message"])

	// El borrado procede sin declarar ni verificar el location
	_, body = doJSON(t, app, http.MethodDelete, "/departments/"+depID, nil)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "department deleted", body["message"])
}

func TestAPI_CategoriesAnidadasYDeleteSinPadre(t *testing.T) {
	app := buildTestApp(false)
	locID := primitive.NewObjectID().Hex()
	depID := primitive.NewObjectID().Hex()
	base := "/locations/" + locID + "/departments/" + depID + "/categories"

	_, body := doJSON(t, app, http.MethodPost, base, map[string]string{
		"category_name":        "Bakery Bread",
		"category_description": "Bread cooked",
	})
	require.Equal(t, true, body["status"])
	assert.Equal(t, "category added", body["message"])

	_, body = doJSON(t, app, http.MethodGet, base, nil)
	require.Equal(t, true, body["status"])
	cats := body["data"].([]any)
	require.Len(t, cats, 1)
	cat := cats[0].(map[string]any)
	catID := cat["category_id"].(string)
	assert.Equal(t, depID, cat["department_id"])

	_, body = doJSON(t, app, http.MethodPut, base+"/"+catID, map[string]string{
		"category_description": "Bread baked daily",
	})
	require.Equal(t, true, body["status"])
	assert.Equal(t, "category updated", body["message"])

	_, body = doJSON(t, app, http.MethodGet, base+"/"+catID, nil)
	require.Equal(t, true, body["status"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Bakery Bread", data["category_name"])
	assert.Equal(t, "Bread baked daily", data["category_description"])

	_, body = doJSON(t, app, http.MethodDelete, "/categories/"+catID, nil)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "category deleted", body["message"])
}

func TestAPI_IdentificadorMalformadoRespondeEnvelope(t *testing.T) {
	app := buildTestApp(false)

	status, body := doJSON(t, app, http.MethodGet, "/locations/no-es-un-id", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "invalid identifier no-es-un-id", body["message"])
}

func TestAPI_CuerpoInvalidoRespondeEnvelope(t *testing.T) {
	app := buildTestApp(false)

	req := httptest.NewRequest(http.MethodPost, "/locations", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "invalid request body", body["message"])
}

func TestAPI_ModoEstrictoRechazaElAbueloEquivocado(t *testing.T) {
	app := buildTestApp(true)
	locID := primitive.NewObjectID().Hex()
	otroLoc := primitive.NewObjectID().Hex()

	// En modo estricto el department del path debe pertenecer al location del
	// path incluso para crear; con un department inexistente la cadena falla.
	depID := primitive.NewObjectID().Hex()
	_, body := doJSON(t, app, http.MethodPost, "/locations/"+locID+"/departments/"+depID+"/categories", map[string]string{
		"category_name": "Bakery Bread",
	})
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "department "+depID+" was not found", body["message"])

	// Con la cadena real la operación procede.
	_, body = doJSON(t, app, http.MethodPost, "/locations/"+locID+"/departments", map[string]string{"department_name": "BAKERY"})
	require.Equal(t, true, body["status"])
	_, body = doJSON(t, app, http.MethodGet, "/locations/"+locID+"/departments", nil)
	require.Equal(t, true, body["status"])
	depID = body["data"].([]any)[0].(map[string]any)["department_id"].(string)

	_, body = doJSON(t, app, http.MethodPost, "/locations/"+locID+"/departments/"+depID+"/categories", map[string]string{"category_name": "Bakery Bread"})
	assert.Equal(t, true, body["status"])

	// Y con el abuelo equivocado vuelve a fallar como no encontrado.
	_, body = doJSON(t, app, http.MethodGet, "/locations/"+otroLoc+"/departments/"+depID+"/categories", nil)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "department "+depID+" was not found", body["message"])
}
