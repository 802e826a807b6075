package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/nexusgestion/admin-api/internal/interfaces/http"
	"github.com/nexusgestion/admin-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-0000000000aa"
	testClienteID = "11111111-1111-1111-1111-111111111111"
)

func testCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec(testJWTSecret, nil)
	require.NoError(t, err)
	return codec
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar el actor
//   - RequirePermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los guards
func buildTestApp(t *testing.T, permiso string) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testCodec(t)),
		apphttp.RequirePermission(permiso),
		func(c *fiber.Ctx) error {
			actor := apphttp.GetActor(c)
			return c.JSON(fiber.Map{"ok": true, "usuario": actor.NombreUsuario})
		},
	)
	return app
}

// tokenPara emite un Bearer token con la identidad indicada. clienteID nil
// emula un usuario sin cliente asignado (el caso del super admin global).
func tokenPara(t *testing.T, nombre string, clienteID *string, roles, permisos []string) string {
	t.Helper()
	tok, err := testCodec(t).Emitir(nombre, testUserID, clienteID, roles, permisos, time.Hour)
	require.NoError(t, err, "debe generarse un token válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission — orden de decisión del guard
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: usuario operativo con el permiso y un cliente concreto → HTTP 200.
func TestRequirePermission_PermisoYClienteAcceden(t *testing.T) {
	app := buildTestApp(t, "inventario.productos.leer")
	cid := testClienteID
	resp := doRequest(t, app, tokenPara(t, "admin_karumbe", &cid,
		[]string{"Administrador"}, []string{"inventario.productos.leer"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"usuario con permiso y cliente debe acceder")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin_karumbe", body["usuario"])
}

// Caso 2: super admin sin cliente asignado ni el permiso en el token → 200.
// El bypass de super admin se evalúa antes que permiso y cliente.
func TestRequirePermission_SuperAdminPasaSinClienteNiPermiso(t *testing.T) {
	app := buildTestApp(t, "inventario.productos.leer")
	resp := doRequest(t, app, tokenPara(t, "super_admin", nil,
		[]string{"Super Admin"}, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"super admin debe pasar todos los guards de permiso")
}

// Caso 3: usuario sin el permiso requerido → HTTP 403 PERMISO_DENEGADO.
func TestRequirePermission_SinPermiso_Retorna403(t *testing.T) {
	app := buildTestApp(t, "administracion.usuarios.crear")
	cid := testClienteID
	resp := doRequest(t, app, tokenPara(t, "vendedor_karumbe", &cid,
		[]string{"Vendedor"}, []string{"ventas.leer", "ventas.crear"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PERMISO_DENEGADO",
		"la respuesta debe incluir el código PERMISO_DENEGADO")
}

// Caso 4: usuario operativo CON el permiso pero SIN cliente en el token →
// HTTP 403 SIN_CLIENTE. El permiso se comprueba antes que el cliente, por lo
// que este caso solo se alcanza con permiso presente.
func TestRequirePermission_ConPermisoSinCliente_Retorna403SinCliente(t *testing.T) {
	app := buildTestApp(t, "inventario.productos.leer")
	resp := doRequest(t, app, tokenPara(t, "huerfano", nil,
		[]string{"Administrador"}, []string{"inventario.productos.leer"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SIN_CLIENTE",
		"la respuesta debe indicar el código SIN_CLIENTE")
}

// Caso 5: sin header Authorization → HTTP 401 TOKEN_INVALIDO.
func TestRequirePermission_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(t, "inventario.productos.leer")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TOKEN_INVALIDO")
}

// Caso 6: token malformado → HTTP 401. El mensaje no distingue entre
// malformado, firma inválida o expirado.
func TestRequirePermission_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(t, "inventario.productos.leer")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: token expirado → HTTP 401. Se emite con un reloj en el pasado y se
// valida con el reloj real.
func TestRequirePermission_TokenExpirado_Retorna401(t *testing.T) {
	pasado := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	emisor, err := token.NewCodec(testJWTSecret, pasado)
	require.NoError(t, err)
	cid := testClienteID
	tok, err := emisor.Emitir("admin_karumbe", testUserID, &cid,
		[]string{"Administrador"}, []string{"inventario.productos.leer"}, time.Hour)
	require.NoError(t, err)

	app := buildTestApp(t, "inventario.productos.leer")
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token expirado debe retornar 401")
}

// Caso 8: firma con otro secreto → HTTP 401.
func TestRequirePermission_SecretIncorrecto_Retorna401(t *testing.T) {
	otro, err := token.NewCodec("otro-secret-completamente-distinto", nil)
	require.NoError(t, err)
	cid := testClienteID
	tok, err := otro.Emitir("admin_karumbe", testUserID, &cid,
		[]string{"Administrador"}, []string{"inventario.productos.leer"}, time.Hour)
	require.NoError(t, err)

	app := buildTestApp(t, "inventario.productos.leer")
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"secret incorrecto debe invalidar el token")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSuperAdmin — rutas de administración global
// ──────────────────────────────────────────────────────────────────────────────

func buildSuperAdminApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testCodec(t)),
		apphttp.RequireSuperAdmin(),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func TestRequireSuperAdmin_SuperAdminAccede(t *testing.T) {
	app := buildSuperAdminApp(t)
	resp := doRequest(t, app, tokenPara(t, "super_admin", nil,
		[]string{"Super Admin"}, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Un administrador de cliente, aun con todos los permisos de su tenant, no es
// super admin y queda fuera de las rutas globales.
func TestRequireSuperAdmin_AdminDeClienteBloqueado(t *testing.T) {
	app := buildSuperAdminApp(t)
	cid := testClienteID
	resp := doRequest(t, app, tokenPara(t, "admin_karumbe", &cid,
		[]string{"Administrador"}, []string{"administracion.usuarios.crear", "administracion.clientes.leer"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SOLO_SUPER_ADMIN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de extracción del actor
// ──────────────────────────────────────────────────────────────────────────────

// El tipo de actor queda fijado al decodificar el token: el rol reservado
// "Super Admin" produce ámbito global (ClienteIDEfectivo nil) aunque el token
// traiga un cliente asignado.
func TestAuthMiddleware_ActorYAmbito(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testCodec(t)), func(c *fiber.Ctx) error {
		actor := apphttp.GetActor(c)
		ambito := apphttp.ClienteIDEfectivo(c)
		return c.JSON(fiber.Map{
			"user_id":     actor.UserID,
			"usuario":     actor.NombreUsuario,
			"super_admin": actor.EsSuperAdmin(),
			"ambito":      ambito,
		})
	})

	cid := testClienteID
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenPara(t, "admin_karumbe", &cid,
		[]string{"Administrador"}, []string{"ventas.leer"}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "admin_karumbe", body["usuario"])
	assert.Equal(t, false, body["super_admin"])
	assert.Equal(t, testClienteID, body["ambito"], "usuario operativo opera acotado a su cliente")
}

func TestAuthMiddleware_SuperAdminAmbitoGlobal(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testCodec(t)), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ambito": apphttp.ClienteIDEfectivo(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenPara(t, "super_admin", nil,
		[]string{"Super Admin"}, nil))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body["ambito"], "super admin opera con ámbito global")
}
