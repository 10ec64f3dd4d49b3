package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/channelry/merchant-api/internal/interfaces/http"
	pkgjwt "github.com/channelry/merchant-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testMerchantID = "00000000-0000-0000-0000-000000000002"
	testIssuer     = "merchant-api-test"
	testExpMin     = 60
)

// buildAuthApp construye una aplicación Fiber mínima con AuthMiddleware
// y un handler dummy que devuelve los locals cargados por el middleware.
func buildAuthApp() *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id":     apphttp.GetUserID(c),
				"merchant_id": apphttp.GetMerchantID(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT firmado con el secret indicado.
func tokenFor(t *testing.T, secret, userID, merchantID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, userID, merchantID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido → HTTP 200 con los locals del middleware cargados.
func TestAuthMiddleware_TokenValidoCargaLocals(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, tokenFor(t, testJWTSecret, testUserID, testMerchantID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"], "user_id debe venir de los claims")
	assert.Equal(t, testMerchantID, body["merchant_id"], "merchant_id debe venir de los claims")
}

// Caso 2: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 3: header sin el prefijo Bearer → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 4: token firmado con otro secret → HTTP 401.
func TestAuthMiddleware_FirmaIncorrecta_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, tokenFor(t, "otro-secret", testUserID, testMerchantID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token manipulado (basura) → HTTP 401.
func TestAuthMiddleware_TokenBasura_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, "Bearer no.es.un.jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token sin merchant en los claims → HTTP 401 MISSING_MERCHANT.
func TestAuthMiddleware_TokenSinMerchant_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, tokenFor(t, testJWTSecret, testUserID, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_MERCHANT")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg/jwt
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testMerchantID, testIssuer, testExpMin)
	require.NoError(t, err)

	userID, merchantID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testMerchantID, merchantID)
}

func TestJWT_TokenExpirado_Falla(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testMerchantID, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "un token vencido no debe parsear")
}

func TestJWT_SecretVacio_Falla(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testMerchantID, testIssuer, testExpMin)
	assert.Error(t, err)

	_, _, err = pkgjwt.Parse("", "cualquier-cosa")
	assert.Error(t, err)
}
