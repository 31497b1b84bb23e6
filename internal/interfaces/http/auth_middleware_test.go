package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/inventory-tracker/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/inventory-tracker/pkg/jwt"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
)

func newTestIssuer(t *testing.T, opts ...pkgjwt.Option) *pkgjwt.Issuer {
	t.Helper()
	iss, err := pkgjwt.NewIssuer(testJWTSecret, time.Hour, opts...)
	require.NoError(t, err)
	return iss
}

// buildProtectedApp aplicación mínima con AuthMiddleware y un handler que devuelve la identidad.
func buildProtectedApp(verifier apphttp.TokenVerifier) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(verifier, logger.Nop()), func(c *fiber.Ctx) error {
		id, ok := apphttp.IdentityFromContext(c.UserContext())
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"email":    c.Locals(apphttp.LocalEmail),
			"username": apphttp.GetIdentity(c).Username,
			"ctx":      ok && id.UserID == apphttp.GetUserID(c),
		})
	})
	return app
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestAuthMiddleware_TokenValidoCargaIdentidad(t *testing.T) {
	iss := newTestIssuer(t)
	tok, err := iss.Issue(pkgjwt.Identity{UserID: testUserID, Email: "a@x.com", Username: "alice"})
	require.NoError(t, err)

	resp, body := doProtected(t, buildProtectedApp(iss), "Bearer "+tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "a@x.com", body["email"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, true, body["ctx"], "la identidad también viaja en UserContext")
}

func TestAuthMiddleware_SinCabecera401(t *testing.T) {
	resp, body := doProtected(t, buildProtectedApp(newTestIssuer(t)), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apphttp.MsgTokenRequired, body["message"])
}

func TestAuthMiddleware_FormatoIncorrecto401(t *testing.T) {
	app := buildProtectedApp(newTestIssuer(t))
	for _, h := range []string{"Basic abc", "Bearer", "Bearer   ", "token-sin-esquema"} {
		resp, _ := doProtected(t, app, h)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, h)
	}
}

func TestAuthMiddleware_TokenInvalido403(t *testing.T) {
	app := buildProtectedApp(newTestIssuer(t))

	resp, body := doProtected(t, app, "Bearer no.es.un.jwt")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, apphttp.MsgTokenInvalid, body["message"])

	other, err := pkgjwt.NewIssuer("otro-secreto", time.Hour)
	require.NoError(t, err)
	tok, err := other.Issue(pkgjwt.Identity{UserID: testUserID})
	require.NoError(t, err)
	resp, _ = doProtected(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "firma con otro secreto")
}

func TestAuthMiddleware_TokenExpirado403(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	old := newTestIssuer(t, pkgjwt.WithClock(func() time.Time { return past }))
	tok, err := old.Issue(pkgjwt.Identity{UserID: testUserID})
	require.NoError(t, err)

	resp, _ := doProtected(t, buildProtectedApp(newTestIssuer(t)), "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_EsquemaSinDistinguirMayusculas(t *testing.T) {
	iss := newTestIssuer(t)
	tok, err := iss.Issue(pkgjwt.Identity{UserID: testUserID})
	require.NoError(t, err)
	resp, _ := doProtected(t, buildProtectedApp(iss), "bearer "+tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
