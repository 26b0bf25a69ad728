package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ehacking12/Ehacking-School-Website/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTKey = "test-secret"

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware(testJWTKey), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"email":  c.Locals("email"),
		})
	})
	return app
}

func get(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestTokenRoundtrip(t *testing.T) {
	app := protectedApp()

	token, err := middleware.GenerateJWT(testJWTKey, 42, "a@b.com")
	require.NoError(t, err)

	resp := get(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMissingOrMalformedHeader(t *testing.T) {
	app := protectedApp()

	for _, header := range []string{"", "Basic abc", "Bearer not-a-token"} {
		resp := get(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestExpiredToken(t *testing.T) {
	app := protectedApp()

	claims := jwt.MapClaims{
		"id":    float64(42),
		"email": "a@b.com",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTKey))
	require.NoError(t, err)

	resp := get(t, app, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWrongKey(t *testing.T) {
	app := protectedApp()

	token, err := middleware.GenerateJWT("other-secret", 42, "a@b.com")
	require.NoError(t, err)

	resp := get(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
