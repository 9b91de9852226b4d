package middleware

import (
	"encoding/json"
	"fsdine_restaurant/helper"
	"fsdine_restaurant/logger"
	"fsdine_restaurant/model"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", Protected(secret), func(c *fiber.Ctx) error {
		claim, ok := helper.GetAdminClaim(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(claim)
	})
	return app
}

func TestProtectedAcceptsBearerToken(t *testing.T) {
	token, _, err := helper.GenerateAccessToken(model.TokenClaim{AdminId: 3, Email: "expo@example.com", Role: "expo"}, secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var claim model.TokenClaim
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&claim))
	assert.Equal(t, uint(3), claim.AdminId)
	assert.Equal(t, "expo", claim.Role)
}

func TestProtectedAcceptsCookie(t *testing.T) {
	token, _, err := helper.GenerateAccessToken(model.TokenClaim{AdminId: 5}, secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRejects(t *testing.T) {
	wrongKey, _, err := helper.GenerateAccessToken(model.TokenClaim{AdminId: 5}, "other-secret", time.Hour)
	require.NoError(t, err)
	expired, _, err := helper.GenerateAccessToken(model.TokenClaim{AdminId: 5}, secret, -time.Minute)
	require.NoError(t, err)

	cases := map[string]string{
		"missing":   "",
		"garbage":   "Bearer not-a-token",
		"wrong key": "Bearer " + wrongKey,
		"expired":   "Bearer " + expired,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp, err := protectedApp().Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestRequestContextCarriesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: func() string { return "req-123" }}))
	app.Use(RequestContext())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(logger.RequestID(c.UserContext()))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "req-123", string(body))
}
