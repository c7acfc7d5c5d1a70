package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skill-manager/internal/domain"
	"skill-manager/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDomain(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.Invalid("label", "is required"), fiber.StatusBadRequest},
		{"not found", domain.ErrSkillNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.ErrEmployeeNotFound), fiber.StatusNotFound},
		{"persistence", &domain.PersistenceError{Op: "write", Document: "skills", Err: errors.New("disk full")}, fiber.StatusInternalServerError},
		{"other", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, FromDomain(tc.err).StatusCode)
		})
	}

	appErr := FromDomain(domain.Invalid("label", "is required"))
	assert.Equal(t, fiber.Map{"field": "label"}, appErr.Data)
}

func TestBearerTokenFromHeader(t *testing.T) {
	tok, ok := bearerTokenFromHeader("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	tok, ok = bearerTokenFromHeader("bearer   abc  ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic abc"} {
		_, ok := bearerTokenFromHeader(h)
		assert.False(t, ok, h)
	}
}

func newTestApp(reg prometheus.Registerer, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewMetricsMiddleware(reg).Middleware())
	app.Use(NewErrorMiddleware(nil).Middleware())

	app.Get("/ok", func(c fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c fiber.Ctx) error { return FromDomain(domain.ErrProjectNotFound) })
	app.Get("/panic", func(c fiber.Ctx) error { panic("boom") })
	app.Post("/guarded", guard, func(c fiber.Ctx) error {
		return c.SendString(fmt.Sprint(c.Locals(CtxSubjectKey)))
	})
	return app
}

func envelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), string(b))
	return m
}

func TestErrorMiddleware(t *testing.T) {
	app := newTestApp(prometheus.NewRegistry(), func(c fiber.Ctx) error { return c.Next() })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.EqualValues(t, fiber.StatusNotFound, envelope(t, resp)["status"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal server error", envelope(t, resp)["message"])
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("secret", "skill-manager", time.Hour)
	app := newTestApp(prometheus.NewRegistry(), NewAuthMiddleware(svc).Middleware())

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", envelope(t, resp)["message"])

	token, _, err := svc.IssueToken("ops", 0)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ops", string(b))
}

func TestNilAuthServicePassesThrough(t *testing.T) {
	app := newTestApp(prometheus.NewRegistry(), NewAuthMiddleware(nil).Middleware())

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := newTestApp(reg, func(c fiber.Ctx) error { return c.Next() })

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, f := range families {
		if f.GetName() != "skillmanager_http_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(3), total)
}
