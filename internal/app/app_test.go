package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"skill-manager/internal/config"
	"skill-manager/internal/pkg/jwt"
	"skill-manager/internal/snapshot"
	"skill-manager/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBackend struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{docs: map[string][]byte{}}
}

func (b *memBackend) Read(_ context.Context, name string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.docs[name]
	if !ok {
		return nil, snapshot.ErrNoSnapshot
	}
	return d, nil
}

func (b *memBackend) Write(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.docs[name] = append([]byte(nil), data...)
	return nil
}

func (b *memBackend) has(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.docs[name]
	return ok
}

func testConfig() config.Config {
	return config.Config{
		App:     config.AppConfig{AppName: "skill-manager-test"},
		Storage: config.StorageConfig{Backend: config.BackendFile, Checkpoint: config.CheckpointMutation},
	}
}

func newTestApp(t *testing.T, cfg config.Config, backend *memBackend) *App {
	t.Helper()
	c, err := NewContainer(context.Background(), cfg, nil, ServerPolicy(cfg), WithBackend(backend))
	require.NoError(t, err)
	return New(cfg, c, ws.NewHub(nil), nil)
}

func do(t *testing.T, a *App, method, target, body string, headers ...string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), string(b))
	return m
}

func TestSkillLifecycleOverHTTP(t *testing.T) {
	backend := newMemBackend()
	a := newTestApp(t, testConfig(), backend)

	status, body := do(t, a, http.MethodPost, "/api/skills", `{"label":"Go"}`)
	require.Equal(t, http.StatusOK, status, string(body))
	created := decode(t, body)
	assert.Equal(t, "Go", created["label"])
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.True(t, backend.has(DocSkills))

	status, body = do(t, a, http.MethodGet, "/api/skills/"+id, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created, decode(t, body))

	status, body = do(t, a, http.MethodGet, "/api/skills", "")
	require.Equal(t, http.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)

	status, _ = do(t, a, http.MethodDelete, "/api/skills/"+id, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, body = do(t, a, http.MethodGet, "/api/skills/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
	env := decode(t, body)
	assert.EqualValues(t, http.StatusNotFound, env["status"])
}

func TestErrorEnvelope(t *testing.T) {
	a := newTestApp(t, testConfig(), newMemBackend())

	status, body := do(t, a, http.MethodPost, "/api/skills", `{"label":"  "}`)
	require.Equal(t, http.StatusBadRequest, status)
	env := decode(t, body)
	assert.EqualValues(t, http.StatusBadRequest, env["status"])
	data, _ := env["data"].(map[string]any)
	assert.Equal(t, "label", data["field"])

	status, _ = do(t, a, http.MethodGet, "/api/projects/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, a, http.MethodGet, "/api/skills?page=-1", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAssignmentsOverHTTP(t *testing.T) {
	a := newTestApp(t, testConfig(), newMemBackend())

	_, body := do(t, a, http.MethodPost, "/api/projects", `{"label":"Apollo","description":"moon"}`)
	projectID := decode(t, body)["id"].(string)
	_, body = do(t, a, http.MethodPost, "/api/skills", `{"label":"Go"}`)
	skillID := decode(t, body)["id"].(string)
	status, body := do(t, a, http.MethodPost, "/api/employees", `{"first_name":"Ada","last_name":"Lovelace"}`)
	require.Equal(t, http.StatusOK, status, string(body))
	employeeID := decode(t, body)["id"].(string)

	status, body = do(t, a, http.MethodPost, "/api/employees/"+employeeID+"/projects",
		`{"project_id":"`+projectID+`","contribution":"lead","start_date":"2020-01-15"}`)
	require.Equal(t, http.StatusOK, status, string(body))
	pa := decode(t, body)
	assert.Equal(t, "lead", pa["contribution"])
	assert.Equal(t, "2020-01-15", pa["start_date"])
	assert.Nil(t, pa["end_date"])

	status, body = do(t, a, http.MethodPost, "/api/employees/"+employeeID+"/skills",
		`{"skill_id":"`+skillID+`","level":4}`)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "Go", decode(t, body)["label"])

	status, body = do(t, a, http.MethodGet, "/api/employees/"+employeeID, "")
	require.Equal(t, http.StatusOK, status)
	e := decode(t, body)
	skills, _ := e["skills"].(map[string]any)
	assert.Contains(t, skills, "Go")
	projects, _ := e["projects"].([]any)
	assert.Len(t, projects, 1)

	missing := "00000000-0000-0000-0000-000000000001"
	status, _ = do(t, a, http.MethodPost, "/api/employees/"+employeeID+"/skills",
		`{"skill_id":"`+missing+`","level":1}`)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = do(t, a, http.MethodPost, "/api/employees/"+missing+"/skills",
		`{"skill_id":"`+skillID+`","level":1}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGuardProtectsMutations(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = config.AuthConfig{TokenSecret: "secret", TokenTTL: time.Hour, Issuer: "skill-manager"}
	a := newTestApp(t, cfg, newMemBackend())

	status, _ := do(t, a, http.MethodPost, "/api/skills", `{"label":"Go"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, a, http.MethodGet, "/api/skills", "")
	assert.Equal(t, http.StatusOK, status)

	svc := jwt.NewHMACService(cfg.Auth.TokenSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	token, _, err := svc.IssueToken("ops", 0)
	require.NoError(t, err)

	status, body := do(t, a, http.MethodPost, "/api/skills", `{"label":"Go"}`, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, status, string(body))
}

func TestHealthAndMetrics(t *testing.T) {
	a := newTestApp(t, testConfig(), newMemBackend())

	status, body := do(t, a, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, http.StatusOK, decode(t, body)["status"])

	do(t, a, http.MethodPost, "/api/skills", `{"label":"Go"}`)
	status, body = do(t, a, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `skillmanager_store_records{store="skills"} 1`)
}

func TestSessionPolicyDefersWrites(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Checkpoint = config.CheckpointSession
	backend := newMemBackend()
	a := newTestApp(t, cfg, backend)

	status, _ := do(t, a, http.MethodPost, "/api/skills", `{"label":"Go"}`)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, backend.has(DocSkills))

	require.NoError(t, a.Container.Flush(context.Background()))
	assert.True(t, backend.has(DocSkills))

	reloaded, err := NewContainer(context.Background(), cfg, nil, snapshot.PolicySession, WithBackend(backend))
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.SkillStore.Len())
}

func TestServerPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Checkpoint = config.CheckpointCommand
	assert.Equal(t, snapshot.PolicyMutation, ServerPolicy(cfg))
	cfg.Storage.Checkpoint = config.CheckpointSession
	assert.Equal(t, snapshot.PolicySession, ServerPolicy(cfg))
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}
