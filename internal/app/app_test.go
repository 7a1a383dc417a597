package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqres/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Host:            "127.0.0.1",
		Port:            "8000",
		Storage:         config.StorageMemory,
		ListStyle:       config.ListStylePage,
		LoginEmail:      "eve.holt@reqres.in",
		LoginPassword:   "cityslicka",
		TokenMode:       config.TokenModeStatic,
		StaticToken:     "QpwL5tke4Pnpja7X4",
		TokenTTL:        time.Hour,
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(context.Background(), cfg, logger)
	require.NoError(t, err)
	srv := httptest.NewServer(a.Handler)
	t.Cleanup(func() {
		srv.Close()
		_ = a.Close()
	})
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

func TestNew_rejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Storage = "redis"
	_, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestListUsers(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name      string
		query     string
		wantItems int
		wantPage  float64
		wantSize  float64
		wantPages float64
	}{
		{name: "no params returns everything", query: "", wantItems: 12, wantPage: 1, wantSize: 12, wantPages: 1},
		{name: "size only", query: "?size=6", wantItems: 6, wantPage: 1, wantSize: 6, wantPages: 2},
		{name: "page only uses default size", query: "?page=2", wantItems: 6, wantPage: 2, wantSize: 6, wantPages: 2},
		{name: "page past the end", query: "?page=3&size=6", wantItems: 0, wantPage: 3, wantSize: 6, wantPages: 2},
		{name: "size 10 first page", query: "?size=10", wantItems: 10, wantPage: 1, wantSize: 10, wantPages: 2},
		{name: "size 10 second page", query: "?page=2&size=10", wantItems: 2, wantPage: 2, wantSize: 10, wantPages: 2},
		{name: "per_page alias", query: "?per_page=4&page=3", wantItems: 4, wantPage: 3, wantSize: 4, wantPages: 3},
		{name: "size larger than total", query: "?size=50", wantItems: 12, wantPage: 1, wantSize: 50, wantPages: 1},
		{name: "trailing slash", query: "/?size=5", wantItems: 5, wantPage: 1, wantSize: 5, wantPages: 3},
		{name: "page beyond int range", query: "?page=99999999999999999999", wantItems: 0, wantPage: float64(math.MaxInt), wantSize: 6, wantPages: 2},
		{name: "whitespace around page", query: "?page=%202&size=6", wantItems: 6, wantPage: 2, wantSize: 6, wantPages: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, srv, http.MethodGet, "/api/users"+tt.query, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)

			items, ok := body["items"].([]any)
			require.True(t, ok, "items must be a JSON array")
			assert.Len(t, items, tt.wantItems)
			assert.Equal(t, float64(12), body["total"])
			assert.Equal(t, tt.wantPage, body["page"])
			assert.Equal(t, tt.wantSize, body["size"])
			assert.Equal(t, tt.wantPages, body["pages"])
		})
	}
}

func TestListUsers_invalidQuery(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name     string
		query    string
		wantType string
		wantLoc  []any
		wantMsg  string
		wantIn   string
	}{
		{
			name:     "non-integer page",
			query:    "?page=qwe",
			wantType: "int_parsing",
			wantLoc:  []any{"query", "page"},
			wantMsg:  "Input should be a valid integer, unable to parse string as an integer",
			wantIn:   "qwe",
		},
		{
			name:     "zero page",
			query:    "?page=0",
			wantType: "greater_than_equal",
			wantLoc:  []any{"query", "page"},
			wantMsg:  "Input should be greater than or equal to 1",
			wantIn:   "0",
		},
		{
			name:     "negative per_page",
			query:    "?per_page=-2",
			wantType: "greater_than_equal",
			wantLoc:  []any{"query", "per_page"},
			wantMsg:  "Input should be greater than or equal to 1",
			wantIn:   "-2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, srv, http.MethodGet, "/api/users"+tt.query, "")
			require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			detail, ok := body["detail"].([]any)
			require.True(t, ok)
			require.Len(t, detail, 1)
			entry := detail[0].(map[string]any)
			assert.Equal(t, tt.wantType, entry["type"])
			assert.Equal(t, tt.wantLoc, entry["loc"])
			assert.Equal(t, tt.wantMsg, entry["msg"])
			assert.Equal(t, tt.wantIn, entry["input"])
		})
	}
}

func TestListUsers_reqresStyle(t *testing.T) {
	cfg := testConfig()
	cfg.ListStyle = config.ListStyleReqres
	srv := newTestServer(t, cfg)

	resp, body := do(t, srv, http.MethodGet, "/api/users?page=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(6), body["per_page"])
	assert.Equal(t, float64(12), body["total"])
	assert.Equal(t, float64(2), body["total_pages"])
	data := body["data"].([]any)
	require.Len(t, data, 6)
	assert.Equal(t, float64(7), data[0].(map[string]any)["id"])
	assert.Contains(t, body, "support")
}

func TestUserLifecycle(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, body := do(t, srv, http.MethodPost, "/api/users", `{"name":"morpheus","job":"leader"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "morpheus", body["name"])
	assert.Equal(t, "13", body["id"])
	assert.NotEmpty(t, body["createdAt"])

	resp, body = do(t, srv, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(13), body["total"])

	resp, body = do(t, srv, http.MethodPatch, "/api/users/2", `{"job":"zion resident"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "zion resident", body["job"])
	assert.Equal(t, "janet.weaver@reqres.in", body["email"])
	assert.NotEmpty(t, body["updatedAt"])

	resp, body = do(t, srv, http.MethodPut, "/api/users/2",
		`{"email":"janet@reqres.in","first_name":"Janet","last_name":"W","avatar":"https://reqres.in/img/faces/2-image.jpg"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "janet@reqres.in", body["email"])
	assert.NotContains(t, body, "job")

	resp, _ = do(t, srv, http.MethodDelete, "/api/users/2", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/api/users/2", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", body["detail"])

	resp, _ = do(t, srv, http.MethodDelete, "/api/users/2", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/api/users?size=100", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(12), body["total"])
}

func TestUserErrors(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "non-integer id", method: http.MethodGet, path: "/api/users/abc", wantStatus: http.StatusUnprocessableEntity},
		{name: "zero id", method: http.MethodGet, path: "/api/users/0", wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown id", method: http.MethodGet, path: "/api/users/23", wantStatus: http.StatusNotFound},
		{name: "create without job", method: http.MethodPost, path: "/api/users", body: `{"name":"morpheus"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "create malformed json", method: http.MethodPost, path: "/api/users", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "patch duplicate email", method: http.MethodPatch, path: "/api/users/1", body: `{"email":"janet.weaver@reqres.in"}`, wantStatus: http.StatusConflict},
		{name: "put missing fields", method: http.MethodPut, path: "/api/users/1", body: `{"email":"george@reqres.in"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "method not allowed", method: http.MethodPost, path: "/api/users/1", body: `{}`, wantStatus: http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAuthEndpoints(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "login succeeds",
			path:       "/api/login",
			body:       `{"email":"eve.holt@reqres.in","password":"cityslicka"}`,
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"token": "QpwL5tke4Pnpja7X4"},
		},
		{
			name:       "login missing password",
			path:       "/api/login",
			body:       `{"email":"peter@klaven"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Missing password"},
		},
		{
			name:       "login wrong password",
			path:       "/api/login",
			body:       `{"email":"eve.holt@reqres.in","password":"nope"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   map[string]any{"error": "Invalid login credentials"},
		},
		{
			name:       "register known user",
			path:       "/api/register",
			body:       `{"email":"eve.holt@reqres.in","password":"pistol"}`,
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"id": float64(4), "token": "QpwL5tke4Pnpja7X4"},
		},
		{
			name:       "register unknown user",
			path:       "/api/register",
			body:       `{"email":"sydney@fife","password":"pistol"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Note: Only defined users succeed registration"},
		},
		{
			name:       "register empty body",
			path:       "/api/register",
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Missing email or username"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, srv, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestStatusAndRoot(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, body := do(t, srv, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["users"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, body = do(t, srv, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "reqres mock API", body["message"])

	resp, _ = do(t, srv, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDataFilePersistsAcrossRestarts(t *testing.T) {
	cfg := testConfig()
	cfg.DataFile = filepath.Join(t.TempDir(), "users.json")

	srv := newTestServer(t, cfg)
	resp, _ := do(t, srv, http.MethodDelete, "/api/users/1", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	srv.Close()

	srv = newTestServer(t, cfg)
	resp, body := do(t, srv, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(11), body["total"])
}
