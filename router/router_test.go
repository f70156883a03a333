package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dbpkg "permitportal/db"
	"permitportal/logger"
	"permitportal/models"
	"permitportal/proxy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newStack starts the store API on a real listener and returns a web engine proxying to it.
func newStack(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewZapAdapter(zaptest.NewLogger(t))

	database, err := dbpkg.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	api := gin.New()
	Initialize(api, database, log)
	backend := httptest.NewServer(api)
	t.Cleanup(backend.Close)

	web := gin.New()
	InitializeWeb(web, proxy.New(backend.URL, 0, log), log)
	return web
}

func send(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWeb_FullLifecycleThroughProxy(t *testing.T) {
	web := newStack(t)

	w := send(web, http.MethodPost, "/api/permits",
		`{"applicant_name":"Ahmed Al-Saud","applicant_email":"ahmed@example.com","permit_type":"Building Permit"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.PermitApplication
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.PERMIT_STATUS_PENDING, created.ApplicationStatus)

	path := "/api/permits/" + jsonNumber(created.ID)

	w = send(web, http.MethodPatch, path, `{"application_status":"APPROVED"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"application_status":"APPROVED"`)
	assert.Contains(t, w.Body.String(), `"applicant_name":"Ahmed Al-Saud"`)

	w = send(web, http.MethodGet, "/api/permits", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.PermitApplication
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = send(web, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = send(web, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Permit application with ID `+jsonNumber(created.ID)+` not found"}`, w.Body.String())
}

func TestWeb_ValidationErrorRelayed(t *testing.T) {
	web := newStack(t)

	w := send(web, http.MethodPost, "/api/permits",
		`{"applicant_name":"A","applicant_email":"not-an-email","permit_type":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"validation failed","details":["applicant_email must be an email"]}`, w.Body.String())
}

func TestHealthAndMetrics(t *testing.T) {
	web := newStack(t)

	w := send(web, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = send(web, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	web := newStack(t)

	w := send(web, http.MethodOptions, "/api/permits", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
