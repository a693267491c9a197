package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmaleek/alx-listing-app-deployed/config"
	"github.com/brianmaleek/alx-listing-app-deployed/controllers"
	"github.com/brianmaleek/alx-listing-app-deployed/repositories"
	"github.com/brianmaleek/alx-listing-app-deployed/services"
	"github.com/brianmaleek/alx-listing-app-deployed/utils"
)

// selfServedRouter points the pages at the router's own mock API, the way a local
// deployment runs with API_BASE_URL=http://localhost:8080/api.
func selfServedRouter(t *testing.T, origins []string) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, utils.InitValidator())

	var (
		mu     sync.RWMutex
		router *gin.Engine
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	reg := prometheus.NewRegistry()
	logger := log.NewNopLogger()
	cfg := &config.Config{CORSOrigins: origins}
	client := services.NewAPIClient(srv.URL+"/api", 5*time.Second, services.NewBackendMetrics(reg))

	r, err := SetupRouter(cfg, logger, reg, Controllers{
		Pages:      controllers.NewPageController(client, logger),
		Properties: controllers.NewPropertyController(services.NewPropertyService(repositories.NewMemoryPropertyRepository(repositories.SeedProperties())), logger),
		Reviews:    controllers.NewReviewController(services.NewReviewService(repositories.NewMemoryReviewRepository(repositories.SeedReviews())), logger),
	})
	require.NoError(t, err)

	mu.Lock()
	router = r
	mu.Unlock()
	return r, srv
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	r, _ := selfServedRouter(t, []string{"*"})

	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestPagesOverOwnAPI(t *testing.T) {
	r, _ := selfServedRouter(t, []string{"*"})

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, len(repositories.SeedProperties()), strings.Count(w.Body.String(), `class="block property-card"`))

	w = get(r, "/properties/1")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Seaside Retreat Villa")
	assert.Contains(t, body, "Reviews (2)")
	assert.Contains(t, body, "John Doe")

	w = get(r, "/properties/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMockAPIMethodNotAllowed(t *testing.T) {
	r, _ := selfServedRouter(t, []string{"*"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/properties/1/reviews", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"message":"Method not allowed"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := selfServedRouter(t, []string{"*"})
	get(r, "/properties/1")

	w := get(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `rental_http_requests_total{method="GET",route="/properties/:id",status="200"}`)
	assert.Contains(t, body, `rental_backend_requests_total{operation="get_property",outcome="ok"} 1`)
	assert.Contains(t, body, `rental_backend_requests_total{operation="list_reviews",outcome="ok"} 1`)
}

func TestCORS(t *testing.T) {
	r, _ := selfServedRouter(t, []string{"https://app.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
