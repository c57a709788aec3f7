package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

	router := gin.New()
	router.Use(ErrorHandler(logger))
	router.GET("/boom", func(*gin.Context) { panic("kaboom") })

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, rec.Body.String())
}

func TestLogger_LogsServerErrorsAtErrorLevel(t *testing.T) {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Error("Request failed", mock.MatchedBy(func(f map[string]any) bool {
		return f["status"] == http.StatusBadGateway && f["route"] == "/upstream"
	})).Once()
	logger.EXPECT().Info("Request processed", mock.Anything).Once()

	router := gin.New()
	router.Use(Logger(logger))
	router.GET("/upstream", func(c *gin.Context) { c.Status(http.StatusBadGateway) })
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest(http.MethodGet, "/upstream", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/ok", nil))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Success", statusText(204))
	assert.Equal(t, "Client Error", statusText(404))
	assert.Equal(t, "Server Error", statusText(503))
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://studio.example.com"}))
	router.GET("/api/images", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/images", nil)
		req.Header.Set("Origin", "https://studio.example.com")

		rec := serve(router, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://studio.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/images", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		rec := serve(router, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/images", nil)
		req.Header.Set("Origin", "https://studio.example.com")

		rec := serve(router, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCORS_Wildcard(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"*"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := serve(router, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	started  int
	finished []recordedRequest
}

func (f *fakeRecorder) HTTPStarted() {
	f.started++
}

func (f *fakeRecorder) HTTPFinished(method, route string, status int, _ time.Duration) {
	f.finished = append(f.finished, recordedRequest{method: method, route: route, status: status})
}

func TestMetrics_RecordsMatchedRoute(t *testing.T) {
	recorder := &fakeRecorder{}
	router := gin.New()
	router.Use(Metrics(recorder))
	router.GET("/api/images/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(router, httptest.NewRequest(http.MethodGet, "/api/images/abc", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2, recorder.started)
	assert.Equal(t, []recordedRequest{
		{method: http.MethodGet, route: "/api/images/:id", status: http.StatusNotFound},
		{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound},
	}, recorder.finished)
}
