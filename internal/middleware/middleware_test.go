package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"back_office/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), AccessLog(), Language(i18n.Must()))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString("requestID"), "lang": LanguageFrom(c).String()})
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36, "generated ids are uuids")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Body.String(), `"id":"abc-123"`)
}

func TestLanguage(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/ping?lang=uz", nil)
	req.Header.Set("Accept-Language", "ru")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "uz", w.Header().Get("Content-Language"))
	assert.Contains(t, w.Body.String(), `"lang":"uz"`)
}

func TestLanguageFrom_Default(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "en", LanguageFrom(c).String())
}
