package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondJSON(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		respondJSON(c, http.StatusOK, map[string]string{"key": "value"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"key":"value"}`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestRespondError(t *testing.T) {
	t.Run("returns detail body", func(t *testing.T) {
		router := gin.New()
		router.GET("/test", func(c *gin.Context) {
			respondError(c, http.StatusBadRequest, "Text cannot be empty")
		})

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"detail":"Text cannot be empty"}`, w.Body.String())
	})

	t.Run("aborts remaining handlers", func(t *testing.T) {
		called := false
		router := gin.New()
		router.GET("/test", func(c *gin.Context) {
			respondError(c, http.StatusServiceUnavailable, "Model not loaded")
		}, func(c *gin.Context) {
			called = true
		})

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.False(t, called)
	})
}
