package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSSEMiddleware_SetsStreamingHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(SSEMiddleware())
	router.GET("/stream", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/stream", nil))

	if got := recorder.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Error("unexpected content type:", got)
	}
	if got := recorder.Header().Get("Cache-Control"); got != "no-cache" {
		t.Error("unexpected cache control:", got)
	}
	if got := recorder.Header().Get("Connection"); got != "keep-alive" {
		t.Error("unexpected connection header:", got)
	}
}
