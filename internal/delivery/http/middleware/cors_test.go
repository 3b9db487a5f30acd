package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://eventlane.example", "https://admin.eventlane.example/"}, next)

	t.Run("preflight for allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "http://test/events", nil)
		req.Header.Set("Origin", "https://eventlane.example")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "https://eventlane.example", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, Accept", rr.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("trailing slash in config is normalized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/events", nil)
		req.Header.Set("Origin", "https://admin.eventlane.example")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "https://admin.eventlane.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no cors headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/events", nil)
		req.Header.Set("Origin", "https://other.example")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
