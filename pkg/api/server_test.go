package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_Wiring(t *testing.T) {
	f := newAPIFixture(t, okWorkspaces{})

	t.Run("unknown route returns 404", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("security headers set on api routes", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/health", "")
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})
}
