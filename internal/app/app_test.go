package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMount(t *testing.T) {
	t.Parallel()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})

	t.Run("empty base path leaves handler untouched", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		mount("", inner).ServeHTTP(w, httptest.NewRequest("GET", "/status", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/status", w.Body.String())
	})

	t.Run("base path is stripped before routing", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		mount("/sudoku", inner).
			ServeHTTP(w, httptest.NewRequest("GET", "/sudoku/status", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/status", w.Body.String())
	})

	t.Run("requests outside the base path miss", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		mount("/sudoku", inner).
			ServeHTTP(w, httptest.NewRequest("GET", "/status", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
