package config

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshRejectsMalformedToken(t *testing.T) {
	t.Parallel()

	c := &Cookies{}
	w := httptest.NewRecorder()

	err := c.Refresh(w, "not.a-jwt")
	assert.Error(t, err)
	assert.Empty(t, w.Result().Cookies())
}

func TestRefreshSplitsTokenAcrossCookies(t *testing.T) {
	t.Parallel()

	c := &Cookies{jwt: &JWT{tokenLifetime: time.Hour}}
	w := httptest.NewRecorder()

	err := c.Refresh(w, "header.payload.signature")
	require.NoError(t, err)

	cookies := map[string]string{}
	for _, cookie := range w.Result().Cookies() {
		cookies[cookie.Name] = cookie.Value
	}
	assert.Equal(t, "header.payload", cookies["auth"])
	assert.Equal(t, "signature", cookies["sign"])
}
