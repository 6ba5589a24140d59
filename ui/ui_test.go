package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(cfg Config) *echo.Echo {
	e := echo.New()
	Register(e, cfg)
	return e
}

func TestRedirectsToIndex(t *testing.T) {
	e := testServer(Config{Path: "/doc"})

	for _, target := range []string{"/doc", "/doc/"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, target)
		assert.Equal(t, "/doc/index.html", rec.Header().Get(echo.HeaderLocation), target)
	}
}

func TestRedirectHonorsForwardedPrefix(t *testing.T) {
	e := testServer(Config{Path: "/doc"})

	req := httptest.NewRequest(http.MethodGet, "/doc", nil)
	req.Header.Set("X-Forwarded-Prefix", "/myapp/")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/myapp/doc/index.html", rec.Header().Get(echo.HeaderLocation))
}

func TestTrailingSlashInConfiguredPath(t *testing.T) {
	e := testServer(Config{Path: "/doc/"})

	req := httptest.NewRequest(http.MethodGet, "/doc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/doc/index.html", rec.Header().Get(echo.HeaderLocation))
}

func TestServesStaticAssets(t *testing.T) {
	assets := fstest.MapFS{
		"index.html": {Data: []byte("<html>docs</html>")},
		"screen.css": {Data: []byte("body {}")},
	}
	e := testServer(Config{Path: "/doc", FS: assets})

	req := httptest.NewRequest(http.MethodGet, "/doc/index.html", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>docs</html>", rec.Body.String())
}

func TestEmbeddedBundleHasIndex(t *testing.T) {
	e := testServer(Config{Path: "/doc"})

	req := httptest.NewRequest(http.MethodGet, "/doc/index.html", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "API documentation")
}

func TestUnknownAssetIs404(t *testing.T) {
	e := testServer(Config{Path: "/doc"})

	req := httptest.NewRequest(http.MethodGet, "/doc/nope.js", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
