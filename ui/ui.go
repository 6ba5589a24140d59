// Package ui serves the documentation browser: a static asset bundle plus the
// index redirects Swagger clients expect at the mount point.
package ui

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed dist
var bundled embed.FS

// Config locates the browser and its assets.
type Config struct {
	// Path is the mount point, with or without a trailing slash ("/doc").
	Path string
	// FS overrides the embedded asset bundle.
	FS fs.FS
}

// Register mounts the documentation browser on e. GET requests to the mount
// point itself (with or without a trailing slash) redirect to the browser's
// index page, honoring an application-context prefix forwarded by a proxy;
// everything below it is served from the asset bundle.
func Register(e *echo.Echo, cfg Config) {
	base := normalizePath(cfg.Path)
	assets := cfg.FS
	if assets == nil {
		assets = mustSub(bundled, "dist")
	}

	redirect := func(c echo.Context) error {
		return c.Redirect(http.StatusFound, contextPrefix(c)+base+"/index.html")
	}
	if base != "" {
		e.GET(base, redirect)
	}
	e.GET(base+"/", redirect)
	e.StaticFS(base, assets)
}

// contextPrefix returns the application-context prefix the request was
// forwarded under, without a trailing slash.
func contextPrefix(c echo.Context) string {
	return strings.TrimSuffix(c.Request().Header.Get("X-Forwarded-Prefix"), "/")
}

func normalizePath(p string) string {
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimSuffix(p, "/")
}

func mustSub(f embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
