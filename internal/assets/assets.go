// Package assets serves the banner stylesheet embedded in the binary.
package assets

import (
	"embed"
	"fmt"
	"html"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const (
	StylesheetName   = "product-banner.css"
	StylesheetHandle = "product-banner-block-frontend"
)

//go:embed static/*.css
var staticFS embed.FS

var (
	stylesheetOnce    sync.Once
	stylesheet        []byte
	stylesheetVersion string
)

func loadStylesheet() {
	stylesheetOnce.Do(func() {
		data, err := staticFS.ReadFile("static/" + StylesheetName)
		if err != nil {
			panic(fmt.Sprintf("embedded stylesheet is missing: %v", err))
		}
		stylesheet = data
		stylesheetVersion = fmt.Sprintf("%016x", xxhash.Sum64(data))
	})
}

func Stylesheet() []byte {
	loadStylesheet()
	return stylesheet
}

// Version changes whenever the stylesheet content does.
func Version() string {
	loadStylesheet()
	return stylesheetVersion
}

func StylesheetURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + StylesheetName + "?ver=" + Version()
}

// StylesheetTag is the <link> element a page includes when it carries a
// banner block.
func StylesheetTag(baseURL string) string {
	return fmt.Sprintf(`<link rel="stylesheet" id="%s-css" href="%s" media="all">`,
		StylesheetHandle, html.EscapeString(StylesheetURL(baseURL)))
}

var contentTypes = map[string]string{
	".css": "text/css; charset=utf-8",
}

func contentType(name string) string {
	if ct, ok := contentTypes[path.Ext(name)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Handler serves embedded files by base name. Versioned requests are cached
// for a year; every response carries the content hash as ETag.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Base(r.URL.Path)
		if name != StylesheetName {
			http.NotFound(w, r)
			return
		}

		etag := `"` + Version() + `"`
		w.Header().Set("ETag", etag)
		if r.URL.Query().Get("ver") == Version() {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=300")
		}

		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", contentType(name))
		_, _ = w.Write(Stylesheet())
	})
}
