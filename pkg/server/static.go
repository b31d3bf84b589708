package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ryanuber/go-glob"
)

// IndexPage is the front end page served for / and /index.html
const IndexPage = "web_ui.html"

// private key material is never served even when it lives in the web root
var hiddenPatterns = []string{"*.key", "*.pem"}

func (a *API) index(w http.ResponseWriter, r *http.Request) {
	p := filepath.Join(a.dir, IndexPage)

	f, err := os.Open(p)
	if err != nil {
		a.log.Error("Unable to open index page", "path", p, "error", err)
		a.notFound(w, r)
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		a.notFound(w, r)
		return
	}

	// ServeFile would redirect /index.html back to /
	http.ServeContent(w, r, IndexPage, fi.ModTime(), f)
}

func (a *API) static(w http.ResponseWriter, r *http.Request) {
	for _, p := range hiddenPatterns {
		if glob.Glob(p, strings.ToLower(r.URL.Path)) {
			a.notFound(w, r)
			return
		}
	}

	http.FileServer(http.Dir(a.dir)).ServeHTTP(w, r)
}
