package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves files from publicDir and falls back to index.html for
// any path that does not match a real file, so client-side routes resolve.
func SPAHandler(publicDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(publicDir))
	index := filepath.Join(publicDir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(publicDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
