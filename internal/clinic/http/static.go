package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// StaticHandler serves the browser front end from dir. Unknown paths fall
// back to index.html so client-side routes survive a reload.
func StaticHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := path.Clean("/" + r.URL.Path)
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p))); err != nil {
			index := filepath.Join(dir, "index.html")
			if _, err := os.Stat(index); err == nil {
				http.ServeFile(w, r, index)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})
}
