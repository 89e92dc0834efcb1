package web

import (
	"io/fs"
	"net/http"
)

// Static returns a handler serving files from subdir of fsys with urlPrefix
// stripped from the request path.
func Static(fsys fs.FS, subdir, urlPrefix string) http.Handler {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		panic("web: static sub-filesystem: " + err.Error())
	}
	return http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub)))
}
