package http

import (
	"net/http"

	"github.com/kireinail/skillcheck/internal/csvimport"
)

// maxUploadBytes caps CSV uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// ImportCSVHandler accepts a multipart upload under "file" and runs the
// importer. Row-level problems come back in the result, not as an error
// status.
func ImportCSVHandler(im *csvimport.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", 400)
			return
		}
		defer f.Close()

		res, err := im.Import(r.Context(), f, hdr.Filename)
		if err != nil {
			http.Error(w, "import failed: "+err.Error(), 400)
			return
		}
		writeJSON(w, res)
	}
}
