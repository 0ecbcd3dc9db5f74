// Package storage archives import artifacts: raw CSV uploads and, when
// requested, rendered report PDFs.
package storage

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}

// ArchiveKey builds a date-partitioned key for an uploaded artifact,
// e.g. "imports/2026/08/29/1756454400-checks.csv". The original filename
// is flattened to its base name.
func ArchiveKey(prefix, filename string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	return fmt.Sprintf("%s/%s/%d-%s",
		prefix, now.UTC().Format("2006/01/02"), now.Unix(), name)
}
