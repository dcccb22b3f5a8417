// Package blob holds the two image backends: Inline folds the bytes
// into a self-contained data URL stored on the owning document, Store
// uploads to a remote object store and keeps only the URL. Both satisfy
// domain.ImageStore so callers never branch on the variant.
package blob

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
)

type Inline struct{}

func NewInline() Inline { return Inline{} }

// Upload returns a data:<mime>;base64 string. The filename is only used
// as a sniffing fallback hint and is not retained.
func (Inline) Upload(_ context.Context, _ string, data []byte) (string, error) {
	mime := http.DetectContentType(data)
	// DetectContentType appends charset info for text; strip it so the
	// data URL stays canonical.
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Delete is a no-op: an inline image lives and dies with its document.
func (Inline) Delete(_ context.Context, _ string) error { return nil }
