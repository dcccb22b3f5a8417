package blob

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"atlas_travel/internal/adapters/observability"
)

// Store talks to a blob storage service over HTTP: PUT to upload under a
// generated key, DELETE to remove. Requests are authenticated with an
// HMAC-SHA256 of the request path.
type Store struct {
	base   string
	secret string
	folder string
	hc     *http.Client
}

func NewStore(base, secret, folder string) (*Store, error) {
	if base == "" {
		return nil, fmt.Errorf("blob base URL is required")
	}
	return &Store{
		base:   strings.TrimRight(base, "/"),
		secret: secret,
		folder: folder,
		hc:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *Store) sign(p string) string {
	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(p))
	return hex.EncodeToString(mac.Sum(nil))
}

// sanitize keeps the original filename readable in the key while
// dropping path separators and whitespace.
func sanitize(name string) string {
	name = path.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}

// Upload stores the bytes under images/<folder>/<uuid>_<name> and
// returns the fetchable URL of the new object.
func (s *Store) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	key := fmt.Sprintf("images/%s/%s_%s", s.folder, uuid.NewString(), sanitize(filename))
	target := s.base + "/" + key

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", http.DetectContentType(data))
	req.Header.Set("X-Signature", s.sign("/"+key))

	resp, err := s.hc.Do(req)
	if err != nil {
		observability.ObserveBlob("upload", "error")
		return "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observability.ObserveBlob("upload", "error")
		return "", fmt.Errorf("blob upload %s: status %d", key, resp.StatusCode)
	}
	observability.ObserveBlob("upload", "ok")
	return target, nil
}

// Delete removes the object behind the reference. A 404 counts as
// success: the blob is gone either way.
func (s *Store) Delete(ctx context.Context, ref string) error {
	u, err := url.Parse(ref)
	if err != nil {
		return fmt.Errorf("blob delete: bad reference %q: %w", ref, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, ref, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Signature", s.sign(u.Path))

	resp, err := s.hc.Do(req)
	if err != nil {
		observability.ObserveBlob("delete", "error")
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusNotFound || (resp.StatusCode >= 200 && resp.StatusCode <= 299) {
		observability.ObserveBlob("delete", "ok")
		return nil
	}
	observability.ObserveBlob("delete", "error")
	return fmt.Errorf("blob delete %s: status %d", u.Path, resp.StatusCode)
}
