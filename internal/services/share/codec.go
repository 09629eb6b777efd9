package share

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"invoice-builder-backend/internal/models"
)

var ErrBadToken = errors.New("share token is not a valid invoice payload")

// EncodeSnapshot packs an invoice snapshot into a URL-safe token:
// JSON -> DEFLATE -> base64url. The token is self-contained so the client
// can embed it directly in a shareable link.
func EncodeSnapshot(inv *models.Invoice) (string, error) {
	raw, err := json.Marshal(inv)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(raw); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeSnapshot reverses EncodeSnapshot. Any malformed token maps to
// ErrBadToken; the caller still re-validates the decoded snapshot.
func DecodeSnapshot(token string) (*models.Invoice, error) {
	packed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrBadToken
	}

	r := flate.NewReader(bytes.NewReader(packed))
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrBadToken
	}

	var inv models.Invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, ErrBadToken
	}
	return &inv, nil
}
