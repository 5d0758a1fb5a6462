// internal/assets/datauri.go

// Package assets resolves the asset references in a document. It can
// inline every reference as a data URI for single-file pages, or extract
// the bytes into content-addressed files for a folder bundle.
package assets

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrUnsupportedRef = errors.New("unsupported asset reference")
	ErrFetch          = errors.New("asset fetch failed")
	errNotDataURI     = errors.New("not a data URI")
)

// DataURI is a decoded data: URI.
type DataURI struct {
	MIMEType string
	Data     []byte
}

// ParseDataURI decodes data:[<mime>][;param=v][;base64],<payload>. Both
// base64 and percent-encoded payloads are accepted.
func ParseDataURI(s string) (DataURI, error) {
	s = strings.TrimSpace(s)
	if len(s) < 5 || !strings.EqualFold(s[:5], "data:") {
		return DataURI{}, errNotDataURI
	}
	header, payload, ok := strings.Cut(s[5:], ",")
	if !ok {
		return DataURI{}, fmt.Errorf("data URI has no payload separator")
	}

	params := strings.Split(header, ";")
	mimeType := strings.ToLower(strings.TrimSpace(params[0]))
	if mimeType == "" {
		mimeType = "text/plain"
	}
	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}

	var data []byte
	var err error
	if isBase64 {
		data, err = decodeBase64(payload)
	} else {
		var text string
		text, err = url.PathUnescape(payload)
		data = []byte(text)
	}
	if err != nil {
		return DataURI{}, fmt.Errorf("decode data URI payload: %w", err)
	}
	return DataURI{MIMEType: mimeType, Data: data}, nil
}

func decodeBase64(payload string) ([]byte, error) {
	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, payload)
	if unescaped, err := url.PathUnescape(payload); err == nil {
		payload = unescaped
	}
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}

// EncodeDataURI returns a base64 data URI for data.
func EncodeDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
