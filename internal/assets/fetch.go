// internal/assets/fetch.go
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"landingkit/internal/document"
)

// DefaultMaxBytes caps a single fetched asset.
const DefaultMaxBytes = 50 << 20

// Blob is the raw content behind an asset reference.
type Blob struct {
	Data     []byte
	MIMEType string
}

// Fetcher loads the bytes behind an asset reference.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (Blob, error)
}

// LocalFetcher serves path references from a static directory. References
// are confined to Root; "../" cannot escape it.
type LocalFetcher struct {
	Fs       afero.Fs
	Root     string
	MaxBytes int64
}

func (f *LocalFetcher) Fetch(ctx context.Context, ref string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return Blob{}, err
	}
	p := ref
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = path.Clean("/" + strings.TrimPrefix(p, "./"))
	full := filepath.Join(f.Root, filepath.FromSlash(p))

	file, err := f.Fs.Open(full)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: open %s: %v", ErrFetch, ref, err)
	}
	defer file.Close()

	data, err := readLimited(file, f.MaxBytes)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: read %s: %v", ErrFetch, ref, err)
	}
	return Blob{Data: data, MIMEType: MIMEForPath(p)}, nil
}

// HTTPFetcher downloads http(s) references.
type HTTPFetcher struct {
	Client   *http.Client
	MaxBytes int64
}

// NewHTTPFetcher returns a fetcher with its own client and timeout.
func NewHTTPFetcher(timeout time.Duration, maxBytes int64) *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}, MaxBytes: maxBytes}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) (Blob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Blob{}, fmt.Errorf("%w: GET %s: %s", ErrFetch, ref, resp.Status)
	}
	data, err := readLimited(resp.Body, f.MaxBytes)
	if err != nil {
		return Blob{}, fmt.Errorf("%w: read %s: %v", ErrFetch, ref, err)
	}
	return Blob{Data: data, MIMEType: baseMIME(resp.Header.Get("Content-Type"))}, nil
}

func readLimited(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > max {
		return nil, fmt.Errorf("asset larger than %d bytes", max)
	}
	return data, nil
}

// Loader routes a reference to the right source: data URIs are decoded in
// place, URLs go to Remote and paths to Local. The returned blob always
// carries a MIME type.
type Loader struct {
	Local  Fetcher
	Remote Fetcher
}

// NewLoader wires a Loader over a static directory and an HTTP client.
func NewLoader(fs afero.Fs, staticRoot string, timeout time.Duration, maxBytes int64) *Loader {
	return &Loader{
		Local:  &LocalFetcher{Fs: fs, Root: staticRoot, MaxBytes: maxBytes},
		Remote: NewHTTPFetcher(timeout, maxBytes),
	}
}

func (l *Loader) Fetch(ctx context.Context, ref string) (Blob, error) {
	ref = strings.TrimSpace(ref)
	var (
		blob Blob
		err  error
	)
	switch document.KindOf(ref) {
	case document.RefDataURI:
		var d DataURI
		d, err = ParseDataURI(ref)
		blob = Blob{Data: d.Data, MIMEType: d.MIMEType}
	case document.RefURL:
		if l.Remote == nil {
			return Blob{}, fmt.Errorf("%w: no remote fetcher for %s", ErrFetch, ref)
		}
		blob, err = l.Remote.Fetch(ctx, ref)
	case document.RefPath:
		if l.Local == nil {
			return Blob{}, fmt.Errorf("%w: no static directory for %s", ErrFetch, ref)
		}
		blob, err = l.Local.Fetch(ctx, ref)
	case document.RefEmpty:
		return Blob{}, fmt.Errorf("%w: empty reference", ErrUnsupportedRef)
	default:
		return Blob{}, fmt.Errorf("%w: %q", ErrUnsupportedRef, ref)
	}
	if err != nil {
		return Blob{}, err
	}
	blob.MIMEType = sniffMIME(blob.MIMEType, ref, blob.Data)
	return blob, nil
}
