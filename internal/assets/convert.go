// internal/assets/convert.go
package assets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"landingkit/internal/document"
)

// DefaultConcurrency bounds parallel fetches within one export.
const DefaultConcurrency = 8

// libraryPaths hold prefab images shipped with the builder. When one of
// them cannot be loaded a placeholder is shown instead of a broken image.
var libraryPaths = []string{"/bios/", "/icons/"}

// Converter inlines asset references as data URIs. Create one per export:
// its cache lives exactly as long as the Converter.
type Converter struct {
	fetcher     Fetcher
	log         *zap.Logger
	concurrency int

	mu    sync.Mutex
	cache map[string]string
	group singleflight.Group
}

// NewConverter returns a Converter. A nil logger discards output.
func NewConverter(f Fetcher, log *zap.Logger, concurrency int) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Converter{fetcher: f, log: log, concurrency: concurrency, cache: make(map[string]string)}
}

// ConvertToBase64 returns ref as a data URI. Empty refs and data URIs are
// returned unchanged. On failure library images become a placeholder and
// anything else is returned as given.
func (c *Converter) ConvertToBase64(ctx context.Context, ref string) string {
	return c.convert(ctx, ref, "")
}

func (c *Converter) convert(ctx context.Context, ref string, kind Kind) string {
	if ref == "" || document.KindOf(ref) == document.RefDataURI {
		return ref
	}
	// A ref is accepted or rejected per slot kind, so the kind is part of
	// the key.
	key := string(kind) + "\x00" + ref
	c.mu.Lock()
	if v, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		out, err := c.load(ctx, ref, kind)
		if err != nil {
			c.log.Warn("asset inline conversion failed", zap.String("ref", shortRef(ref)), zap.Error(err))
			out = fallbackFor(ref)
		}
		c.mu.Lock()
		c.cache[key] = out
		c.mu.Unlock()
		return out, nil
	})
	return v.(string)
}

func (c *Converter) load(ctx context.Context, ref string, kind Kind) (string, error) {
	blob, err := c.fetcher.Fetch(ctx, ref)
	if err != nil {
		return "", err
	}
	if kind != "" && !kind.accepts(blob.MIMEType) {
		return "", fmt.Errorf("%w: %s content is not a %s", ErrFetch, blob.MIMEType, kind)
	}
	return EncodeDataURI(blob.MIMEType, blob.Data), nil
}

func fallbackFor(ref string) string {
	for _, p := range libraryPaths {
		if strings.Contains(ref, p) {
			return Placeholder("Image unavailable")
		}
	}
	return ref
}

// ProcessDocument returns a copy of doc with every asset reference
// inlined. All slots are converted concurrently and the call returns once
// every conversion has finished; doc itself is never modified.
func (c *Converter) ProcessDocument(ctx context.Context, doc document.Document) document.Document {
	out := doc.Clone()
	slots := Slots(&out)
	results := make([]string, len(slots))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, s := range slots {
		ref := s.Get(&out)
		g.Go(func() error {
			results[i] = c.convert(ctx, ref, s.Kind)
			return nil
		})
	}
	_ = g.Wait()

	for i, s := range slots {
		s.Set(&out, results[i])
	}
	return out
}

// shortRef trims data URIs and long URLs for log output.
func shortRef(ref string) string {
	if len(ref) > 80 {
		return ref[:77] + "..."
	}
	return ref
}
