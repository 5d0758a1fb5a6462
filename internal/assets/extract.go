// internal/assets/extract.go
package assets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"landingkit/internal/document"
)

// HashLength is the number of hex characters of SHA-256 kept in names.
const HashLength = 12

// Asset is one extracted file.
type Asset struct {
	ID       string // logical slot name
	Kind     Kind
	Data     []byte
	MIMEType string
	Hash     string
	Filename string
}

// Path is the bundle-relative location, e.g. assets/images/abc123.png.
func (a Asset) Path() string {
	return path.Join("assets", a.Kind.Dir(), a.Filename)
}

// Manifest maps logical slot names to bundle-relative paths.
type Manifest map[string]string

// Result is the outcome of an extraction.
type Result struct {
	Assets   []Asset
	Manifest Manifest
}

// BundleFile is a file destined for the bundle.
type BundleFile struct {
	Path string
	Data []byte
}

// Files returns one file per distinct path, in slot order. Slots holding
// identical bytes share a path and so produce a single file.
func (r Result) Files() []BundleFile {
	seen := make(map[string]bool, len(r.Assets))
	files := make([]BundleFile, 0, len(r.Assets))
	for _, a := range r.Assets {
		p := a.Path()
		if seen[p] {
			continue
		}
		seen[p] = true
		files = append(files, BundleFile{Path: p, Data: a.Data})
	}
	return files
}

// TotalBytes sums the size of the distinct files.
func (r Result) TotalBytes() int {
	n := 0
	for _, f := range r.Files() {
		n += len(f.Data)
	}
	return n
}

// ContentHash returns the short content hash used in asset filenames.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:HashLength]
}

// Extractor pulls asset bytes out of a document for a folder bundle.
type Extractor struct {
	fetcher     Fetcher
	log         *zap.Logger
	concurrency int
}

func NewExtractor(f Fetcher, log *zap.Logger, concurrency int) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Extractor{fetcher: f, log: log, concurrency: concurrency}
}

// ExtractAssets loads every non-empty slot concurrently. A slot that fails
// to load is logged and left out of the result; the rest still succeed.
func (e *Extractor) ExtractAssets(ctx context.Context, doc document.Document) Result {
	slots := Slots(&doc)
	found := make([]*Asset, len(slots))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, s := range slots {
		ref := s.Get(&doc)
		if ref == "" {
			continue
		}
		g.Go(func() error {
			a, err := e.extract(ctx, s, ref)
			if err != nil {
				e.log.Warn("asset extraction skipped",
					zap.String("asset", s.Name),
					zap.String("ref", shortRef(ref)),
					zap.Error(err))
				return nil
			}
			found[i] = a
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Manifest: make(Manifest)}
	for _, a := range found {
		if a == nil {
			continue
		}
		res.Assets = append(res.Assets, *a)
		res.Manifest[a.ID] = a.Path()
	}
	return res
}

func (e *Extractor) extract(ctx context.Context, s Slot, ref string) (*Asset, error) {
	blob, err := e.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !s.Kind.accepts(blob.MIMEType) {
		return nil, fmt.Errorf("%w: %s content is not a %s", ErrFetch, blob.MIMEType, s.Kind)
	}
	hash := ContentHash(blob.Data)
	return &Asset{
		ID:       s.Name,
		Kind:     s.Kind,
		Data:     blob.Data,
		MIMEType: blob.MIMEType,
		Hash:     hash,
		Filename: hash + "." + ExtensionFor(blob.MIMEType),
	}, nil
}
