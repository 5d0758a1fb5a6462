// internal/builder/builder.go

// Package builder runs the export pipeline: validate, clone, convert or
// extract assets, render, bundle.
package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"landingkit/internal/assets"
	"landingkit/internal/bundle"
	"landingkit/internal/document"
	"landingkit/internal/render"
	"landingkit/internal/validate"
)

var (
	ErrAssembly      = errors.New("bundle assembly failed")
	ErrUnknownFormat = errors.New("unknown export format")
)

// DefaultSizeWarning is the single-file size above which exports warn.
const DefaultSizeWarning = 6 * 1024 * 1024

type Format string

const (
	FormatHTML   Format = "html"
	FormatZip    Format = "zip"
	FormatFolder Format = "folder"
	FormatJSON   Format = "json"
)

// Formats lists the export formats in menu order.
func Formats() []Format {
	return []Format{FormatHTML, FormatZip, FormatFolder, FormatJSON}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Artifact is a finished export ready to save or download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

type SizeReport struct {
	Bytes     int
	Oversized bool
}

func (r SizeReport) String() string {
	return bundle.FormatSize(r.Bytes)
}

// Builder holds what every export needs. The zero value is not usable:
// Fetcher must be set.
type Builder struct {
	Fetcher     assets.Fetcher
	Logger      *zap.Logger
	Concurrency int
	SizeWarning int
	// Now supplies the footer year; nil means time.Now.
	Now func() time.Time
}

func (b *Builder) log() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}

func (b *Builder) renderOptions() render.Options {
	if b.Now == nil {
		return render.Options{}
	}
	return render.Options{Now: b.Now()}
}

func (b *Builder) sizeWarning() int {
	if b.SizeWarning <= 0 {
		return DefaultSizeWarning
	}
	return b.SizeWarning
}

// Export produces the artifact for format. Validation failures come back
// as *validate.Error; rendering and packaging failures wrap ErrAssembly.
// The caller's document is never modified.
func (b *Builder) Export(ctx context.Context, doc document.Document, format Format) (*Artifact, error) {
	if err := validate.Document(doc); err != nil {
		return nil, err
	}
	if format == FormatJSON {
		data, err := bundle.JSON(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAssembly, err)
		}
		return &Artifact{Filename: "landing-page.json", ContentType: "application/json", Data: data}, nil
	}
	if b.Fetcher == nil {
		return nil, fmt.Errorf("%w: no asset fetcher configured", ErrAssembly)
	}

	work := doc.Clone()
	log := b.log().With(zap.String("format", string(format)))
	start := time.Now()

	var (
		art *Artifact
		err error
	)
	switch format {
	case FormatHTML:
		art, err = b.exportHTML(ctx, work)
	case FormatZip:
		art, err = b.exportZip(ctx, work)
	case FormatFolder:
		art, err = b.exportFolder(ctx, work)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	log.Info("export finished",
		zap.String("file", art.Filename),
		zap.Int("bytes", len(art.Data)),
		zap.Duration("took", time.Since(start)))
	return art, nil
}

func (b *Builder) inlinePage(ctx context.Context, work document.Document) (render.Page, error) {
	conv := assets.NewConverter(b.Fetcher, b.log(), b.Concurrency)
	inlined := conv.ProcessDocument(ctx, work)
	if err := ctx.Err(); err != nil {
		return render.Page{}, err
	}
	page, err := render.Inline(inlined, b.renderOptions())
	if err != nil {
		return render.Page{}, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	return page, nil
}

func (b *Builder) exportHTML(ctx context.Context, work document.Document) (*Artifact, error) {
	page, err := b.inlinePage(ctx, work)
	if err != nil {
		return nil, err
	}
	if size := bundle.EstimateSize(page); bundle.Oversized(size, b.sizeWarning()) {
		b.log().Warn("single-file export is large; consider the folder format",
			zap.String("size", bundle.FormatSize(size)))
	}
	files := bundle.SingleFile(page)
	return &Artifact{Filename: "landing-page.html", ContentType: "text/html; charset=utf-8", Data: files[0].Data}, nil
}

func (b *Builder) exportZip(ctx context.Context, work document.Document) (*Artifact, error) {
	page, err := b.inlinePage(ctx, work)
	if err != nil {
		return nil, err
	}
	data, err := bundle.SimpleZip(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	return &Artifact{Filename: "landing-page.zip", ContentType: "application/zip", Data: data}, nil
}

func (b *Builder) folderFiles(ctx context.Context, work document.Document) ([]bundle.File, error) {
	ext := assets.NewExtractor(b.Fetcher, b.log(), b.Concurrency)
	res := ext.ExtractAssets(ctx, work)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	page, err := render.Folder(work, res.Manifest, b.renderOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	files, err := bundle.AssetFolder(page, res)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	return files, nil
}

func (b *Builder) exportFolder(ctx context.Context, work document.Document) (*Artifact, error) {
	files, err := b.folderFiles(ctx, work)
	if err != nil {
		return nil, err
	}
	data, err := bundle.ZipFiles(files)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	return &Artifact{Filename: "landing-page-assets.zip", ContentType: "application/zip", Data: data}, nil
}

// EstimateSingleFileSize renders the inline page and reports its size
// against the size warning.
func (b *Builder) EstimateSingleFileSize(ctx context.Context, doc document.Document) (SizeReport, error) {
	if err := validate.Document(doc); err != nil {
		return SizeReport{}, err
	}
	if b.Fetcher == nil {
		return SizeReport{}, fmt.Errorf("%w: no asset fetcher configured", ErrAssembly)
	}
	page, err := b.inlinePage(ctx, doc.Clone())
	if err != nil {
		return SizeReport{}, err
	}
	n := bundle.EstimateSize(page)
	return SizeReport{Bytes: n, Oversized: bundle.Oversized(n, b.sizeWarning())}, nil
}
