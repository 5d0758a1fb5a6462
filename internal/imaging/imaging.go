// internal/imaging/imaging.go

// Package imaging shrinks uploaded images into JPEG data URIs and encodes
// other uploads (documents, video) as-is.
package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"landingkit/internal/assets"
)

var (
	ErrTooLarge    = errors.New("file exceeds the upload size limit")
	ErrDecode      = errors.New("image could not be decoded")
	ErrTimeout     = errors.New("image processing timed out")
	ErrUnsupported = errors.New("unsupported image type")
)

const (
	DefaultMaxDimension  = 1920
	DefaultQuality       = 70
	DefaultMaxInputBytes = 10 << 20
	// A small file can still declare huge dimensions; the header is checked
	// against this before any pixels are allocated.
	DefaultMaxPixels = 40_000_000

	// Data URIs longer than this are re-encoded at fallbackQuality.
	maxDataURILen   = 2 << 20
	fallbackQuality = 50
)

type Options struct {
	MaxDimension  int
	Quality       int
	MaxInputBytes int
	MaxPixels     int
}

func (o Options) withDefaults() Options {
	if o.MaxDimension <= 0 {
		o.MaxDimension = DefaultMaxDimension
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	if o.MaxInputBytes <= 0 {
		o.MaxInputBytes = DefaultMaxInputBytes
	}
	if o.MaxPixels <= 0 {
		o.MaxPixels = DefaultMaxPixels
	}
	return o
}

// Compress decodes data, scales it so neither side exceeds MaxDimension,
// flattens it onto white and returns a JPEG data URI. Work stops when ctx
// ends.
func Compress(ctx context.Context, data []byte, opts Options) (string, error) {
	opts = opts.withDefaults()
	if len(data) > opts.MaxInputBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), opts.MaxInputBytes)
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	type result struct {
		uri string
		err error
	}
	done := make(chan result, 1)
	go func() {
		uri, err := compress(ctx, data, opts)
		done <- result{uri, err}
	}()

	select {
	case r := <-done:
		return r.uri, r.err
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	}
}

// compress checks ctx between stages so an abandoned call stops early.
func compress(ctx context.Context, data []byte, opts Options) (string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return "", ErrUnsupported
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if px := cfg.Width * cfg.Height; px > opts.MaxPixels {
		return "", fmt.Errorf("%w: %dx%d pixels, limit %d", ErrTooLarge, cfg.Width, cfg.Height, opts.MaxPixels)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return "", ErrUnsupported
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	w, h := fit(src.Bounds().Dx(), src.Bounds().Dy(), opts.MaxDimension)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	uri, err := encodeJPEG(dst, opts.Quality)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s as jpeg: %w", format, err)
	}
	if len(uri) > maxDataURILen && opts.Quality > fallbackQuality {
		return encodeJPEG(dst, fallbackQuality)
	}
	return uri, nil
}

func encodeJPEG(img image.Image, quality int) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return "", err
	}
	return assets.EncodeDataURI("image/jpeg", buf.Bytes()), nil
}

// fit scales w×h down, keeping the aspect ratio, so neither side exceeds
// limit. Images already within bounds are left alone.
func fit(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

// EncodeFile returns data as a data URI without touching its bytes. The
// MIME type comes from the name, falling back to content sniffing.
func EncodeFile(data []byte, name string) string {
	return assets.EncodeDataURI(detect(data, name), data)
}

// Prepare compresses raster images and encodes everything else with
// EncodeFile.
func Prepare(ctx context.Context, data []byte, name string, opts Options) (string, error) {
	mimeType := detect(data, name)
	if compressible(mimeType) {
		return Compress(ctx, data, opts)
	}
	if limit := opts.withDefaults().MaxInputBytes; len(data) > limit && strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), limit)
	}
	return EncodeFile(data, name), nil
}

func compressible(mimeType string) bool {
	switch mimeType {
	case "image/png", "image/jpeg", "image/gif", "image/webp", "image/bmp":
		return true
	}
	return false
}

func detect(data []byte, name string) string {
	sniffed := http.DetectContentType(data)
	if i := strings.IndexByte(sniffed, ';'); i >= 0 {
		sniffed = sniffed[:i]
	}
	if compressible(sniffed) {
		return sniffed
	}
	if m := assets.MIMEForPath(name); m != "" {
		return m
	}
	return sniffed
}
