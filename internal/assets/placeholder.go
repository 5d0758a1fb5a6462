// internal/assets/placeholder.go
package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const placeholderSize = 400

var (
	placeholderFont     *truetype.Font
	placeholderFontErr  error
	placeholderFontOnce sync.Once
	placeholderCache    sync.Map
)

var (
	placeholderBG = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	placeholderFG = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
)

// Placeholder returns a PNG data URI showing label on a neutral square.
// It stands in for library images (bios, icons) that could not be loaded.
// Results are cached per label.
func Placeholder(label string) string {
	if v, ok := placeholderCache.Load(label); ok {
		return v.(string)
	}
	uri := renderPlaceholder(label)
	placeholderCache.Store(label, uri)
	return uri
}

// PlaceholderPNG renders the placeholder as raw PNG bytes.
func PlaceholderPNG(label string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBG), image.Point{}, draw.Src)

	placeholderFontOnce.Do(func() {
		placeholderFont, placeholderFontErr = truetype.Parse(goregular.TTF)
	})
	if placeholderFontErr == nil && label != "" {
		const size = 28.0
		face := truetype.NewFace(placeholderFont, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
		width := font.MeasureString(face, label).Round()
		x := (placeholderSize - width) / 2
		if x < 8 {
			x = 8
		}

		dc := freetype.NewContext()
		dc.SetDPI(72)
		dc.SetFont(placeholderFont)
		dc.SetFontSize(size)
		dc.SetClip(img.Bounds())
		dc.SetDst(img)
		dc.SetSrc(image.NewUniform(placeholderFG))
		if _, err := dc.DrawString(label, freetype.Pt(x, placeholderSize/2+int(size)/3)); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPlaceholder(label string) string {
	data, err := PlaceholderPNG(label)
	if err != nil {
		// Fall back to a blank square; drawing text is the only step that
		// can fail and the image is still usable without it.
		data, _ = PlaceholderPNG("")
	}
	return EncodeDataURI("image/png", data)
}
