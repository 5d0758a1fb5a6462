// internal/bundle/bundle.go
package bundle

import (
	"encoding/json"
	"fmt"

	"landingkit/internal/assets"
	"landingkit/internal/document"
	"landingkit/internal/render"
)

const (
	IndexFile      = "index.html"
	StylesheetFile = "css/styles.css"
	ScriptFile     = "js/main.js"
	ManifestFile   = "manifest.json"
	ReadmeFile     = "README.md"
	PackageFile    = "package.json"
)

// SingleFile is the one-file bundle for an inline page.
func SingleFile(page render.Page) []File {
	return []File{{Path: IndexFile, Data: []byte(page.HTML)}}
}

// SimpleZip packs an inline page with deployment notes and a package.json
// whose serve script previews it locally.
func SimpleZip(page render.Page) ([]byte, error) {
	files := append(SingleFile(page),
		File{Path: ReadmeFile, Data: []byte(simpleReadme)},
		File{Path: PackageFile, Data: []byte(simplePackageJSON)},
	)
	return ZipFiles(files)
}

// AssetFolder lays out a folder page and its extracted assets. The script
// is included only when the page links it.
func AssetFolder(page render.Page, res assets.Result) ([]File, error) {
	files := []File{
		{Path: IndexFile, Data: []byte(page.HTML)},
		{Path: StylesheetFile, Data: []byte(page.CSS)},
	}
	if page.NeedsScript() {
		files = append(files, File{Path: ScriptFile, Data: []byte(page.JS)})
	}

	assetFiles := res.Files()
	for _, f := range assetFiles {
		files = append(files, File{Path: f.Path, Data: f.Data})
	}

	manifest := res.Manifest
	if manifest == nil {
		manifest = assets.Manifest{}
	}
	mj, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	files = append(files, File{Path: ManifestFile, Data: append(mj, '\n')})

	total := EstimateSize(page) + res.TotalBytes()
	readme := fmt.Sprintf(assetFolderReadme,
		FormatSize(total),
		FormatSize(len(page.HTML)),
		FormatSize(len(page.CSS)),
		len(assetFiles),
	)
	files = append(files, File{Path: ReadmeFile, Data: []byte(readme)})
	return files, nil
}

// AssetFolderZip zips the AssetFolder layout.
func AssetFolderZip(page render.Page, res assets.Result) ([]byte, error) {
	files, err := AssetFolder(page, res)
	if err != nil {
		return nil, err
	}
	return ZipFiles(files)
}

// JSON is the backup format; it re-imports unchanged.
func JSON(doc document.Document) ([]byte, error) {
	return document.Marshal(doc)
}

// EstimateSize is the byte size of the page's text parts.
func EstimateSize(page render.Page) int {
	return len(page.HTML) + len(page.CSS) + len(page.JS)
}

func FormatSize(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	}
	return fmt.Sprintf("%.2f MB", float64(n)/1024/1024)
}

// Oversized reports whether n exceeds a positive threshold.
func Oversized(n, threshold int) bool {
	return threshold > 0 && n > threshold
}
