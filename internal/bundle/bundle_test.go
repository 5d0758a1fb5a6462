package bundle

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"

	"landingkit/internal/assets"
	"landingkit/internal/document"
	"landingkit/internal/render"
)

func readZip(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	out := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		if f.Method != zip.Deflate {
			t.Errorf("%s stored with method %d, want deflate", f.Name, f.Method)
		}
		out[f.Name] = b
	}
	return out
}

func TestSimpleZip(t *testing.T) {
	page := render.Page{HTML: "<!DOCTYPE html><p>hi</p>"}
	data, err := SimpleZip(page)
	if err != nil {
		t.Fatalf("SimpleZip() error = %v", err)
	}
	files := readZip(t, data)
	if len(files) != 3 {
		t.Fatalf("got %d entries, want 3", len(files))
	}
	if string(files[IndexFile]) != page.HTML {
		t.Errorf("index.html = %q", files[IndexFile])
	}
	if !strings.Contains(string(files[ReadmeFile]), "Netlify") {
		t.Error("README lacks deployment instructions")
	}
	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(files[PackageFile], &pkg); err != nil {
		t.Fatalf("package.json: %v", err)
	}
	if pkg.Scripts["serve"] != "npx serve ." {
		t.Errorf("serve script = %q", pkg.Scripts["serve"])
	}
}

func TestZipIsDeterministic(t *testing.T) {
	page := render.Page{HTML: "<p>same</p>"}
	a, err := SimpleZip(page)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SimpleZip(page)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical input produced different archives")
	}
}

func assetResult() assets.Result {
	img := []byte("png-bytes")
	hash := assets.ContentHash(img)
	a := assets.Asset{ID: "logo", Kind: assets.KindImage, Data: img, MIMEType: "image/png", Hash: hash, Filename: hash + ".png"}
	b := a
	b.ID = "surpriseImage"
	return assets.Result{
		Assets:   []assets.Asset{a, b},
		Manifest: assets.Manifest{"logo": a.Path(), "surpriseImage": b.Path()},
	}
}

func TestAssetFolderLayout(t *testing.T) {
	res := assetResult()
	page := render.Page{HTML: "<html></html>", CSS: "body{}"}
	data, err := AssetFolderZip(page, res)
	if err != nil {
		t.Fatalf("AssetFolderZip() error = %v", err)
	}
	files := readZip(t, data)

	for _, want := range []string{IndexFile, StylesheetFile, ManifestFile, ReadmeFile, res.Assets[0].Path()} {
		if _, ok := files[want]; !ok {
			t.Errorf("missing %s", want)
		}
	}
	if _, ok := files[ScriptFile]; ok {
		t.Error("js/main.js included without an FAQ")
	}
	// Two slots, identical bytes: one asset file.
	if len(files) != 5 {
		t.Errorf("got %d entries, want 5", len(files))
	}

	var m map[string]string
	if err := json.Unmarshal(files[ManifestFile], &m); err != nil {
		t.Fatalf("manifest.json: %v", err)
	}
	if m["logo"] != m["surpriseImage"] || !strings.HasPrefix(m["logo"], "assets/images/") {
		t.Errorf("manifest = %v", m)
	}
	if !strings.Contains(string(files[ReadmeFile]), "Assets: 1 files") {
		t.Error("README does not report the asset count")
	}
}

func TestAssetFolderIncludesScriptWhenNeeded(t *testing.T) {
	page := render.Page{HTML: "<html></html>", CSS: "body{}", JS: "console.log(1)"}
	files, err := AssetFolder(page, assets.Result{})
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, f := range files {
		if f.Path == ScriptFile {
			found = string(f.Data) == page.JS
		}
	}
	if !found {
		t.Error("js/main.js missing or wrong")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := document.Default()
	data, err := JSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	var back document.Document
	if err := document.Decode(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Hero.Title != doc.Hero.Title || back.Footer.CopyrightText != doc.Footer.CopyrightText {
		t.Error("JSON backup did not round trip")
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{6 * 1024 * 1024, "6.00 MB"},
	}
	for _, tc := range cases {
		if got := FormatSize(tc.n); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestOversized(t *testing.T) {
	if Oversized(10, 0) {
		t.Error("zero threshold should disable the check")
	}
	if !Oversized(11, 10) || Oversized(10, 10) {
		t.Error("threshold comparison wrong")
	}
}
