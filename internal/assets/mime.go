// internal/assets/mime.go
package assets

import (
	"mime"
	"net/http"
	"path"
	"strings"
)

// extByMIME maps MIME types to the extension used for extracted files.
var extByMIME = map[string]string{
	"image/png":                "png",
	"image/jpeg":               "jpg",
	"image/jpg":                "jpg",
	"image/gif":                "gif",
	"image/webp":               "webp",
	"image/svg+xml":            "svg",
	"image/avif":               "avif",
	"image/x-icon":             "ico",
	"image/vnd.microsoft.icon": "ico",

	"video/mp4":       "mp4",
	"video/webm":      "webm",
	"video/ogg":       "ogv",
	"video/quicktime": "mov",

	"application/pdf":               "pdf",
	"application/msword":            "doc",
	"application/vnd.ms-powerpoint": "ppt",
	"text/plain":                    "txt",

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
}

var mimeByExt = map[string]string{
	"png": "image/png", "jpg": "image/jpeg", "jpeg": "image/jpeg",
	"gif": "image/gif", "webp": "image/webp", "svg": "image/svg+xml",
	"avif": "image/avif", "ico": "image/x-icon",
	"mp4": "video/mp4", "webm": "video/webm", "ogv": "video/ogg", "mov": "video/quicktime",
	"pdf": "application/pdf", "doc": "application/msword", "ppt": "application/vnd.ms-powerpoint",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"txt":  "text/plain",
}

const fallbackExt = "bin"

// ExtensionFor returns the file extension (without dot) for a MIME type.
// Unknown types get "bin".
func ExtensionFor(mimeType string) string {
	if ext, ok := extByMIME[baseMIME(mimeType)]; ok {
		return ext
	}
	return fallbackExt
}

// MIMEForPath guesses a MIME type from a file name or URL path. It returns
// "" when the extension is unknown.
func MIMEForPath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if ext == "" {
		return ""
	}
	if m, ok := mimeByExt[ext]; ok {
		return m
	}
	return baseMIME(mime.TypeByExtension("." + ext))
}

// sniffMIME picks the best MIME type for data: the declared type if any,
// then the name's extension, then content sniffing.
func sniffMIME(declared, name string, data []byte) string {
	if m := baseMIME(declared); m != "" && m != "application/octet-stream" {
		return m
	}
	if m := MIMEForPath(name); m != "" {
		return m
	}
	return baseMIME(http.DetectContentType(data))
}

func baseMIME(m string) string {
	m, _, _ = strings.Cut(m, ";")
	return strings.ToLower(strings.TrimSpace(m))
}
