// internal/document/ref.go
package document

import "strings"

// RefKind classifies an asset reference string.
type RefKind int

const (
	RefEmpty RefKind = iota
	RefDataURI
	RefURL
	RefPath
	// RefUnsupported covers any other scheme, e.g. javascript:.
	RefUnsupported
)

// KindOf reports what sort of asset reference s is.
func KindOf(s string) RefKind {
	s = strings.TrimSpace(s)
	if s == "" {
		return RefEmpty
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "data:"):
		return RefDataURI
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return RefURL
	case strings.HasPrefix(s, "//"):
		return RefUnsupported
	case strings.HasPrefix(s, "/"), strings.HasPrefix(s, "./"):
		return RefPath
	}
	if i := strings.IndexAny(s, ":/?#"); i >= 0 && s[i] == ':' {
		return RefUnsupported
	}
	return RefPath
}
