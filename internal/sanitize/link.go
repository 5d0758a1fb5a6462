// internal/sanitize/link.go
package sanitize

import "strings"

// NormalizeLink turns a bare email address into a mailto: link and a bare
// phone number into a tel: link. Anything carrying a scheme, an anchor or
// a path is returned unchanged.
func NormalizeLink(link string) string {
	l := strings.TrimSpace(link)
	if l == "" || !isBare(l) {
		return l
	}
	switch {
	case strings.Contains(l, "@"):
		return "mailto:" + l
	case startsWithDigit(l):
		return "tel:" + strings.Join(strings.Fields(l), "")
	}
	return l
}

func isBare(l string) bool {
	if strings.HasPrefix(l, "#") || strings.HasPrefix(l, "/") {
		return false
	}
	i := strings.IndexAny(l, ":/?#")
	return i < 0 || l[i] != ':'
}

func startsWithDigit(l string) bool {
	if strings.HasPrefix(l, "+") {
		l = l[1:]
	}
	return l != "" && l[0] >= '0' && l[0] <= '9'
}
