// internal/render/csp.go
package render

import "strings"

const gtagHost = "https://www.googletagmanager.com"

type policyInput struct {
	inlineScript bool
	password     bool
	analytics    bool
	customCode   bool
}

// contentSecurityPolicy builds the page's CSP. Inline script is permitted
// only when something on the page needs it.
func contentSecurityPolicy(in policyInput) string {
	script := []string{"'self'"}
	if in.inlineScript || in.password || in.analytics || in.customCode {
		script = append(script, "'unsafe-inline'")
	}
	if in.analytics {
		script = append(script, gtagHost)
	}
	if in.customCode {
		script = append(script, "https:")
	}

	connect := []string{"'self'"}
	if in.analytics {
		connect = append(connect, "https://www.google-analytics.com", "https://*.google-analytics.com", gtagHost)
	}
	if in.customCode {
		connect = append(connect, "https:")
	}

	directives := []string{
		"default-src 'self'",
		"script-src " + strings.Join(script, " "),
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:",
		"media-src 'self' data: https:",
		"frame-src 'self' data: https:",
		"font-src 'self' data: https:",
		"connect-src " + strings.Join(connect, " "),
		"form-action 'self' https://formspree.io",
		"base-uri 'self'",
		"object-src 'none'",
	}
	return strings.Join(directives, "; ")
}
