package config

import "strings"

// Sanitize removes every control character (0x00-0x1F, 0x7F) and every
// character above 0x7E, then trims surrounding whitespace.
//
// Configuration values are frequently pasted from web consoles and chat tools
// that smuggle in invisible marks (U+200E, U+FEFF, NBSP). Those bytes cannot be
// carried in an HTTP header and break URLs, so they are dropped before use.
// Invalid UTF-8 bytes decode as U+FFFD and are dropped as well.
func Sanitize(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if isForbidden(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// SanitizeBaseURL sanitizes v and strips one trailing slash.
func SanitizeBaseURL(v string) string {
	return strings.TrimSuffix(Sanitize(v), "/")
}

// ComposeToken builds the ERP token header value "token <key>:<secret>".
// Both parts are sanitized first; when either ends up empty the token is empty
// and calls rely on the ERP session instead.
func ComposeToken(key, secret string) string {
	key = Sanitize(key)
	secret = Sanitize(secret)
	if key == "" || secret == "" {
		return ""
	}
	return "token " + key + ":" + secret
}

// HasForbiddenChars reports whether v still carries a character Sanitize would remove.
func HasForbiddenChars(v string) bool {
	for _, r := range v {
		if isForbidden(r) {
			return true
		}
	}
	return false
}

func isForbidden(r rune) bool {
	return r < 0x20 || r > 0x7E
}
