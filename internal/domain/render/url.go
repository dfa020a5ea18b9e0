package render

import (
	"html"
	"net/url"
	"strings"
)

var cssParens = strings.NewReplacer("(", "%28", ")", "%29")

// cleanURL keeps http(s), protocol-relative, relative and fragment URLs and
// drops everything else.
func cleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
	default:
		return ""
	}

	return escapeURL(u.String())
}

// escapeURL percent-encodes every byte outside the URL character set, plus
// quotes and backslashes, leaving existing escapes alone. url.URL.String
// passes RawQuery through untouched.
func escapeURL(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if urlSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

const upperhex = "0123456789ABCDEF"

func urlSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-._~:/?#[]@!$&()*+,;=%", c) >= 0
}

func attrURL(raw string) string {
	return html.EscapeString(cleanURL(raw))
}

func cssURL(raw string) string {
	return html.EscapeString(cssParens.Replace(cleanURL(raw)))
}
