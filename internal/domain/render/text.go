package render

import (
	"log/slog"
	"strings"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/jaytaylor/html2text"
)

// Text renders the banner as plain text, for feeds and previews.
func (r *Renderer) Text(resolved entity.ResolvedBanner) string {
	return PlainText(r.HTML(resolved))
}

// PlainText converts rendered markup, such as a product title, to text.
func PlainText(markup string) string {
	text, err := html2text.FromString(markup, html2text.Options{OmitLinks: true})
	if err != nil {
		slog.Error("error converting html to text", "error", err)
		return strings.TrimSpace(markup)
	}
	return strings.TrimSpace(text)
}
