package render

import (
	"html"
	"strings"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/localization"
	"github.com/microcosm-cc/bluemonday"
)

const (
	blockClass       = "product-banner-block"
	placeholderClass = "product-banner-placeholder"
)

type Localizer interface {
	T(key string) string
}

// Renderer is the server projection of a resolved banner. It is safe for
// concurrent use.
type Renderer struct {
	policy    *bluemonday.Policy
	localizer Localizer
}

func NewRenderer(localizer Localizer) *Renderer {
	return &Renderer{
		policy:    bluemonday.UGCPolicy(),
		localizer: localizer,
	}
}

func (r *Renderer) Placeholder() string {
	return `<div class="` + blockClass + ` ` + placeholderClass + `"><p>` +
		html.EscapeString(r.localizer.T(localization.KeyPlaceholderPrompt)) +
		`</p></div>`
}

// HTML renders a self-contained fragment. Output depends only on resolved.
func (r *Renderer) HTML(resolved entity.ResolvedBanner) string {
	if resolved.IsPlaceholder {
		return r.Placeholder()
	}

	var b strings.Builder

	b.WriteString(`<div class="` + blockClass + `"`)
	if imageURL := cssURL(resolved.DisplayImageURL); imageURL != "" {
		b.WriteString(` style="background-image: url(` + imageURL + `);"`)
	}
	b.WriteString(`>`)
	b.WriteString(`<div class="product-banner-overlay"></div>`)
	b.WriteString(`<div class="product-banner-content">`)

	if resolved.DisplayTitle != "" {
		b.WriteString(`<h2 class="product-banner-title">`)
		b.WriteString(html.EscapeString(resolved.DisplayTitle))
		b.WriteString(`</h2>`)
	}

	if resolved.DisplayText != "" {
		b.WriteString(`<div class="product-banner-text">`)
		b.WriteString(r.Sanitize(resolved.DisplayText))
		b.WriteString(`</div>`)
	}

	if resolved.HasProduct {
		b.WriteString(`<div class="product-banner-price">`)
		// price markup comes pre-formatted from the product store
		b.WriteString(resolved.DisplayPrice)
		b.WriteString(`</div>`)

		href := attrURL(resolved.ButtonHref)
		if href == "" {
			href = "#"
		}
		b.WriteString(`<a href="` + href + `"`)
		b.WriteString(` class="` + html.EscapeString(resolved.ButtonClassName) + `"`)
		b.WriteString(` style="border-radius: ` + html.EscapeString(resolved.ButtonInlineRadius) + `;">`)
		b.WriteString(html.EscapeString(resolved.ButtonLabel))
		b.WriteString(`</a>`)
	}

	b.WriteString(`</div></div>`)

	return b.String()
}

// Sanitize strips markup outside the post-content allow-list.
func (r *Renderer) Sanitize(text string) string {
	return r.policy.Sanitize(text)
}
