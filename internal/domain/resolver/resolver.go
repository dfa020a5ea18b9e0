// Package resolver derives render-ready banner values from block attributes
// and an optional product snapshot. It knows nothing about markup; the server
// and editor projections both format its output.
package resolver

import (
	"strconv"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/localization"
)

const (
	ButtonBaseClass   = "product-banner-button"
	buttonStylePrefix = "button-style-"
	emptyHref         = "#"
)

type Localizer interface {
	T(key string) string
}

type Resolver struct {
	localizer Localizer
}

func New(localizer Localizer) *Resolver {
	return &Resolver{localizer: localizer}
}

// Resolve never fails. A product counts as bound only when attrs carry a
// product id and a snapshot was found for it.
func (r *Resolver) Resolve(attrs entity.BannerAttributes, product *entity.ProductSnapshot) entity.ResolvedBanner {
	bound := attrs.ProductID > 0 && product != nil

	resolved := entity.ResolvedBanner{
		IsPlaceholder:      !bound && attrs.Title == "" && attrs.Text == "",
		HasProduct:         bound,
		DisplayTitle:       attrs.Title,
		DisplayText:        attrs.Text,
		DisplayImageURL:    attrs.ImageURL,
		ButtonHref:         emptyHref,
		ButtonLabel:        attrs.ButtonText,
		ButtonClassName:    ButtonClassName(attrs.ButtonStyle),
		ButtonInlineRadius: InlineRadius(attrs.ButtonBorderRadius),
	}

	if resolved.ButtonLabel == "" {
		resolved.ButtonLabel = r.localizer.T(localization.KeyShopNow)
	}

	if !bound {
		return resolved
	}

	if resolved.DisplayTitle == "" {
		resolved.DisplayTitle = product.Name
	}
	if attrs.UseProductImage {
		resolved.DisplayImageURL = product.PrimaryImageURL
	}
	resolved.DisplayPrice = product.PriceDisplayMarkup
	if product.PermalinkURL != "" {
		resolved.ButtonHref = product.PermalinkURL
	}

	return resolved
}

func ButtonClassName(style entity.ButtonStyle) string {
	if !style.Valid() {
		style = entity.DefaultButtonStyle
	}
	return ButtonBaseClass + " " + buttonStylePrefix + string(style)
}

// ClampRadius keeps a border radius inside the range the editor offers.
func ClampRadius(radius int) int {
	return min(max(radius, entity.MinBorderRadius), entity.MaxBorderRadius)
}

func InlineRadius(radius int) string {
	return strconv.Itoa(ClampRadius(radius)) + "px"
}
