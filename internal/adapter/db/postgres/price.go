package db

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// priceMarkup renders the storefront price: the regular amount, or a struck
// regular amount followed by the sale amount when a lower sale price is set.
func priceMarkup(regular string, sale *string, currency string) (string, error) {
	regularPrice, err := decimal.NewFromString(regular)
	if err != nil {
		return "", fmt.Errorf("parse regular price %q: %w", regular, err)
	}

	if sale != nil {
		salePrice, err := decimal.NewFromString(*sale)
		if err != nil {
			return "", fmt.Errorf("parse sale price %q: %w", *sale, err)
		}
		if salePrice.LessThan(regularPrice) {
			return fmt.Sprintf(`<del>%s</del> <ins>%s</ins>`,
				amount(regularPrice, currency),
				amount(salePrice, currency),
			), nil
		}
	}

	return amount(regularPrice, currency), nil
}

func amount(price decimal.Decimal, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	places := int32(2)
	if currency == "JPY" {
		places = 0
	}
	value := price.StringFixed(places)

	if symbol, ok := currencySymbols[currency]; ok {
		return fmt.Sprintf(`<span class="amount">%s%s</span>`, symbol, value)
	}
	return fmt.Sprintf(`<span class="amount">%s&nbsp;%s</span>`, value, currency)
}
