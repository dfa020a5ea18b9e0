package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type ButtonStyle string

const (
	ButtonStyleGradientPurple ButtonStyle = "gradient-purple"
	ButtonStyleGradientBlue   ButtonStyle = "gradient-blue"
	ButtonStyleGradientRed    ButtonStyle = "gradient-red"
	ButtonStyleGradientGreen  ButtonStyle = "gradient-green"
	ButtonStyleSolidBlack     ButtonStyle = "solid-black"
	ButtonStyleSolidWhite     ButtonStyle = "solid-white"
	ButtonStyleOutline        ButtonStyle = "outline"
)

// ButtonStyles is the preset palette, in the order the editor lists it.
var ButtonStyles = []ButtonStyle{
	ButtonStyleGradientPurple,
	ButtonStyleGradientBlue,
	ButtonStyleGradientRed,
	ButtonStyleGradientGreen,
	ButtonStyleSolidBlack,
	ButtonStyleSolidWhite,
	ButtonStyleOutline,
}

func (s ButtonStyle) Valid() bool {
	for _, style := range ButtonStyles {
		if s == style {
			return true
		}
	}
	return false
}

const (
	DefaultButtonStyle  = ButtonStyleGradientPurple
	DefaultBorderRadius = 50
	MinBorderRadius     = 0
	MaxBorderRadius     = 50
)

// BannerAttributes is the typed form of the attribute bag the host persists
// for one block instance.
type BannerAttributes struct {
	ProductID          int64       `json:"productId"`
	Title              string      `json:"title"`
	Text               string      `json:"text"`
	ImageID            int64       `json:"imageId"`
	ImageURL           string      `json:"imageUrl"`
	UseProductImage    bool        `json:"useProductImage"`
	ButtonText         string      `json:"buttonText"`
	ButtonStyle        ButtonStyle `json:"buttonStyle"`
	ButtonBorderRadius int         `json:"buttonBorderRadius"`
}

func DefaultAttributes() BannerAttributes {
	return BannerAttributes{
		UseProductImage:    true,
		ButtonStyle:        DefaultButtonStyle,
		ButtonBorderRadius: DefaultBorderRadius,
	}
}

// IsUnconfigured reports whether neither a product nor custom content is set.
func (a BannerAttributes) IsUnconfigured() bool {
	return a.ProductID <= 0 && a.Title == "" && a.Text == ""
}

// DecodeAttributes parses a JSON attribute bag. Malformed input yields the
// defaults.
func DecodeAttributes(data []byte) BannerAttributes {
	raw := make(map[string]any)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return DefaultAttributes()
	}

	return ParseAttributes(raw)
}

// ParseAttributes converts the untyped bag handed over by the host. Missing
// or mistyped fields keep their defaults.
func ParseAttributes(raw map[string]any) BannerAttributes {
	attrs := DefaultAttributes()

	if v, ok := toInt64(raw["productId"]); ok && v > 0 {
		attrs.ProductID = v
	}
	if v, ok := raw["title"].(string); ok {
		attrs.Title = v
	}
	if v, ok := raw["text"].(string); ok {
		attrs.Text = v
	}
	if v, ok := toInt64(raw["imageId"]); ok && v > 0 {
		attrs.ImageID = v
	}
	if v, ok := raw["imageUrl"].(string); ok {
		attrs.ImageURL = v
	}
	if v, ok := toBool(raw["useProductImage"]); ok {
		attrs.UseProductImage = v
	}
	if v, ok := raw["buttonText"].(string); ok {
		attrs.ButtonText = v
	}
	if v, ok := raw["buttonStyle"].(string); ok && ButtonStyle(v).Valid() {
		attrs.ButtonStyle = ButtonStyle(v)
	}
	if v, ok := toInt64(raw["buttonBorderRadius"]); ok {
		attrs.ButtonBorderRadius = int(v)
	}

	return attrs
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed, true
		}
	case json.Number, float64, int, int64:
		n, ok := toInt64(b)
		return n != 0, ok
	}
	return false, false
}
