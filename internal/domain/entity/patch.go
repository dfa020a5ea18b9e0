package entity

// AttributePatch is a partial replacement of BannerAttributes. Nil fields are
// left untouched.
type AttributePatch struct {
	ProductID          *int64       `json:"productId,omitempty"`
	Title              *string      `json:"title,omitempty"`
	Text               *string      `json:"text,omitempty"`
	ImageID            *int64       `json:"imageId,omitempty"`
	ImageURL           *string      `json:"imageUrl,omitempty"`
	UseProductImage    *bool        `json:"useProductImage,omitempty"`
	ButtonText         *string      `json:"buttonText,omitempty"`
	ButtonStyle        *ButtonStyle `json:"buttonStyle,omitempty"`
	ButtonBorderRadius *int         `json:"buttonBorderRadius,omitempty"`
}

func (p AttributePatch) Empty() bool {
	return p == AttributePatch{}
}

// Apply returns a copy of a with every set field of p replaced.
func (a BannerAttributes) Apply(p AttributePatch) BannerAttributes {
	if p.ProductID != nil {
		a.ProductID = max(*p.ProductID, 0)
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Text != nil {
		a.Text = *p.Text
	}
	if p.ImageID != nil {
		a.ImageID = *p.ImageID
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.UseProductImage != nil {
		a.UseProductImage = *p.UseProductImage
	}
	if p.ButtonText != nil {
		a.ButtonText = *p.ButtonText
	}
	if p.ButtonStyle != nil && p.ButtonStyle.Valid() {
		a.ButtonStyle = *p.ButtonStyle
	}
	if p.ButtonBorderRadius != nil {
		a.ButtonBorderRadius = *p.ButtonBorderRadius
	}
	return a
}

func Ptr[T any](v T) *T {
	return &v
}
