package entity

// ResolvedBanner holds render-ready values derived from attributes and an
// optional product. Both projections render from it.
type ResolvedBanner struct {
	IsPlaceholder      bool   `json:"isPlaceholder"`
	HasProduct         bool   `json:"hasProduct"`
	DisplayTitle       string `json:"displayTitle"`
	DisplayText        string `json:"displayText"`
	DisplayImageURL    string `json:"displayImageUrl"`
	DisplayPrice       string `json:"displayPrice"`
	ButtonHref         string `json:"buttonHref"`
	ButtonLabel        string `json:"buttonLabel"`
	ButtonClassName    string `json:"buttonClassName"`
	ButtonInlineRadius string `json:"buttonInlineRadius"`
}
