package entity

type ProductStatus string

const StatusPublish ProductStatus = "publish"

// ProductSnapshot is the read-only view of a commerce product. PrimaryImageURL
// is filled from the media store by the lookup step.
type ProductSnapshot struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	PriceDisplayMarkup string `json:"price_html"`
	PermalinkURL       string `json:"permalink"`
	PrimaryImageID     int64  `json:"primary_image_id"`
	PrimaryImageURL    string `json:"primary_image_url,omitempty"`
}

type ProductFilter struct {
	PageSize int
	Status   ProductStatus
	Search   string
}

type Media struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}
