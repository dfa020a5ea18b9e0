package entity

type BlockDTO struct {
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes"`
}

type RenderPageDTO struct {
	Blocks []BlockDTO `json:"blocks"`
}

type RenderedPage struct {
	HTML       []string `json:"html"`
	Stylesheet string   `json:"stylesheet,omitempty"`
}

type ProductOption struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
