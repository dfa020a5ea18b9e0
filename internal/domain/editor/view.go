package editor

import (
	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/domain/render"
	"github.com/The-Gleb/product_banner/internal/domain/resolver"
	"github.com/The-Gleb/product_banner/internal/localization"
)

// Node is one element of the editor UI tree handed to the host.
type Node struct {
	Type     string         `json:"type"`
	Props    map[string]any `json:"props,omitempty"`
	Children []Node         `json:"children,omitempty"`
}

type Option struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// State is everything a host needs to draw the session.
type State struct {
	Attributes entity.BannerAttributes `json:"attributes"`
	Preview    entity.ResolvedBanner   `json:"preview"`
	View       Node                    `json:"view"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	preview := s.resolver.Resolve(s.attrs, s.selected)

	return State{
		Attributes: s.attrs,
		Preview:    preview,
		View:       s.view(preview),
	}
}

func (s *Session) View() Node {
	return s.State().View
}

func (s *Session) view(preview entity.ResolvedBanner) Node {
	if s.attrs.IsUnconfigured() {
		return Node{
			Type: "Placeholder",
			Props: map[string]any{
				"className":    "product-banner-editor",
				"icon":         "megaphone",
				"label":        s.t(localization.KeyEditorLabel),
				"instructions": s.t(localization.KeyEditorInstructions),
			},
			Children: []Node{s.productSelector()},
		}
	}

	return Node{
		Type: "Fragment",
		Children: []Node{
			{
				Type: "InspectorControls",
				Children: []Node{
					s.panel(localization.KeyProductSettings, true, s.productSelector()),
					s.buttonPanel(preview),
					s.panel(localization.KeyContentSettings, false, Node{
						Type:  "Help",
						Props: map[string]any{"text": s.t(localization.KeyContentHelp)},
					}),
					s.imagePanel(),
				},
			},
			s.preview(preview),
		},
	}
}

func (s *Session) productSelector() Node {
	selector := Node{
		Type:  "ProductSelector",
		Props: map[string]any{"className": "product-banner-product-selector", "mode": string(s.mode)},
		Children: []Node{
			{
				Type: "ButtonGroup",
				Children: []Node{
					s.modeButton(ModeSelect, localization.KeySelectMode),
					s.modeButton(ModeSearch, localization.KeySearchMode),
				},
			},
		},
	}

	loading := s.listLoading()

	if s.mode == ModeSearch {
		selector.Children = append(selector.Children, Node{
			Type: "TextControl",
			Props: map[string]any{
				"label":       s.t(localization.KeySearchProducts),
				"value":       s.query,
				"placeholder": s.t(localization.KeySearchPlaceholder),
				"help":        s.t(localization.KeySearchHelp),
				"action":      string(ActionSetSearchQuery),
			},
		})

		switch {
		case loading:
			selector.Children = append(selector.Children, help(s.t(localization.KeySearching)))
		case len(s.products) == 0 && s.query != "":
			selector.Children = append(selector.Children, help(s.t(localization.KeyNoProducts)))
		}

		results := Node{
			Type:  "SearchResults",
			Props: map[string]any{"className": "product-banner-search-results"},
		}
		for _, product := range s.products {
			selected := product.ID == s.attrs.ProductID
			variant := "secondary"
			className := "product-search-item"
			if selected {
				variant = "primary"
				className += " is-selected"
			}
			results.Children = append(results.Children, Node{
				Type: "Button",
				Props: map[string]any{
					"className": className,
					"label":     render.PlainText(product.Name),
					"variant":   variant,
					"action":    string(ActionSelectProduct),
					"id":        product.ID,
				},
			})
		}
		selector.Children = append(selector.Children, results)
	} else {
		options := []Option{{Label: s.t(localization.KeySelectProductOption), Value: int64(0)}}
		for _, product := range s.products {
			options = append(options, Option{Label: render.PlainText(product.Name), Value: product.ID})
		}

		selector.Children = append(selector.Children, Node{
			Type: "SelectControl",
			Props: map[string]any{
				"label":    s.t(localization.KeySelectProduct),
				"value":    s.attrs.ProductID,
				"options":  options,
				"disabled": loading,
				"help":     s.t(localization.KeySelectProductHelp),
				"action":   string(ActionSelectProduct),
			},
		})
	}

	if s.selected != nil && s.attrs.ProductID > 0 {
		selector.Children = append(selector.Children, Node{
			Type: "SelectedInfo",
			Props: map[string]any{
				"className": "product-banner-selected-info",
				"label":     s.t(localization.KeySelected),
				"name":      render.PlainText(s.selected.Name),
			},
			Children: []Node{
				{
					Type: "Button",
					Props: map[string]any{
						"label":         s.t(localization.KeyClear),
						"isDestructive": true,
						"action":        string(ActionClearProduct),
					},
				},
			},
		})
	}

	return selector
}

func (s *Session) modeButton(mode Mode, key string) Node {
	variant := "secondary"
	if s.mode == mode {
		variant = "primary"
	}
	return Node{
		Type: "Button",
		Props: map[string]any{
			"label":   s.t(key),
			"variant": variant,
			"action":  string(ActionSetMode),
			"text":    string(mode),
		},
	}
}

func (s *Session) buttonPanel(preview entity.ResolvedBanner) Node {
	styles := make([]Option, 0, len(entity.ButtonStyles))
	for _, style := range entity.ButtonStyles {
		styles = append(styles, Option{
			Label: s.t("editor.style." + string(style)),
			Value: string(style),
		})
	}

	return s.panel(localization.KeyButtonSettings, false,
		Node{
			Type: "TextControl",
			Props: map[string]any{
				"label":       s.t(localization.KeyButtonText),
				"value":       s.attrs.ButtonText,
				"placeholder": s.t(localization.KeyShopNow),
				"help":        s.t(localization.KeyButtonTextHelp),
				"action":      string(ActionSetButtonText),
			},
		},
		Node{
			Type: "SelectControl",
			Props: map[string]any{
				"label":   s.t(localization.KeyButtonStyle),
				"value":   string(s.attrs.ButtonStyle),
				"options": styles,
				"help":    s.t(localization.KeyButtonStyleHelp),
				"action":  string(ActionSetButtonStyle),
			},
		},
		Node{
			Type: "RangeControl",
			Props: map[string]any{
				"label":  s.t(localization.KeyBorderRadius),
				"value":  resolver.ClampRadius(s.attrs.ButtonBorderRadius),
				"min":    entity.MinBorderRadius,
				"max":    entity.MaxBorderRadius,
				"help":   s.t(localization.KeyBorderRadiusHelp),
				"action": string(ActionSetBorderRadius),
			},
		},
		Node{
			Type:  "PreviewBox",
			Props: map[string]any{"className": "product-banner-button-preview", "label": s.t(localization.KeyPreview)},
			Children: []Node{
				buttonNode(preview),
			},
		},
	)
}

func (s *Session) imagePanel() Node {
	helpKey := localization.KeyUsingCustomImage
	if s.attrs.UseProductImage {
		helpKey = localization.KeyUsingProductImage
	}

	children := []Node{
		{
			Type: "ToggleControl",
			Props: map[string]any{
				"label":    s.t(localization.KeyUseProductImage),
				"checked":  s.attrs.UseProductImage,
				"help":     s.t(helpKey),
				"disabled": s.attrs.ProductID <= 0,
				"action":   string(ActionSetUseProductImage),
			},
		},
	}

	if !s.attrs.UseProductImage {
		if s.attrs.ImageURL != "" {
			children = append(children, Node{
				Type:  "ImagePreview",
				Props: map[string]any{"className": "product-banner-image-preview", "src": s.attrs.ImageURL},
				Children: []Node{
					{
						Type: "Button",
						Props: map[string]any{
							"label":         s.t(localization.KeyRemoveImage),
							"isDestructive": true,
							"action":        string(ActionRemoveImage),
						},
					},
				},
			})
		} else {
			children = append(children, Node{
				Type: "MediaUpload",
				Props: map[string]any{
					"label":        s.t(localization.KeySelectImage),
					"allowedTypes": []string{"image"},
					"value":        s.attrs.ImageID,
					"action":       string(ActionSelectImage),
				},
			})
		}
	}

	return s.panel(localization.KeyImageSettings, false, children...)
}

func (s *Session) preview(preview entity.ResolvedBanner) Node {
	background := "none"
	if preview.DisplayImageURL != "" {
		background = "url(" + preview.DisplayImageURL + ")"
	}

	titlePlaceholder := s.t(localization.KeyTitlePlaceholder)
	if preview.HasProduct && s.selected != nil {
		titlePlaceholder = render.PlainText(s.selected.Name)
	}

	content := Node{
		Type:  "Content",
		Props: map[string]any{"className": "product-banner-content"},
		Children: []Node{
			{
				Type: "RichText",
				Props: map[string]any{
					"tagName":      "h2",
					"className":    "product-banner-title",
					"value":        s.attrs.Title,
					"displayValue": preview.DisplayTitle,
					"placeholder":  titlePlaceholder,
					"action":       string(ActionSetTitle),
				},
			},
			{
				Type: "RichText",
				Props: map[string]any{
					"tagName":     "p",
					"className":   "product-banner-text",
					"value":       s.attrs.Text,
					"placeholder": s.t(localization.KeyTextPlaceholder),
					"action":      string(ActionSetText),
				},
			},
		},
	}

	if preview.HasProduct {
		content.Children = append(content.Children, Node{
			Type:  "PreviewInfo",
			Props: map[string]any{"className": "product-banner-preview-info"},
			Children: []Node{
				{
					Type:  "Price",
					Props: map[string]any{"className": "product-banner-price", "html": preview.DisplayPrice},
				},
				buttonNode(preview),
			},
		})
	}

	return Node{
		Type:  "Preview",
		Props: map[string]any{"className": "product-banner-editor"},
		Children: []Node{
			{
				Type: "Banner",
				Props: map[string]any{
					"className":       "product-banner-block",
					"backgroundImage": background,
				},
				Children: []Node{
					{Type: "Overlay", Props: map[string]any{"className": "product-banner-overlay"}},
					content,
				},
			},
		},
	}
}

func (s *Session) panel(titleKey string, initialOpen bool, children ...Node) Node {
	return Node{
		Type: "PanelBody",
		Props: map[string]any{
			"title":       s.t(titleKey),
			"initialOpen": initialOpen,
		},
		Children: children,
	}
}

func (s *Session) t(key string) string {
	return s.localizer.T(key)
}

func buttonNode(preview entity.ResolvedBanner) Node {
	return Node{
		Type: "BannerButton",
		Props: map[string]any{
			"className":    preview.ButtonClassName,
			"borderRadius": preview.ButtonInlineRadius,
			"label":        preview.ButtonLabel,
		},
	}
}

func help(text string) Node {
	return Node{
		Type:  "Help",
		Props: map[string]any{"className": "components-base-control__help", "text": text},
	}
}
