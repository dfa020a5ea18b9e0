package localization

import (
	i18n "github.com/goliatone/go-i18n"
)

const DefaultLocale = "en"

const (
	KeyShopNow           = "banner.button.shop_now"
	KeyPlaceholderPrompt = "banner.placeholder.prompt"

	KeyEditorLabel         = "editor.label"
	KeyEditorInstructions  = "editor.instructions"
	KeySelectMode          = "editor.selector.select"
	KeySearchMode          = "editor.selector.search"
	KeySearchProducts      = "editor.selector.search_label"
	KeySearchPlaceholder   = "editor.selector.search_placeholder"
	KeySearchHelp          = "editor.selector.search_help"
	KeySearching           = "editor.selector.searching"
	KeyNoProducts          = "editor.selector.no_products"
	KeySelectProduct       = "editor.selector.select_label"
	KeySelectProductOption = "editor.selector.select_option"
	KeySelectProductHelp   = "editor.selector.select_help"
	KeySelected            = "editor.selector.selected"
	KeyClear               = "editor.selector.clear"
	KeyProductSettings     = "editor.panel.product"
	KeyButtonSettings      = "editor.panel.button"
	KeyContentSettings     = "editor.panel.content"
	KeyImageSettings       = "editor.panel.image"
	KeyButtonText          = "editor.button.text"
	KeyButtonTextHelp      = "editor.button.text_help"
	KeyButtonStyle         = "editor.button.style"
	KeyButtonStyleHelp     = "editor.button.style_help"
	KeyBorderRadius        = "editor.button.radius"
	KeyBorderRadiusHelp    = "editor.button.radius_help"
	KeyPreview             = "editor.button.preview"
	KeyContentHelp         = "editor.content.help"
	KeyUseProductImage     = "editor.image.use_product"
	KeyUsingProductImage   = "editor.image.using_product"
	KeyUsingCustomImage    = "editor.image.using_custom"
	KeySelectImage         = "editor.image.select"
	KeyRemoveImage         = "editor.image.remove"
	KeyTitlePlaceholder    = "editor.preview.title_placeholder"
	KeyTextPlaceholder     = "editor.preview.text_placeholder"
	KeyStyleGradientPurple = "editor.style.gradient-purple"
	KeyStyleGradientBlue   = "editor.style.gradient-blue"
	KeyStyleGradientRed    = "editor.style.gradient-red"
	KeyStyleGradientGreen  = "editor.style.gradient-green"
	KeyStyleSolidBlack     = "editor.style.solid-black"
	KeyStyleSolidWhite     = "editor.style.solid-white"
	KeyStyleOutline        = "editor.style.outline"
)

var english = map[string]string{
	KeyShopNow:             "Shop Now",
	KeyPlaceholderPrompt:   "Please configure your product banner in the editor.",
	KeyEditorLabel:         "Product Banner",
	KeyEditorInstructions:  "Select a product to get started, or add custom content.",
	KeySelectMode:          "Select",
	KeySearchMode:          "Search",
	KeySearchProducts:      "Search Products",
	KeySearchPlaceholder:   "Type to search...",
	KeySearchHelp:          "Search by product name",
	KeySearching:           "Searching...",
	KeyNoProducts:          "No products found",
	KeySelectProduct:       "Select Product",
	KeySelectProductOption: "Select a product...",
	KeySelectProductHelp:   "Choose a product to display",
	KeySelected:            "Selected:",
	KeyClear:               "Clear",
	KeyProductSettings:     "Product Settings",
	KeyButtonSettings:      "Button Settings",
	KeyContentSettings:     "Content Settings",
	KeyImageSettings:       "Image Settings",
	KeyButtonText:          "Button Text",
	KeyButtonTextHelp:      "Customize the button text",
	KeyButtonStyle:         "Button Style",
	KeyButtonStyleHelp:     "Choose a button style preset",
	KeyBorderRadius:        "Border Radius",
	KeyBorderRadiusHelp:    "Adjust button corner roundness",
	KeyPreview:             "Preview:",
	KeyContentHelp:         "Custom title and text will override product details",
	KeyUseProductImage:     "Use Product Image",
	KeyUsingProductImage:   "Using the product featured image",
	KeyUsingCustomImage:    "Using custom image",
	KeySelectImage:         "Select Image",
	KeyRemoveImage:         "Remove Image",
	KeyTitlePlaceholder:    "Enter banner title...",
	KeyTextPlaceholder:     "Enter banner description...",
	KeyStyleGradientPurple: "Gradient Purple",
	KeyStyleGradientBlue:   "Gradient Blue",
	KeyStyleGradientRed:    "Gradient Red",
	KeyStyleGradientGreen:  "Gradient Green",
	KeyStyleSolidBlack:     "Solid Black",
	KeyStyleSolidWhite:     "Solid White",
	KeyStyleOutline:        "Outline",
}

var french = map[string]string{
	KeyShopNow:             "Acheter",
	KeyPlaceholderPrompt:   "Veuillez configurer votre bannière produit dans l'éditeur.",
	KeyEditorLabel:         "Bannière produit",
	KeyEditorInstructions:  "Sélectionnez un produit pour commencer, ou ajoutez un contenu personnalisé.",
	KeySelectMode:          "Sélectionner",
	KeySearchMode:          "Rechercher",
	KeySearching:           "Recherche...",
	KeyNoProducts:          "Aucun produit trouvé",
	KeySelectProductOption: "Sélectionnez un produit...",
	KeyClear:               "Effacer",
	KeyTitlePlaceholder:    "Titre de la bannière...",
	KeyTextPlaceholder:     "Description de la bannière...",
}

// Translations returns the catalogs shipped with the block.
func Translations() i18n.Translations {
	return i18n.Translations{
		"en": newCatalog("en", english),
		"fr": newCatalog("fr", french),
	}
}

func newCatalog(locale string, entries map[string]string) *i18n.TranslationCatalog {
	catalog := &i18n.TranslationCatalog{
		Locale:   i18n.Locale{Code: locale},
		Messages: make(map[string]i18n.Message),
	}
	for key, template := range entries {
		msg := i18n.Message{}
		msg.SetContent(template)
		catalog.Messages[key] = msg
	}
	return catalog
}
