package editor

import (
	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/errors"
)

type ActionType string

const (
	ActionSetTitle           ActionType = "set_title"
	ActionSetText            ActionType = "set_text"
	ActionSetButtonText      ActionType = "set_button_text"
	ActionSetButtonStyle     ActionType = "set_button_style"
	ActionSetBorderRadius    ActionType = "set_border_radius"
	ActionSetUseProductImage ActionType = "set_use_product_image"
	ActionSelectImage        ActionType = "select_image"
	ActionRemoveImage        ActionType = "remove_image"
	ActionSelectProduct      ActionType = "select_product"
	ActionClearProduct       ActionType = "clear_product"
	ActionSetMode            ActionType = "set_mode"
	ActionSetSearchQuery     ActionType = "set_search_query"
)

// Action is one discrete author interaction, as sent by a host UI.
type Action struct {
	Type  ActionType `json:"type"`
	Text  string     `json:"text,omitempty"`
	ID    int64      `json:"id,omitempty"`
	URL   string     `json:"url,omitempty"`
	Value int        `json:"value,omitempty"`
	On    bool       `json:"on,omitempty"`
}

func (s *Session) Dispatch(action Action) error {
	switch action.Type {
	case ActionSetTitle:
		s.SetTitle(action.Text)
	case ActionSetText:
		s.SetText(action.Text)
	case ActionSetButtonText:
		s.SetButtonText(action.Text)
	case ActionSetButtonStyle:
		style := entity.ButtonStyle(action.Text)
		if !style.Valid() {
			return errors.NewDomainError(errors.ErrBadRequest, "unknown button style %q", action.Text)
		}
		s.SetButtonStyle(style)
	case ActionSetBorderRadius:
		s.SetBorderRadius(action.Value)
	case ActionSetUseProductImage:
		s.SetUseProductImage(action.On)
	case ActionSelectImage:
		if action.ID <= 0 || action.URL == "" {
			return errors.NewDomainError(errors.ErrBadRequest, "image needs an id and a url")
		}
		s.SelectImage(entity.Media{ID: action.ID, URL: action.URL})
	case ActionRemoveImage:
		s.RemoveImage()
	case ActionSelectProduct:
		s.SelectProduct(action.ID)
	case ActionClearProduct:
		s.ClearProduct()
	case ActionSetMode:
		s.SetMode(Mode(action.Text))
	case ActionSetSearchQuery:
		s.SetSearchQuery(action.Text)
	default:
		return errors.NewDomainError(errors.ErrBadRequest, "unknown action %q", action.Type)
	}
	return nil
}
