package usecase

import (
	"context"

	"github.com/The-Gleb/product_banner/internal/domain/editor"
)

type EditorService interface {
	Mount(ctx context.Context, raw map[string]any) (string, editor.State)
	State(ctx context.Context, id string, wait bool) (editor.State, error)
	Dispatch(ctx context.Context, id string, action editor.Action, wait bool) (editor.State, error)
	Close(ctx context.Context, id string) error
}

type mountEditorUsecase struct {
	editorService EditorService
}

func NewMountEditorUsecase(editorService EditorService) *mountEditorUsecase {
	return &mountEditorUsecase{editorService}
}

func (u *mountEditorUsecase) MountEditor(ctx context.Context, raw map[string]any) (string, editor.State) {
	return u.editorService.Mount(ctx, raw)
}

type getEditorStateUsecase struct {
	editorService EditorService
}

func NewGetEditorStateUsecase(editorService EditorService) *getEditorStateUsecase {
	return &getEditorStateUsecase{editorService}
}

func (u *getEditorStateUsecase) GetEditorState(ctx context.Context, id string, wait bool) (editor.State, error) {
	return u.editorService.State(ctx, id, wait)
}

type dispatchEditorActionUsecase struct {
	editorService EditorService
}

func NewDispatchEditorActionUsecase(editorService EditorService) *dispatchEditorActionUsecase {
	return &dispatchEditorActionUsecase{editorService}
}

func (u *dispatchEditorActionUsecase) DispatchEditorAction(ctx context.Context, id string, action editor.Action, wait bool) (editor.State, error) {
	return u.editorService.Dispatch(ctx, id, action, wait)
}

type closeEditorUsecase struct {
	editorService EditorService
}

func NewCloseEditorUsecase(editorService EditorService) *closeEditorUsecase {
	return &closeEditorUsecase{editorService}
}

func (u *closeEditorUsecase) CloseEditor(ctx context.Context, id string) error {
	return u.editorService.Close(ctx, id)
}
