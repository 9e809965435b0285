package employee

import (
	"context"
	"errors"
	"maps"
)

// EditorState は編集ダイアログの状態です。
type EditorState int

const (
	EditorClosed EditorState = iota
	EditorCreating
	EditorEditing
)

func (s EditorState) String() string {
	switch s {
	case EditorCreating:
		return "creating"
	case EditorEditing:
		return "editing"
	default:
		return "closed"
	}
}

// Editor は社員の作成・編集ダイアログの状態遷移を管理します。
//
//	Closed -> Creating | Editing(id)
//	Creating | Editing -> Closed (キャンセル、または送信成功)
//
// 検証に失敗した送信は開いたままエラーを保持します。
type Editor struct {
	svc UseCase

	state     EditorState
	editingID string
	form      FormInput
	errors    map[string]string
}

// NewEditor は閉じた状態の Editor を生成します。
func NewEditor(svc UseCase) *Editor {
	return &Editor{svc: svc}
}

func (e *Editor) State() EditorState { return e.state }

func (e *Editor) EditingID() string { return e.editingID }

func (e *Editor) Form() FormInput { return e.form }

func (e *Editor) IsOpen() bool { return e.state != EditorClosed }

// Errors は直近の送信で発生したフィールドエラーの複製を返します。
func (e *Editor) Errors() map[string]string {
	return maps.Clone(e.errors)
}

// Title はダイアログの見出しです。
func (e *Editor) Title() string {
	if e.state == EditorEditing {
		return "Edit Employee"
	}
	return "Add New Employee"
}

// Description はダイアログの説明文です。
func (e *Editor) Description() string {
	if e.state == EditorEditing {
		return "Update employee information"
	}
	return "Add a new employee to the system"
}

// SubmitLabel は送信ボタンの文言です。
func (e *Editor) SubmitLabel() string {
	if e.state == EditorEditing {
		return "Update Employee"
	}
	return "Add Employee"
}

// OpenCreate は新規作成用にダイアログを開きます。
func (e *Editor) OpenCreate() error {
	if e.IsOpen() {
		return ErrEditorOpen
	}
	e.state = EditorCreating
	e.editingID = ""
	e.form = NewFormInput(nil)
	e.errors = nil
	return nil
}

// OpenEdit は既存社員の値でダイアログを開きます。
func (e *Editor) OpenEdit(ctx context.Context, id string) error {
	if e.IsOpen() {
		return ErrEditorOpen
	}
	found, err := e.svc.GetEmployee(ctx, GetEmployeeInput{ID: id})
	if err != nil {
		return err
	}
	e.state = EditorEditing
	e.editingID = found.ID
	e.form = NewFormInput(found)
	e.errors = nil
	return nil
}

// SetForm は入力中のフォーム値を更新します。
func (e *Editor) SetForm(in FormInput) {
	if !e.IsOpen() {
		return
	}
	e.form = in
}

// Cancel は記録を変更せずにダイアログを閉じます。
func (e *Editor) Cancel() {
	e.close()
}

// Submit はフォームを検証して作成または更新し、成功時にダイアログを閉じます。
// 検証に失敗した場合はダイアログを開いたままエラーを返します。
func (e *Editor) Submit(ctx context.Context) (*Employee, error) {
	if !e.IsOpen() {
		return nil, ErrEditorClosed
	}

	draft, err := e.form.Draft()
	if err != nil {
		e.errors = FieldErrors(err)
		return nil, err
	}

	var saved *Employee
	switch e.state {
	case EditorCreating:
		saved, err = e.svc.CreateEmployee(ctx, CreateEmployeeInput{Draft: draft})
	case EditorEditing:
		saved, err = e.svc.UpdateEmployee(ctx, UpdateEmployeeInput{ID: e.editingID, Draft: draft})
	}
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			e.errors = verr.Messages()
		}
		return nil, err
	}

	e.close()
	return saved, nil
}

func (e *Editor) close() {
	e.state = EditorClosed
	e.editingID = ""
	e.form = FormInput{}
	e.errors = nil
}
