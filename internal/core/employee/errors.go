package employee

import (
	"errors"
	"strings"
)

var (
	ErrInvalidID            = errors.New("employee: invalid id")
	ErrInvalidName          = errors.New("employee: invalid name")
	ErrInvalidEmail         = errors.New("employee: invalid email")
	ErrInvalidAge           = errors.New("employee: invalid age")
	ErrInvalidDepartment    = errors.New("employee: invalid department")
	ErrInvalidStatus        = errors.New("employee: invalid status")
	ErrInvalidSortField     = errors.New("employee: invalid sort field")
	ErrInvalidSortDirection = errors.New("employee: invalid sort direction")
	ErrEmployeeNotFound     = errors.New("employee: not found")
	ErrIDAlreadyExists      = errors.New("employee: id already exists")
	ErrEditorOpen           = errors.New("employee: editor already open")
	ErrEditorClosed         = errors.New("employee: editor is closed")
)

// フォームのフィールド名です。ValidationError のキーとして使われます。
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldAge        = "age"
	FieldDepartment = "department"
	FieldStatus     = "status"
)

// FieldError は 1 フィールド分の検証エラーです。
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError は下書きの検証エラーをフィールド単位でまとめたものです。
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "employee: validation failed: " + strings.Join(parts, "; ")
}

// Unwrap は各フィールドの原因エラーを返し、errors.Is で判定できるようにします。
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, f := range e.Fields {
		errs = append(errs, f)
	}
	return errs
}

// Messages はフィールド名から表示用メッセージへの対応を返します。
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// Has は指定フィールドにエラーがあるかを返します。
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, message string, cause error) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message, Err: cause})
}

func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FieldErrors は err に含まれるフィールドエラーを取り出します。検証エラーでなければ nil です。
func FieldErrors(err error) map[string]string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Messages()
	}
	return nil
}
