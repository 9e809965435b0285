package employee

import (
	"strconv"
	"strings"
)

// FormInput は編集フォームから送信される生の入力値です。
type FormInput struct {
	Name       string
	Email      string
	Age        string
	Department string
	Status     string
}

// NewFormInput はフォームの初期値を作ります。e が nil の場合は新規作成用の既定値です。
func NewFormInput(e *Employee) FormInput {
	if e == nil {
		return FormInput{Status: string(StatusActive)}
	}
	return FormInput{
		Name:       e.Name,
		Email:      e.Email,
		Age:        strconv.Itoa(e.Age),
		Department: string(e.Department),
		Status:     string(e.Status),
	}
}

// Draft はフォーム入力を検証済みの下書きに変換します。
func (in FormInput) Draft() (Draft, error) {
	d := Draft{
		Name:       in.Name,
		Email:      in.Email,
		Department: Department(strings.TrimSpace(in.Department)),
		Status:     Status(strings.TrimSpace(in.Status)),
	}

	var ageIssue string
	rawAge := strings.TrimSpace(in.Age)
	if rawAge == "" {
		ageIssue = "Age is required"
	} else if age, err := strconv.Atoi(rawAge); err != nil {
		ageIssue = ageRangeMessage
	} else {
		d.Age = age
	}

	verr := &ValidationError{}
	normalized := validateDraft(d, verr, ageIssue)
	if err := verr.errOrNil(); err != nil {
		return Draft{}, err
	}
	return normalized, nil
}
