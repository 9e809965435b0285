package employee

import (
	"regexp"
	"strings"
)

const (
	MinAge = 18
	MaxAge = 100
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateDraft は下書きを正規化して検証します。
// 失敗した場合はフィールド単位のメッセージを持つ *ValidationError を返します。
func ValidateDraft(d Draft) (Draft, error) {
	verr := &ValidationError{}
	normalized := validateDraft(d, verr, "")
	if err := verr.errOrNil(); err != nil {
		return Draft{}, err
	}
	return normalized, nil
}

// ageIssue はフォーム側で年齢の解釈に失敗した場合のメッセージです。
func validateDraft(d Draft, verr *ValidationError, ageIssue string) Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)

	if d.Name == "" {
		verr.add(FieldName, "Name is required", ErrInvalidName)
	}

	switch {
	case d.Email == "":
		verr.add(FieldEmail, "Email is required", ErrInvalidEmail)
	case !emailPattern.MatchString(d.Email):
		verr.add(FieldEmail, "Invalid email format", ErrInvalidEmail)
	}

	switch {
	case ageIssue != "":
		verr.add(FieldAge, ageIssue, ErrInvalidAge)
	case d.Age < MinAge || d.Age > MaxAge:
		verr.add(FieldAge, ageRangeMessage, ErrInvalidAge)
	}

	switch {
	case d.Department == "":
		verr.add(FieldDepartment, "Department is required", ErrInvalidDepartment)
	case !isValidDepartment(d.Department):
		verr.add(FieldDepartment, "Invalid department", ErrInvalidDepartment)
	}

	// フォームの既定値に合わせ、未指定の状態は在籍扱いにします。
	if d.Status == "" {
		d.Status = StatusActive
	}
	if !isValidStatus(d.Status) {
		verr.add(FieldStatus, "Invalid status", ErrInvalidStatus)
	}

	return d
}

const ageRangeMessage = "Age must be between 18 and 100"
