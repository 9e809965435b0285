package employee

import (
	"strings"

	"golang.org/x/text/cases"
)

// Criteria は一覧の絞り込み条件です。
// Department と Status の空値は AllDepartments / AllStatuses と同じ扱いです。
type Criteria struct {
	Search     string
	Department Department
	Status     Status
}

// DefaultCriteria は絞り込みなしの条件を返します。
func DefaultCriteria() Criteria {
	return Criteria{Department: AllDepartments, Status: AllStatuses}
}

// Matches は社員が条件に一致するかを判定します。
func Matches(e Employee, c Criteria) bool {
	return newMatcher(c).match(e)
}

func (c Criteria) normalize() (Criteria, error) {
	if c.Department == "" {
		c.Department = AllDepartments
	}
	if c.Department != AllDepartments && !isValidDepartment(c.Department) {
		return Criteria{}, ErrInvalidDepartment
	}

	if c.Status == "" {
		c.Status = AllStatuses
	}
	if c.Status != AllStatuses && !isValidStatus(c.Status) {
		return Criteria{}, ErrInvalidStatus
	}

	return c, nil
}

// matcher は検索語の畳み込みを一度だけ行うための Criteria の評価器です。
type matcher struct {
	criteria Criteria
	term     string
	fold     cases.Caser
}

func newMatcher(c Criteria) *matcher {
	m := &matcher{criteria: c, fold: cases.Fold()}
	if c.Search != "" {
		m.term = m.fold.String(c.Search)
	}
	return m
}

func (m *matcher) match(e Employee) bool {
	return m.matchSearch(e) && m.matchDepartment(e) && m.matchStatus(e)
}

func (m *matcher) matchSearch(e Employee) bool {
	if m.criteria.Search == "" {
		return true
	}
	return strings.Contains(m.fold.String(e.Name), m.term) ||
		strings.Contains(m.fold.String(e.Email), m.term)
}

func (m *matcher) matchDepartment(e Employee) bool {
	dept := m.criteria.Department
	return dept == "" || dept == AllDepartments || dept == e.Department
}

func (m *matcher) matchStatus(e Employee) bool {
	status := m.criteria.Status
	return status == "" || status == AllStatuses || status == e.Status
}
