package employee

import "strconv"

// EmptyViewMessage は射影が空のときに表に表示する文言です。
const EmptyViewMessage = "No employees found"

// Column は表の列定義です。
type Column struct {
	Field    SortField
	Label    string
	Sortable bool
	Render   func(Employee) string
}

// Cell は列の表示値を返します。
func (c Column) Cell(e Employee) string {
	if c.Render != nil {
		return c.Render(e)
	}
	return ""
}

// DefaultColumns は社員一覧の標準列です。
func DefaultColumns() []Column {
	return []Column{
		{Field: SortFieldName, Label: "Name", Sortable: true, Render: func(e Employee) string { return e.Name }},
		{Field: SortFieldEmail, Label: "Email", Sortable: true, Render: func(e Employee) string { return e.Email }},
		{Field: SortFieldAge, Label: "Age", Sortable: true, Render: func(e Employee) string { return strconv.Itoa(e.Age) }},
		{Field: SortFieldDepartment, Label: "Department", Sortable: true, Render: func(e Employee) string { return e.Department.Label() }},
		{Field: SortFieldStatus, Label: "Status", Sortable: true, Render: func(e Employee) string { return e.Status.Label() }},
	}
}

// HeaderLabel は並び替え状態を示す記号付きの見出しを返します。
func (c Column) HeaderLabel(s SortState) string {
	if !c.Sortable {
		return c.Label
	}
	if s.Field != c.Field {
		return c.Label + " ↕"
	}
	if s.Direction == SortDesc {
		return c.Label + " ↓"
	}
	return c.Label + " ↑"
}
