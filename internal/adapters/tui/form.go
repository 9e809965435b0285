package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

type formField int

const (
	fieldName formField = iota
	fieldEmail
	fieldAge
	fieldDepartment
	fieldStatus
	fieldCount
)

// departmentChoices の先頭は未選択を表します。
var departmentChoices = append([]employee.Department{""}, employee.Departments()...)

// formModel は編集ダイアログの入力欄です。
type formModel struct {
	inputs     [3]textinput.Model
	department int
	status     int
	focus      formField
}

func newFormModel(in employee.FormInput) formModel {
	f := formModel{}

	placeholders := [3]string{"Full name", "name@example.com", "18-100"}
	values := [3]string{in.Name, in.Email, in.Age}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 32
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}

	for i, d := range departmentChoices {
		if string(d) == in.Department {
			f.department = i
		}
	}
	for i, s := range employee.Statuses() {
		if string(s) == in.Status {
			f.status = i
		}
	}

	f.inputs[fieldName].Focus()
	return f
}

// Input は現在の入力値をフォーム入力として返します。
func (f formModel) Input() employee.FormInput {
	return employee.FormInput{
		Name:       f.inputs[fieldName].Value(),
		Email:      f.inputs[fieldEmail].Value(),
		Age:        f.inputs[fieldAge].Value(),
		Department: string(departmentChoices[f.department]),
		Status:     string(employee.Statuses()[f.status]),
	}
}

func (f formModel) update(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return f.moveFocus(1), nil
	case "shift+tab", "up":
		return f.moveFocus(-1), nil
	case "left", "right":
		step := 1
		if msg.String() == "left" {
			step = -1
		}
		switch f.focus {
		case fieldDepartment:
			f.department = wrap(f.department+step, len(departmentChoices))
			return f, nil
		case fieldStatus:
			f.status = wrap(f.status+step, len(employee.Statuses()))
			return f, nil
		}
	}

	if f.focus < fieldDepartment {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f formModel) moveFocus(step int) formModel {
	if f.focus < fieldDepartment {
		f.inputs[f.focus].Blur()
	}
	f.focus = formField(wrap(int(f.focus)+step, int(fieldCount)))
	if f.focus < fieldDepartment {
		f.inputs[f.focus].Focus()
	}
	return f
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (f formModel) view(ed *employee.Editor, styles Styles) string {
	errs := ed.Errors()

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(ed.Title()) + "\n")
	sb.WriteString(styles.Muted.Render(ed.Description()) + "\n\n")

	labels := [3]string{"Name", "Email", "Age"}
	keys := [3]string{employee.FieldName, employee.FieldEmail, employee.FieldAge}
	for i := range f.inputs {
		box := styles.Input
		if f.focus == formField(i) {
			box = styles.Focused
		}
		sb.WriteString(styles.Label.Render(labels[i]) + box.Render(f.inputs[i].View()) + "\n")
		if msg, ok := errs[keys[i]]; ok {
			sb.WriteString(styles.Error.Render("  "+msg) + "\n")
		}
	}

	dept := departmentChoices[f.department].Label()
	if departmentChoices[f.department] == "" {
		dept = "Select a department"
	}
	sb.WriteString(f.selector("Department", dept, fieldDepartment, styles) + "\n")
	if msg, ok := errs[employee.FieldDepartment]; ok {
		sb.WriteString(styles.Error.Render("  "+msg) + "\n")
	}

	sb.WriteString(f.selector("Status", employee.Statuses()[f.status].Label(), fieldStatus, styles) + "\n")
	if msg, ok := errs[employee.FieldStatus]; ok {
		sb.WriteString(styles.Error.Render("  "+msg) + "\n")
	}

	sb.WriteString("\n" + styles.Button.Render(ed.SubmitLabel()) + "  " + styles.Muted.Render("enter submit • esc cancel • tab next field • ←/→ choose"))

	return styles.Dialog.Render(sb.String())
}

func (f formModel) selector(label, value string, field formField, styles Styles) string {
	text := "‹ " + value + " ›"
	if f.focus == field {
		text = styles.Selected.Render(text)
	}
	return styles.Label.Render(label) + text
}
