// Package tui は社員名簿の端末管理画面です。
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeEdit
)

var columnWidths = map[employee.SortField]int{
	employee.SortFieldName:       22,
	employee.SortFieldEmail:      28,
	employee.SortFieldAge:        9,
	employee.SortFieldDepartment: 14,
	employee.SortFieldStatus:     12,
}

// Model は管理画面全体の状態です。
type Model struct {
	ctx    context.Context
	svc    employee.UseCase
	editor *employee.Editor

	criteria employee.Criteria
	sort     employee.SortState
	result   *employee.ListEmployeesResult
	summary  *employee.Summary
	columns  []employee.Column

	table  table.Model
	search textinput.Model
	form   formModel
	mode   mode
	err    error
	styles Styles
}

// New は管理画面を生成し、初期表示用のデータを読み込みます。
func New(ctx context.Context, svc employee.UseCase) Model {
	search := textinput.New()
	search.Placeholder = "Search by name or email..."
	search.CharLimit = 64
	search.Width = 32

	m := Model{
		ctx:      ctx,
		svc:      svc,
		editor:   employee.NewEditor(svc),
		criteria: employee.DefaultCriteria(),
		columns:  employee.DefaultColumns(),
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(12),
		),
		search: search,
		styles: DefaultStyles(),
	}
	m.reload()
	return m
}

// Init は tea.Model の実装です。
func (m Model) Init() tea.Cmd {
	return nil
}

// Update はキー入力に応じて状態を更新します。
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(5, msg.Height-20))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		m.mode = modeSearch
		return m, m.search.Focus()
	case "d":
		m.criteria.Department = nextDepartment(m.criteria.Department)
		m.reload()
		return m, nil
	case "s":
		m.criteria.Status = nextStatus(m.criteria.Status)
		m.reload()
		return m, nil
	case "c":
		m.criteria = employee.DefaultCriteria()
		m.sort = employee.SortState{}
		m.search.SetValue("")
		m.reload()
		return m, nil
	case "1", "2", "3", "4", "5":
		col := m.columns[int(key[0]-'1')]
		if col.Sortable {
			m.sort = m.sort.Toggle(col.Field)
			m.reload()
		}
		return m, nil
	case "n":
		if err := m.editor.OpenCreate(); err != nil {
			m.err = err
			return m, nil
		}
		return m.enterEdit()
	case "e", "enter":
		selected := m.selected()
		if selected == nil {
			return m, nil
		}
		if err := m.editor.OpenEdit(m.ctx, selected.ID); err != nil {
			m.err = err
			return m, nil
		}
		return m.enterEdit()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil
	case "esc":
		m.mode = modeBrowse
		m.search.Blur()
		m.search.SetValue("")
		m.criteria.Search = ""
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.criteria.Search {
		m.criteria.Search = m.search.Value()
		m.reload()
	}
	return m, cmd
}

func (m Model) enterEdit() (tea.Model, tea.Cmd) {
	m.mode = modeEdit
	m.form = newFormModel(m.editor.Form())
	m.err = nil
	return m, textinput.Blink
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Cancel()
		m.mode = modeBrowse
		return m, nil
	case "enter":
		m.editor.SetForm(m.form.Input())
		if _, err := m.editor.Submit(m.ctx); err != nil {
			if employee.FieldErrors(err) == nil {
				m.err = err
			}
			return m, nil
		}
		m.mode = modeBrowse
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// reload は現在の条件で一覧と集計を取り直します。
func (m *Model) reload() {
	result, err := m.svc.ListEmployees(m.ctx, employee.ListEmployeesInput{Criteria: m.criteria, Sort: m.sort})
	if err != nil {
		m.err = err
		return
	}
	summary, err := m.svc.Summarize(m.ctx)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.result = result
	m.summary = summary
	m.criteria = result.Criteria
	m.sort = result.Sort
	m.refreshTable()
}

func (m *Model) refreshTable() {
	cols := make([]table.Column, 0, len(m.columns))
	for i, c := range m.columns {
		cols = append(cols, table.Column{
			Title: fmt.Sprintf("%d %s", i+1, c.HeaderLabel(m.sort)),
			Width: columnWidths[c.Field],
		})
	}

	rows := make([]table.Row, 0, len(m.result.Employees))
	for _, e := range m.result.Employees {
		row := make(table.Row, 0, len(m.columns))
		for _, c := range m.columns {
			row = append(row, c.Cell(e))
		}
		rows = append(rows, row)
	}

	// 列を差し替える前に行を空にしないと列数の不一致で描画が崩れます。
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

func (m Model) selected() *employee.Employee {
	if m.result == nil {
		return nil
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.result.Employees) {
		return nil
	}
	e := m.result.Employees[i]
	return &e
}

func nextDepartment(current employee.Department) employee.Department {
	options := append([]employee.Department{employee.AllDepartments}, employee.Departments()...)
	for i, d := range options {
		if d == current {
			return options[(i+1)%len(options)]
		}
	}
	return employee.AllDepartments
}

func nextStatus(current employee.Status) employee.Status {
	options := append([]employee.Status{employee.AllStatuses}, employee.Statuses()...)
	for i, s := range options {
		if s == current {
			return options[(i+1)%len(options)]
		}
	}
	return employee.AllStatuses
}

// View は画面を描画します。
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Employee Directory") + "\n")
	sb.WriteString(m.styles.Muted.Render("Manage your team members and their information") + "\n\n")

	if m.mode == modeEdit {
		sb.WriteString(m.form.view(m.editor, m.styles))
		if m.err != nil {
			sb.WriteString("\n" + m.styles.Error.Render(m.err.Error()))
		}
		return sb.String()
	}

	sb.WriteString(m.renderFilterBar() + "\n\n")

	if m.result == nil || len(m.result.Employees) == 0 {
		sb.WriteString(m.styles.Muted.Render(employee.EmptyViewMessage) + "\n")
	} else {
		sb.WriteString(m.table.View() + "\n")
	}

	if m.result != nil {
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Showing %d of %d employees", len(m.result.Employees), m.result.Total)) + "\n")
	}

	sb.WriteString(m.styles.Section.Render("Department Distribution") + "\n")
	sb.WriteString(renderDepartmentChart(m.summary, m.styles) + "\n")
	sb.WriteString(m.styles.Section.Render("Employee Status") + "\n")
	sb.WriteString(renderStatusChart(m.summary, m.styles) + "\n")

	if m.err != nil {
		sb.WriteString("\n" + m.styles.Error.Render(m.err.Error()) + "\n")
	}

	sb.WriteString("\n" + m.styles.Muted.Render("/ search • d department • s status • 1-5 sort • n new • e edit • c clear • q quit"))
	return sb.String()
}

func (m Model) renderFilterBar() string {
	box := m.styles.Input
	if m.mode == modeSearch {
		box = m.styles.Focused
	}
	return box.Render(m.search.View()) + "  " +
		m.criteria.Department.Label() + "  " + m.criteria.Status.Label()
}
