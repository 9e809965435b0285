package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

const maxBarWidth = 30

// renderDepartmentChart は部署別人数の横棒グラフです。
func renderDepartmentChart(sum *employee.Summary, styles Styles) string {
	if sum == nil || len(sum.Departments) == 0 {
		return styles.Muted.Render(employee.EmptyViewMessage)
	}

	peak := 0
	for _, dc := range sum.Departments {
		peak = max(peak, dc.Count)
	}

	var sb strings.Builder
	for i, dc := range sum.Departments {
		if i > 0 {
			sb.WriteString("\n")
		}
		width := dc.Count * maxBarWidth / peak
		fmt.Fprintf(&sb, "%-12s %s %d", dc.Department.Label(), styles.Bar.Render(strings.Repeat("█", width)), dc.Count)
	}
	return sb.String()
}

// renderStatusChart は在籍状態の割合を塗り色付きで表示します。
func renderStatusChart(sum *employee.Summary, styles Styles) string {
	if sum == nil || sum.Total == 0 {
		return styles.Muted.Render(employee.EmptyViewMessage)
	}

	var sb strings.Builder
	for i, slice := range sum.Status {
		if i > 0 {
			sb.WriteString("\n")
		}
		pct := slice.Percent(sum.Total)
		bar := lipgloss.NewStyle().Foreground(fillColor(slice.Fill)).Render(strings.Repeat("█", pct*maxBarWidth/100))
		fmt.Fprintf(&sb, "%-12s %s %d (%d%%)", slice.Name, bar, slice.Count, pct)
	}
	return sb.String()
}
