package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#2563eb")
	colorBorder  = lipgloss.Color("#d4d4d8")
	colorMuted   = lipgloss.Color("#71717a")
	colorError   = lipgloss.Color("#dc2626")
	colorBar     = lipgloss.Color("#3b82f6")
)

// chartFills は集計結果の塗り色 (hsl) を端末色に対応付けます。
var chartFills = map[string]lipgloss.Color{
	"hsl(142, 76%, 36%)": lipgloss.Color("#16a34a"),
	"hsl(38, 92%, 50%)":  lipgloss.Color("#f59e0b"),
}

func fillColor(fill string) lipgloss.Color {
	if c, ok := chartFills[fill]; ok {
		return c
	}
	return colorMuted
}

// Styles は管理画面の見た目をまとめたものです。
type Styles struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Input    lipgloss.Style
	Focused  lipgloss.Style
	Dialog   lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Button   lipgloss.Style
	Bar      lipgloss.Style
}

// DefaultStyles は既定のスタイルを返します。
func DefaultStyles() Styles {
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Section:  lipgloss.NewStyle().Bold(true).MarginTop(1),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Input:    input,
		Focused:  input.BorderForeground(colorPrimary),
		Dialog:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary).Padding(1, 2),
		Label:    lipgloss.NewStyle().Width(12),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Button:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(colorPrimary).Padding(0, 2),
		Bar:      lipgloss.NewStyle().Foreground(colorBar),
	}
}
