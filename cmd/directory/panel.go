package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ogurasousui/employee-directory/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newPanelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "panel",
		Short: "Open the interactive admin panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.directory(cmd.Context())
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				tui.New(cmd.Context(), svc),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
