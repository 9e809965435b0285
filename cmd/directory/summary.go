package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print headcount by department and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.directory(cmd.Context())
			if err != nil {
				return err
			}

			sum, err := svc.Summarize(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total: %d  Active: %d  Inactive: %d\n", sum.Total, sum.Active, sum.Inactive)

			depts := table.New().Border(lipgloss.RoundedBorder()).Headers("Department", "Employees")
			for _, dc := range sum.Departments {
				depts.Row(dc.Department.Label(), strconv.Itoa(dc.Count))
			}
			fmt.Fprintln(out, depts.Render())

			status := table.New().Border(lipgloss.RoundedBorder()).Headers("Status", "Employees", "Share")
			for _, s := range sum.Status {
				status.Row(s.Name, strconv.Itoa(s.Count), fmt.Sprintf("%d%%", s.Percent(sum.Total)))
			}
			fmt.Fprintln(out, status.Render())
			return nil
		},
	}
}
