package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/spf13/cobra"
)

type listOptions struct {
	search     string
	department string
	status     string
	sort       string
	desc       bool
}

func newListCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered and sorted employee table",
		Example: `  directory list --department Engineering --sort age --desc
  directory list --search alice --status active`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.input()
			if err != nil {
				return err
			}

			svc, err := a.directory(cmd.Context())
			if err != nil {
				return err
			}

			result, err := svc.ListEmployees(cmd.Context(), in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Employees) == 0 {
				fmt.Fprintln(out, employee.EmptyViewMessage)
			} else {
				fmt.Fprintln(out, renderEmployees(result))
			}
			fmt.Fprintf(out, "Showing %d of %d employees\n", len(result.Employees), result.Total)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.search, "search", "q", "", "case-insensitive substring of name or email")
	flags.StringVarP(&opts.department, "department", "d", string(employee.AllDepartments), "department or \"all\"")
	flags.StringVarP(&opts.status, "status", "s", string(employee.AllStatuses), "active, inactive or \"all\"")
	flags.StringVar(&opts.sort, "sort", "", "sort field: name, email, age, department or status")
	flags.BoolVar(&opts.desc, "desc", false, "sort descending")
	return cmd
}

func (o *listOptions) input() (employee.ListEmployeesInput, error) {
	field, err := employee.ParseSortField(o.sort)
	if err != nil {
		return employee.ListEmployeesInput{}, fmt.Errorf("--sort %q: %w", o.sort, err)
	}

	dir := employee.SortAsc
	if o.desc {
		dir = employee.SortDesc
	}

	return employee.ListEmployeesInput{
		Criteria: employee.Criteria{
			Search:     o.search,
			Department: employee.Department(o.department),
			Status:     employee.Status(o.status),
		},
		Sort: employee.SortState{Field: field, Direction: dir},
	}, nil
}

func renderEmployees(result *employee.ListEmployeesResult) string {
	columns := employee.DefaultColumns()

	headers := make([]string, 0, len(columns))
	for _, c := range columns {
		headers = append(headers, c.HeaderLabel(result.Sort))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...)
	for _, e := range result.Employees {
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, c.Cell(e))
		}
		t.Row(row...)
	}
	return t.Render()
}
