package employee

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type seqIDs struct {
	next int
}

func (s *seqIDs) NewID() string {
	s.next++
	return fmt.Sprintf("emp-%d", s.next)
}

type fixedIDs struct {
	id string
}

func (f fixedIDs) NewID() string {
	return f.id
}

type fakeEmployeeRepo struct {
	employees []Employee
	version   uint64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	for _, existing := range r.employees {
		if existing.ID == e.ID {
			return nil, ErrIDAlreadyExists
		}
	}
	r.employees = append(r.employees, *e)
	r.version++
	clone := *e
	return &clone, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *Employee) (*Employee, error) {
	for i, existing := range r.employees {
		if existing.ID == e.ID {
			r.employees[i] = *e
			r.version++
			clone := *e
			return &clone, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id string) (*Employee, error) {
	for _, existing := range r.employees {
		if existing.ID == id {
			clone := existing
			return &clone, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Snapshot(_ context.Context) (Snapshot, error) {
	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return Snapshot{Employees: out, Version: r.version}, nil
}

func newScenarioService(t *testing.T) (*Service, *fakeEmployeeRepo) {
	t.Helper()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &seqIDs{}, nil)

	seed := []Draft{
		{Name: "Alice", Email: "alice@example.com", Age: 30, Department: DepartmentEngineering, Status: StatusActive},
		{Name: "Bob", Email: "bob@example.com", Age: 40, Department: DepartmentEngineering, Status: StatusInactive},
		{Name: "Carol", Email: "carol@example.com", Age: 35, Department: DepartmentMarketing, Status: StatusActive},
	}
	if err := svc.Seed(context.Background(), seed); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	return svc, repo
}

func TestService_CreateEmployee_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &seqIDs{}, nil)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{Draft: Draft{
		Name:       "  Taro Yamada ",
		Email:      " taro@example.com ",
		Age:        30,
		Department: DepartmentEngineering,
	}})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if created.ID != "emp-1" {
		t.Fatalf("expected generated id emp-1, got %s", created.ID)
	}
	if created.Name != "Taro Yamada" || created.Email != "taro@example.com" {
		t.Fatalf("expected trimmed name and email, got %q %q", created.Name, created.Email)
	}
	if created.Status != StatusActive {
		t.Fatalf("expected default status active, got %s", created.Status)
	}
	if len(repo.employees) != 1 {
		t.Fatalf("expected 1 stored employee, got %d", len(repo.employees))
	}
}

func TestService_CreateEmployee_DefaultIDsAreUnique(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, nil, nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{Draft: Draft{
			Name:       fmt.Sprintf("User %d", i),
			Email:      fmt.Sprintf("user%d@example.com", i),
			Age:        25,
			Department: DepartmentSales,
		}})
		if err != nil {
			t.Fatalf("CreateEmployee returned error: %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id generated: %s", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestService_CreateEmployee_DuplicateID(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, fixedIDs{id: "same"}, nil)

	draft := Draft{Name: "A", Email: "a@example.com", Age: 20, Department: DepartmentHR}
	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{Draft: draft}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{Draft: draft})
	if !errors.Is(err, ErrIDAlreadyExists) {
		t.Fatalf("expected ErrIDAlreadyExists, got %v", err)
	}
	if len(repo.employees) != 1 {
		t.Fatalf("expected store to keep 1 employee, got %d", len(repo.employees))
	}
}

func TestService_InvalidDraftLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		draft Draft
		field string
		want  error
	}{
		{
			name:  "age below range",
			draft: Draft{Name: "Dave", Email: "dave@x.com", Age: 17, Department: DepartmentHR, Status: StatusActive},
			field: FieldAge,
			want:  ErrInvalidAge,
		},
		{
			name:  "malformed email",
			draft: Draft{Name: "Dave", Email: "not-an-email", Age: 30, Department: DepartmentHR, Status: StatusActive},
			field: FieldEmail,
			want:  ErrInvalidEmail,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newScenarioService(t)
			before, _ := repo.Snapshot(context.Background())

			_, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{Draft: tc.draft})
			if !errors.Is(err, tc.want) {
				t.Fatalf("create: expected %v, got %v", tc.want, err)
			}
			if msgs := FieldErrors(err); msgs[tc.field] == "" {
				t.Fatalf("create: expected field error for %s, got %v", tc.field, msgs)
			}

			_, err = svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: "emp-2", Draft: tc.draft})
			if !errors.Is(err, tc.want) {
				t.Fatalf("update: expected %v, got %v", tc.want, err)
			}

			after, _ := repo.Snapshot(context.Background())
			if diff := cmp.Diff(before, after); diff != "" {
				t.Fatalf("store changed after rejected mutation (-before +after):\n%s", diff)
			}
		})
	}
}

func TestService_UpdateEmployee_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newScenarioService(t)

	_, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{
		ID:    "missing",
		Draft: Draft{Name: "X", Email: "x@example.com", Age: 30, Department: DepartmentHR},
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_UpdateEmployee_EmptyID(t *testing.T) {
	t.Parallel()

	svc, _ := newScenarioService(t)

	_, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: "  "})
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_ListEmployees_InvalidInput(t *testing.T) {
	t.Parallel()

	svc, _ := newScenarioService(t)

	cases := []struct {
		name string
		in   ListEmployeesInput
		want error
	}{
		{"department", ListEmployeesInput{Criteria: Criteria{Department: "Legal"}}, ErrInvalidDepartment},
		{"status", ListEmployeesInput{Criteria: Criteria{Status: "retired"}}, ErrInvalidStatus},
		{"sort field", ListEmployeesInput{Sort: SortState{Field: "salary"}}, ErrInvalidSortField},
		{"sort direction", ListEmployeesInput{Sort: SortState{Field: SortFieldName, Direction: "up"}}, ErrInvalidSortDirection},
	}

	for _, tc := range cases {
		if _, err := svc.ListEmployees(context.Background(), tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestService_ScenarioA_FilterByDepartment(t *testing.T) {
	t.Parallel()

	svc, _ := newScenarioService(t)

	result, err := svc.ListEmployees(context.Background(), ListEmployeesInput{
		Criteria: Criteria{Department: DepartmentEngineering},
	})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Alice", "Bob"}, names(result.Employees)); diff != "" {
		t.Fatalf("unexpected projection (-want +got):\n%s", diff)
	}
	if result.Total != 3 {
		t.Fatalf("expected total 3, got %d", result.Total)
	}

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if summary.Total != 3 || summary.Active != 2 {
		t.Fatalf("expected total=3 active=2, got total=%d active=%d", summary.Total, summary.Active)
	}
}

func TestService_ScenarioB_SortByNameDesc(t *testing.T) {
	t.Parallel()

	svc, _ := newScenarioService(t)

	result, err := svc.ListEmployees(context.Background(), ListEmployeesInput{
		Sort: SortState{Field: SortFieldName, Direction: SortDesc},
	})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Carol", "Bob", "Alice"}, names(result.Employees)); diff != "" {
		t.Fatalf("unexpected projection (-want +got):\n%s", diff)
	}
}

func TestService_ScenarioC_CreateAppendsLast(t *testing.T) {
	t.Parallel()

	svc, repo := newScenarioService(t)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{Draft: Draft{
		Name:       "Dave",
		Email:      "dave@x.com",
		Age:        30,
		Department: DepartmentHR,
		Status:     StatusActive,
	}})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if len(repo.employees) != 4 {
		t.Fatalf("expected 4 employees, got %d", len(repo.employees))
	}
	for _, e := range repo.employees[:3] {
		if e.ID == created.ID {
			t.Fatalf("new id %s collides with existing record", created.ID)
		}
	}

	result, err := svc.ListEmployees(context.Background(), ListEmployeesInput{})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Alice", "Bob", "Carol", "Dave"}, names(result.Employees)); diff != "" {
		t.Fatalf("unexpected projection (-want +got):\n%s", diff)
	}
}

func TestService_ScenarioD_UpdateStatusRecomputesSummary(t *testing.T) {
	t.Parallel()

	svc, repo := newScenarioService(t)

	bob := repo.employees[1]
	draft := bob.Draft()
	draft.Status = StatusActive

	updated, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: bob.ID, Draft: draft})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if updated.ID != bob.ID {
		t.Fatalf("expected id to be preserved, got %s", updated.ID)
	}

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if summary.Active != 3 || summary.Inactive != 0 {
		t.Fatalf("expected active=3 inactive=0, got active=%d inactive=%d", summary.Active, summary.Inactive)
	}

	result, err := svc.ListEmployees(context.Background(), ListEmployeesInput{})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if result.Employees[1].ID != bob.ID {
		t.Fatalf("expected Bob to keep position 1, got %s", result.Employees[1].Name)
	}
}

func TestService_SummarizeIgnoresCriteria(t *testing.T) {
	t.Parallel()

	svc, _ := newScenarioService(t)

	base, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	criteria := []Criteria{
		{Search: "zzz"},
		{Department: DepartmentMarketing},
		{Status: StatusInactive},
	}
	for _, c := range criteria {
		if _, err := svc.ListEmployees(context.Background(), ListEmployeesInput{Criteria: c}); err != nil {
			t.Fatalf("ListEmployees returned error: %v", err)
		}
		got, err := svc.Summarize(context.Background())
		if err != nil {
			t.Fatalf("Summarize returned error: %v", err)
		}
		if diff := cmp.Diff(base, got); diff != "" {
			t.Fatalf("summary changed with criteria %+v (-want +got):\n%s", c, diff)
		}
	}
}

func TestService_ListDepartments(t *testing.T) {
	t.Parallel()

	svc, _ := newScenarioService(t)

	depts, err := svc.ListDepartments(context.Background())
	if err != nil {
		t.Fatalf("ListDepartments returned error: %v", err)
	}
	if diff := cmp.Diff([]Department{DepartmentEngineering, DepartmentMarketing}, depts); diff != "" {
		t.Fatalf("unexpected departments (-want +got):\n%s", diff)
	}
}

func TestService_Seed_InvalidRecord(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, &seqIDs{}, nil)

	err := svc.Seed(context.Background(), []Draft{
		{Name: "Ok", Email: "ok@example.com", Age: 30, Department: DepartmentHR},
		{Name: "", Email: "bad", Age: 10, Department: "Legal"},
	})
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName in seed error, got %v", err)
	}
}

func TestService_SampleDraftsAreValid(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewService(repo, nil, nil)

	if err := svc.Seed(context.Background(), SampleDrafts()); err != nil {
		t.Fatalf("sample data should be valid: %v", err)
	}
	if len(repo.employees) != len(SampleDrafts()) {
		t.Fatalf("expected %d employees, got %d", len(SampleDrafts()), len(repo.employees))
	}
}

func names(es []Employee) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Name)
	}
	return out
}
