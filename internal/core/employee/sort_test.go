package employee

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestSortState_Toggle(t *testing.T) {
	t.Parallel()

	var s SortState
	s = s.Toggle(SortFieldName)
	if s != (SortState{Field: SortFieldName, Direction: SortAsc}) {
		t.Fatalf("first toggle should sort asc, got %+v", s)
	}
	s = s.Toggle(SortFieldName)
	if s != (SortState{Field: SortFieldName, Direction: SortDesc}) {
		t.Fatalf("second toggle should sort desc, got %+v", s)
	}
	s = s.Toggle(SortFieldName)
	if s.Direction != SortAsc {
		t.Fatalf("third toggle should return to asc, got %+v", s)
	}
	s = s.Toggle(SortFieldName).Toggle(SortFieldAge)
	if s != (SortState{Field: SortFieldAge, Direction: SortAsc}) {
		t.Fatalf("switching field should restart at asc, got %+v", s)
	}
}

func TestParseSortField(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]SortField{
		"":           SortFieldNone,
		"none":       SortFieldNone,
		"Name":       SortFieldName,
		" age ":      SortFieldAge,
		"department": SortFieldDepartment,
		"STATUS":     SortFieldStatus,
		"email":      SortFieldEmail,
	} {
		got, err := ParseSortField(raw)
		if err != nil {
			t.Fatalf("ParseSortField(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Errorf("ParseSortField(%q) = %q, want %q", raw, got, want)
		}
	}

	if _, err := ParseSortField("salary"); !errors.Is(err, ErrInvalidSortField) {
		t.Fatalf("expected ErrInvalidSortField, got %v", err)
	}
	if _, err := ParseSortDirection("sideways"); !errors.Is(err, ErrInvalidSortDirection) {
		t.Fatalf("expected ErrInvalidSortDirection, got %v", err)
	}
}

func TestComparator_Compare(t *testing.T) {
	t.Parallel()

	c := NewComparator(language.English)
	a := Employee{Name: "alice", Age: 30, Department: DepartmentHR, Status: StatusActive}
	b := Employee{Name: "Bob", Age: 25, Department: DepartmentHR, Status: StatusInactive}

	cases := []struct {
		name string
		s    SortState
		want int
	}{
		{"no field is a no-op", SortState{}, 0},
		{"text asc", SortState{Field: SortFieldName, Direction: SortAsc}, -1},
		{"text desc", SortState{Field: SortFieldName, Direction: SortDesc}, 1},
		{"numeric asc", SortState{Field: SortFieldAge, Direction: SortAsc}, 1},
		{"numeric desc", SortState{Field: SortFieldAge, Direction: SortDesc}, -1},
		{"equal asc", SortState{Field: SortFieldDepartment, Direction: SortAsc}, 0},
		{"equal desc", SortState{Field: SortFieldDepartment, Direction: SortDesc}, 0},
		{"status asc", SortState{Field: SortFieldStatus, Direction: SortAsc}, -1},
	}

	for _, tc := range cases {
		if got := c.Compare(a, b, tc.s); got != tc.want {
			t.Errorf("%s: Compare = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestComparator_CaseOnlyDifferenceIsEqual(t *testing.T) {
	t.Parallel()

	c := NewComparator(language.English)
	a := Employee{Name: "alice"}
	b := Employee{Name: "ALICE"}

	for _, dir := range []SortDirection{SortAsc, SortDesc} {
		if got := c.Compare(a, b, SortState{Field: SortFieldName, Direction: dir}); got != 0 {
			t.Fatalf("%s: expected 0 for case-only difference, got %d", dir, got)
		}
	}
}

func TestColumn_HeaderLabel(t *testing.T) {
	t.Parallel()

	cols := DefaultColumns()
	name := cols[0]

	if got := name.HeaderLabel(SortState{}); got != "Name ↕" {
		t.Errorf("unsorted header = %q", got)
	}
	if got := name.HeaderLabel(SortState{Field: SortFieldName, Direction: SortAsc}); got != "Name ↑" {
		t.Errorf("asc header = %q", got)
	}
	if got := name.HeaderLabel(SortState{Field: SortFieldName, Direction: SortDesc}); got != "Name ↓" {
		t.Errorf("desc header = %q", got)
	}
	if got := cols[4].Cell(Employee{Status: StatusInactive}); got != "Not Active" {
		t.Errorf("status cell = %q", got)
	}
}
