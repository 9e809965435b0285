package employee

import "testing"

func TestMatches(t *testing.T) {
	t.Parallel()

	alice := Employee{Name: "Alice Smith", Email: "asmith@Example.com", Department: DepartmentEngineering, Status: StatusActive}

	cases := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"zero value matches everything", Criteria{}, true},
		{"defaults match everything", DefaultCriteria(), true},
		{"name substring ignores case", Criteria{Search: "SMITH"}, true},
		{"email substring ignores case", Criteria{Search: "example.COM"}, true},
		{"search miss", Criteria{Search: "bob"}, false},
		{"department equal", Criteria{Department: DepartmentEngineering}, true},
		{"department differs", Criteria{Department: DepartmentSales}, false},
		{"department is case sensitive", Criteria{Department: "engineering"}, false},
		{"status equal", Criteria{Status: StatusActive}, true},
		{"status differs", Criteria{Status: StatusInactive}, false},
		{"all conditions", Criteria{Search: "alice", Department: DepartmentEngineering, Status: StatusActive}, true},
		{"one condition fails", Criteria{Search: "alice", Department: DepartmentEngineering, Status: StatusInactive}, false},
	}

	for _, tc := range cases {
		if got := Matches(alice, tc.criteria); got != tc.want {
			t.Errorf("%s: Matches = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatches_UnicodeFolding(t *testing.T) {
	t.Parallel()

	e := Employee{Name: "Jürgen Öztürk", Email: "j@example.com"}
	if !Matches(e, Criteria{Search: "ÖZTÜRK"}) {
		t.Fatal("expected folded match for accented upper case")
	}
	if !Matches(e, Criteria{Search: "jÜrgen"}) {
		t.Fatal("expected folded match for accented upper case")
	}
}
