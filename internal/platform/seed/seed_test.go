package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

func TestLoad_EmptyPathUsesSample(t *testing.T) {
	t.Parallel()

	drafts, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff(employee.SampleDrafts(), drafts); diff != "" {
		t.Fatalf("sample mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "employees.yaml")
	content := []byte(`employees:
  - name: Alice
    email: alice@example.com
    age: 30
    department: Engineering
  - name: Bob
    email: bob@example.com
    age: 45
    department: Sales
    status: inactive
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}

	drafts, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := []employee.Draft{
		{Name: "Alice", Email: "alice@example.com", Age: 30, Department: employee.DepartmentEngineering},
		{Name: "Bob", Email: "bob@example.com", Age: 45, Department: employee.DepartmentSales, Status: employee.StatusInactive},
	}
	if diff := cmp.Diff(want, drafts); diff != "" {
		t.Fatalf("drafts mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("employees: {"), 0o600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
