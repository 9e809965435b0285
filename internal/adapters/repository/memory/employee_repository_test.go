package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

func newEmployee(id, name string) *employee.Employee {
	return &employee.Employee{
		ID:         id,
		Name:       name,
		Email:      name + "@example.com",
		Age:        30,
		Department: employee.DepartmentEngineering,
		Status:     employee.StatusActive,
	}
}

func TestEmployeeRepository_CreateKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	repo := NewEmployeeRepository()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		if _, err := repo.Create(ctx, newEmployee(id, id)); err != nil {
			t.Fatalf("Create(%s) returned error: %v", id, err)
		}
	}

	snap, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if len(snap.Employees) != 3 || snap.Employees[0].ID != "c" || snap.Employees[2].ID != "b" {
		t.Fatalf("unexpected order: %+v", snap.Employees)
	}
	if snap.Version != 3 {
		t.Fatalf("expected version 3, got %d", snap.Version)
	}
}

func TestEmployeeRepository_CreateDuplicateID(t *testing.T) {
	t.Parallel()

	repo := NewEmployeeRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newEmployee("x", "one")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := repo.Create(ctx, newEmployee("x", "two")); !errors.Is(err, employee.ErrIDAlreadyExists) {
		t.Fatalf("expected ErrIDAlreadyExists, got %v", err)
	}
	if _, err := repo.Create(ctx, newEmployee("", "three")); !errors.Is(err, employee.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestEmployeeRepository_UpdateInPlace(t *testing.T) {
	t.Parallel()

	repo := NewEmployeeRepository()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := repo.Create(ctx, newEmployee(id, id)); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	changed := newEmployee("b", "bee")
	changed.Status = employee.StatusInactive
	if _, err := repo.Update(ctx, changed); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	snap, _ := repo.Snapshot(ctx)
	if snap.Employees[1].Name != "bee" || snap.Employees[1].Status != employee.StatusInactive {
		t.Fatalf("expected b updated at position 1, got %+v", snap.Employees[1])
	}
	if snap.Version != 4 {
		t.Fatalf("expected version 4, got %d", snap.Version)
	}

	if _, err := repo.Update(ctx, newEmployee("zz", "missing")); !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	repo := NewEmployeeRepository()
	ctx := context.Background()
	if _, err := repo.Create(ctx, newEmployee("a", "alice")); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	snap, _ := repo.Snapshot(ctx)
	snap.Employees[0].Name = "mallory"

	found, err := repo.FindByID(ctx, "a")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found.Name != "alice" {
		t.Fatalf("snapshot mutation leaked into store: %s", found.Name)
	}
}

func TestEmployeeRepository_ConcurrentCreates(t *testing.T) {
	t.Parallel()

	repo := NewEmployeeRepository()
	tm := NewTransactionManager(repo)
	svc := employee.NewService(repo, nil, tm)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeInput{Draft: employee.Draft{
				Name:       "Worker",
				Email:      "worker@example.com",
				Age:        40,
				Department: employee.DepartmentSales,
			}})
			if err != nil {
				t.Errorf("CreateEmployee returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	if repo.Len() != 20 {
		t.Fatalf("expected 20 records, got %d", repo.Len())
	}
}
