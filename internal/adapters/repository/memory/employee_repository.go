package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

type state struct {
	employees []employee.Employee
	index     map[string]int
	version   uint64
}

// EmployeeRepository はセッション中だけ保持されるメモリ上の社員名簿です。
// 記録は追加順に並び、削除はできません。
type EmployeeRepository struct {
	mu    sync.RWMutex
	state state
}

// NewEmployeeRepository は空の EmployeeRepository を生成します。
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{state: state{index: make(map[string]int)}}
}

// Create は社員を末尾に追加します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	unlock, err := r.lock(ctx, true)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if e.ID == "" {
		return nil, employee.ErrInvalidID
	}
	if _, ok := r.state.index[e.ID]; ok {
		return nil, employee.ErrIDAlreadyExists
	}

	r.state.index[e.ID] = len(r.state.employees)
	r.state.employees = append(r.state.employees, *e)
	r.state.version++

	created := *e
	return &created, nil
}

// Update は同じ ID の社員を位置を変えずに置き換えます。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	unlock, err := r.lock(ctx, true)
	if err != nil {
		return nil, err
	}
	defer unlock()

	i, ok := r.state.index[e.ID]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	r.state.employees[i] = *e
	r.state.version++

	updated := *e
	return &updated, nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	unlock, err := r.lock(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	i, ok := r.state.index[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	found := r.state.employees[i]
	return &found, nil
}

// Snapshot は全記録の複製と版を返します。
func (r *EmployeeRepository) Snapshot(ctx context.Context) (employee.Snapshot, error) {
	unlock, err := r.lock(ctx, false)
	if err != nil {
		return employee.Snapshot{}, err
	}
	defer unlock()

	return employee.Snapshot{
		Employees: slices.Clone(r.state.employees),
		Version:   r.state.version,
	}, nil
}

// Len は保持している記録数です。
func (r *EmployeeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.state.employees)
}

// lock はトランザクション外であればロックを取り、解放関数を返します。
// トランザクション内ではロックは既に保持されています。
func (r *EmployeeRepository) lock(ctx context.Context, write bool) (func(), error) {
	if tx, ok := txFromContext(ctx, r); ok {
		if write && !tx.writable {
			return nil, ErrReadOnlyTransaction
		}
		return func() {}, nil
	}

	if write {
		r.mu.Lock()
		return r.mu.Unlock, nil
	}
	r.mu.RLock()
	return r.mu.RUnlock, nil
}
