package memory

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrReadOnlyTransaction は読み取り専用トランザクション内で書き込もうとしたことを表します。
var ErrReadOnlyTransaction = errors.New("memory: write inside read-only transaction")

// transactionContextKey はコンテキストにトランザクションを格納するためのキーです。
type transactionContextKey struct{}

var txContextKey = transactionContextKey{}

type transaction struct {
	repo     *EmployeeRepository
	writable bool
}

// TransactionManager はリポジトリのロックを用いたトランザクション制御を提供します。
// 入れ子の呼び出しは外側のトランザクションを再利用します。
type TransactionManager struct {
	repo *EmployeeRepository
}

// NewTransactionManager は TransactionManager を生成します。
func NewTransactionManager(repo *EmployeeRepository) *TransactionManager {
	if repo == nil {
		return nil
	}
	return &TransactionManager{repo: repo}
}

// WithinReadOnly は読み取りロックを保持したまま fn を実行します。
func (m *TransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.within(ctx, false, fn)
}

// WithinReadWrite は書き込みロックを保持したまま fn を実行し、失敗時は変更を巻き戻します。
func (m *TransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.within(ctx, true, fn)
}

func (m *TransactionManager) within(ctx context.Context, writable bool, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("memory: transaction function is required")
	}

	if tx, ok := txFromContext(ctx, m.repo); ok {
		if writable && !tx.writable {
			return ErrReadOnlyTransaction
		}
		return fn(ctx)
	}

	if !writable {
		m.repo.mu.RLock()
		defer m.repo.mu.RUnlock()
		return fn(contextWithTx(ctx, &transaction{repo: m.repo}))
	}

	m.repo.mu.Lock()
	defer m.repo.mu.Unlock()

	saved := m.repo.state.clone()
	if err := fn(contextWithTx(ctx, &transaction{repo: m.repo, writable: true})); err != nil {
		// 版は単調増加のまま保ちます。
		version := m.repo.state.version
		m.repo.state = saved
		if version != saved.version {
			m.repo.state.version = version + 1
		}
		return err
	}
	return nil
}

func contextWithTx(ctx context.Context, tx *transaction) context.Context {
	return context.WithValue(ctx, txContextKey, tx)
}

func txFromContext(ctx context.Context, repo *EmployeeRepository) (*transaction, bool) {
	if ctx == nil {
		return nil, false
	}
	tx, ok := ctx.Value(txContextKey).(*transaction)
	if !ok || tx.repo != repo {
		return nil, false
	}
	return tx, true
}

func (s state) clone() state {
	return state{
		employees: slices.Clone(s.employees),
		index:     maps.Clone(s.index),
		version:   s.version,
	}
}
