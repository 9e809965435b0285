// Package session は 1 プロセス分の名簿セッションを組み立てます。
package session

import (
	"context"
	"fmt"

	"github.com/ogurasousui/employee-directory/internal/adapters/repository/memory"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/ogurasousui/employee-directory/internal/platform/config"
	"github.com/ogurasousui/employee-directory/internal/platform/seed"
	"go.uber.org/zap"
)

// Session はストアとユースケースをまとめたものです。
type Session struct {
	Repository *memory.EmployeeRepository
	Service    *employee.Service
}

// New はメモリ上のストアを作り、設定された初期データを登録します。
func New(ctx context.Context, cfg config.DirectoryConfig, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	drafts, err := seed.Load(cfg.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	repo := memory.NewEmployeeRepository()
	svc := employee.NewService(
		repo,
		nil,
		memory.NewTransactionManager(repo),
		employee.WithLogger(logger.Named("employee")),
		employee.WithLocale(cfg.LocaleTag),
	)

	if err := svc.Seed(ctx, drafts); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &Session{Repository: repo, Service: svc}, nil
}
