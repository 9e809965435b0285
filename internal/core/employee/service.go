package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// IDGenerator は社員 ID を採番します。
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は社員名簿のユースケースをまとめます。
type Service struct {
	repo      Repository
	ids       IDGenerator
	tx        TransactionManager
	projector *Projector
	logger    *zap.Logger
}

// UseCase は社員名簿ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	Summarize(ctx context.Context) (*Summary, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithLogger は変更操作を記録するロガーを設定します。
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLocale は文字列項目の並び替えに使う言語を設定します。
func WithLocale(tag language.Tag) Option {
	return func(s *Service) {
		s.projector = NewProjector(tag)
	}
}

// NewService は Service を生成します。
func NewService(repo Repository, ids IDGenerator, tx TransactionManager, opts ...Option) *Service {
	if ids == nil {
		ids = uuidGenerator{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{
		repo:      repo,
		ids:       ids,
		tx:        tx,
		projector: NewProjector(language.English),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateEmployeeInput は社員作成時の入力です。
type CreateEmployeeInput struct {
	Draft Draft
}

// UpdateEmployeeInput は社員更新時の入力です。Draft の値で記録全体を置き換えます。
type UpdateEmployeeInput struct {
	ID    string
	Draft Draft
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// ListEmployeesInput は一覧取得時の入力です。
type ListEmployeesInput struct {
	Criteria Criteria
	Sort     SortState
}

// ListEmployeesResult は一覧取得結果を表します。Total は絞り込み前の件数です。
type ListEmployeesResult struct {
	Employees []Employee
	Total     int
	Criteria  Criteria
	Sort      SortState
}

// CreateEmployee は新しい社員を末尾に追加します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	draft, err := ValidateDraft(in.Draft)
	if err != nil {
		return nil, err
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		id := s.ids.NewID()
		if err := s.ensureIDNotExists(txCtx, id); err != nil {
			return err
		}

		emp := draft.withID(id)
		result, err := s.repo.Create(txCtx, &emp)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Debug("employee created",
		zap.String("id", created.ID),
		zap.String("department", string(created.Department)),
	)
	return created, nil
}

// UpdateEmployee は ID が一致する社員を同じ位置のまま置き換えます。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	draft, err := ValidateDraft(in.Draft)
	if err != nil {
		return nil, err
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		emp := draft.withID(existing.ID)
		result, err := s.repo.Update(txCtx, &emp)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.Debug("employee updated", zap.String("id", updated.ID))
	return updated, nil
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は条件で絞り込み並び替えた社員一覧を返します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	criteria, err := in.Criteria.normalize()
	if err != nil {
		return nil, err
	}

	sortState, err := in.Sort.normalize()
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &ListEmployeesResult{
		Employees: s.projector.Project(snap, criteria, sortState),
		Total:     len(snap.Employees),
		Criteria:  criteria,
		Sort:      sortState,
	}, nil
}

// Summarize は全社員の集計を返します。絞り込み条件は参照しません。
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := Summarize(snap.Employees)
	return &summary, nil
}

// ListDepartments は名簿に存在する部署を初出順で返します。
func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	summary, err := s.Summarize(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Department, 0, len(summary.Departments))
	for _, dc := range summary.Departments {
		out = append(out, dc.Department)
	}
	return out, nil
}

// Seed は初期データを順に登録します。不正な下書きがあれば位置付きのエラーを返します。
func (s *Service) Seed(ctx context.Context, drafts []Draft) error {
	for i, d := range drafts {
		if _, err := s.CreateEmployee(ctx, CreateEmployeeInput{Draft: d}); err != nil {
			return fmt.Errorf("employee: seed record %d: %w", i, err)
		}
	}
	s.logger.Debug("directory seeded", zap.Int("records", len(drafts)))
	return nil
}

func (s *Service) snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Snapshot(txCtx)
		if err != nil {
			return err
		}
		snap = result
		return nil
	}); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Service) ensureIDNotExists(ctx context.Context, id string) error {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, ErrEmployeeNotFound) {
		return err
	}
	if emp != nil {
		return ErrIDAlreadyExists
	}
	return nil
}
