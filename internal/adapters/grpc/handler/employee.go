package handler

import (
	"context"
	"strings"

	"github.com/ogurasousui/employee-directory/internal/adapters/grpc/directorypb"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
}

var _ directorypb.EmployeeServiceServer = (*EmployeeGrpcHandler)(nil)

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// ListEmployees は絞り込み・並び替え済みの社員一覧を返します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in, err := directorypb.ListInputFromStruct(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	result, err := h.svc.ListEmployees(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return directorypb.ListResultToStruct(result), nil
}

// GetEmployee は社員を取得します。
func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployee(ctx, employee.GetEmployeeInput{ID: directorypb.StringField(req, directorypb.KeyID)})
	if err != nil {
		return nil, toStatusError(err)
	}

	return employeeResponse(found), nil
}

// CreateEmployee は社員を作成します。
func (h *EmployeeGrpcHandler) CreateEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	draft, err := draftFromRequest(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	created, err := h.svc.CreateEmployee(ctx, employee.CreateEmployeeInput{Draft: draft})
	if err != nil {
		return nil, toStatusError(err)
	}

	return employeeResponse(created), nil
}

// UpdateEmployee は社員情報を置き換えます。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	id := directorypb.StringField(req, directorypb.KeyID)
	if strings.TrimSpace(id) == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	draft, err := draftFromRequest(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	updated, err := h.svc.UpdateEmployee(ctx, employee.UpdateEmployeeInput{ID: id, Draft: draft})
	if err != nil {
		return nil, toStatusError(err)
	}

	return employeeResponse(updated), nil
}

// Summarize は全社員の集計を返します。
func (h *EmployeeGrpcHandler) Summarize(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	summary, err := h.svc.Summarize(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return directorypb.SummaryToStruct(summary), nil
}

// ListDepartments は名簿に存在する部署を返します。
func (h *EmployeeGrpcHandler) ListDepartments(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	depts, err := h.svc.ListDepartments(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return directorypb.DepartmentsToStruct(depts), nil
}

func draftFromRequest(req *structpb.Struct) (employee.Draft, error) {
	payload := req.GetFields()[directorypb.KeyEmployee].GetStructValue()
	if payload == nil {
		return employee.Draft{}, status.Error(codes.InvalidArgument, "employee is required")
	}
	return directorypb.FormInputFromStruct(payload).Draft()
}

func employeeResponse(e *employee.Employee) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		directorypb.KeyEmployee: structpb.NewStructValue(directorypb.EmployeeToStruct(e)),
	}}
}
