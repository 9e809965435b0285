// Package client は gRPC 越しに社員名簿を操作する employee.UseCase の実装です。
package client

import (
	"context"
	"fmt"

	"github.com/ogurasousui/employee-directory/internal/adapters/grpc/directorypb"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Directory はリモートの EmployeeService を employee.UseCase として扱います。
type Directory struct {
	rpc *directorypb.EmployeeServiceClient
}

var _ employee.UseCase = (*Directory)(nil)

// New は接続済みのコネクションから Directory を生成します。
func New(cc grpc.ClientConnInterface) *Directory {
	return &Directory{rpc: directorypb.NewEmployeeServiceClient(cc)}
}

func (d *Directory) CreateEmployee(ctx context.Context, in employee.CreateEmployeeInput) (*employee.Employee, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		directorypb.KeyEmployee: structpb.NewStructValue(directorypb.DraftToStruct(in.Draft)),
	}}
	resp, err := d.rpc.CreateEmployee(ctx, req)
	if err != nil {
		return nil, fromStatusError(err)
	}
	return employeeFromResponse(resp), nil
}

func (d *Directory) UpdateEmployee(ctx context.Context, in employee.UpdateEmployeeInput) (*employee.Employee, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		directorypb.KeyID:       structpb.NewStringValue(in.ID),
		directorypb.KeyEmployee: structpb.NewStructValue(directorypb.DraftToStruct(in.Draft)),
	}}
	resp, err := d.rpc.UpdateEmployee(ctx, req)
	if err != nil {
		return nil, fromStatusError(err)
	}
	return employeeFromResponse(resp), nil
}

func (d *Directory) GetEmployee(ctx context.Context, in employee.GetEmployeeInput) (*employee.Employee, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		directorypb.KeyID: structpb.NewStringValue(in.ID),
	}}
	resp, err := d.rpc.GetEmployee(ctx, req)
	if err != nil {
		return nil, fromStatusError(err)
	}
	return employeeFromResponse(resp), nil
}

func (d *Directory) ListEmployees(ctx context.Context, in employee.ListEmployeesInput) (*employee.ListEmployeesResult, error) {
	resp, err := d.rpc.ListEmployees(ctx, directorypb.ListRequest(in))
	if err != nil {
		return nil, fromStatusError(err)
	}
	return directorypb.ListResultFromStruct(resp)
}

func (d *Directory) Summarize(ctx context.Context) (*employee.Summary, error) {
	resp, err := d.rpc.Summarize(ctx, &structpb.Struct{})
	if err != nil {
		return nil, fromStatusError(err)
	}
	return directorypb.SummaryFromStruct(resp), nil
}

func (d *Directory) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	resp, err := d.rpc.ListDepartments(ctx, &structpb.Struct{})
	if err != nil {
		return nil, fromStatusError(err)
	}
	return directorypb.DepartmentsFromStruct(resp), nil
}

func employeeFromResponse(resp *structpb.Struct) *employee.Employee {
	e := directorypb.EmployeeFromStruct(resp.GetFields()[directorypb.KeyEmployee].GetStructValue())
	return &e
}

var fieldCauses = map[string]error{
	employee.FieldName:       employee.ErrInvalidName,
	employee.FieldEmail:      employee.ErrInvalidEmail,
	employee.FieldAge:        employee.ErrInvalidAge,
	employee.FieldDepartment: employee.ErrInvalidDepartment,
	employee.FieldStatus:     employee.ErrInvalidStatus,
}

// fromStatusError はサーバーのステータスをドメインのエラーに戻します。
// BadRequest の詳細は ValidationError として復元します。
func fromStatusError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		for _, detail := range st.Details() {
			br, ok := detail.(*errdetails.BadRequest)
			if !ok || len(br.GetFieldViolations()) == 0 {
				continue
			}
			verr := &employee.ValidationError{}
			for _, v := range br.GetFieldViolations() {
				verr.Fields = append(verr.Fields, employee.FieldError{
					Field:   v.GetField(),
					Message: v.GetDescription(),
					Err:     fieldCauses[v.GetField()],
				})
			}
			return verr
		}
		return err
	case codes.NotFound:
		return fmt.Errorf("%s: %w", st.Message(), employee.ErrEmployeeNotFound)
	case codes.AlreadyExists:
		return fmt.Errorf("%s: %w", st.Message(), employee.ErrIDAlreadyExists)
	default:
		return err
	}
}
