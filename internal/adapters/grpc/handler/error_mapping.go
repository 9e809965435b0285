package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	// 既に gRPC ステータスを持つエラーはそのまま返します。
	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *employee.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationStatusError(verr)
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidDepartment),
		errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, employee.ErrInvalidSortField),
		errors.Is(err, employee.ErrInvalidSortDirection):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrIDAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// validationStatusError はフィールドごとの検証エラーを BadRequest の詳細として載せます。
func validationStatusError(verr *employee.ValidationError) error {
	st := status.New(codes.InvalidArgument, verr.Error())

	violations := make([]*errdetails.BadRequest_FieldViolation, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		violations = append(violations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Message,
		})
	}

	detailed, err := st.WithDetails(&errdetails.BadRequest{FieldViolations: violations})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
