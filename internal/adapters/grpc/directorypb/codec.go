package directorypb

import (
	"math"
	"strconv"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"google.golang.org/protobuf/types/known/structpb"
)

// Struct のキーです。
const (
	KeyID            = "id"
	KeyName          = "name"
	KeyEmail         = "email"
	KeyAge           = "age"
	KeyDepartment    = "department"
	KeyStatus        = "status"
	KeyEmployee      = "employee"
	KeyEmployees     = "employees"
	KeySearch        = "search"
	KeySortField     = "sort_field"
	KeySortDirection = "sort_direction"
	KeyTotal         = "total"
	KeyActive        = "active"
	KeyInactive      = "inactive"
	KeyDepartments   = "departments"
	KeyCount         = "count"
	KeyFill          = "fill"
)

// EmployeeToStruct は社員を Struct に変換します。
func EmployeeToStruct(e *employee.Employee) *structpb.Struct {
	if e == nil {
		return nil
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyID:         structpb.NewStringValue(e.ID),
		KeyName:       structpb.NewStringValue(e.Name),
		KeyEmail:      structpb.NewStringValue(e.Email),
		KeyAge:        structpb.NewNumberValue(float64(e.Age)),
		KeyDepartment: structpb.NewStringValue(string(e.Department)),
		KeyStatus:     structpb.NewStringValue(string(e.Status)),
	}}
}

// EmployeeFromStruct は Struct から社員を復元します。
func EmployeeFromStruct(s *structpb.Struct) employee.Employee {
	return employee.Employee{
		ID:         StringField(s, KeyID),
		Name:       StringField(s, KeyName),
		Email:      StringField(s, KeyEmail),
		Age:        int(s.GetFields()[KeyAge].GetNumberValue()),
		Department: employee.Department(StringField(s, KeyDepartment)),
		Status:     employee.Status(StringField(s, KeyStatus)),
	}
}

// DraftToStruct は下書きを Struct に変換します。
func DraftToStruct(d employee.Draft) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyName:       structpb.NewStringValue(d.Name),
		KeyEmail:      structpb.NewStringValue(d.Email),
		KeyAge:        structpb.NewNumberValue(float64(d.Age)),
		KeyDepartment: structpb.NewStringValue(string(d.Department)),
		KeyStatus:     structpb.NewStringValue(string(d.Status)),
	}}
}

// FormInputFromStruct は Struct をフォーム入力として読み取ります。
// age は数値でも文字列でも受け付けます。
func FormInputFromStruct(s *structpb.Struct) employee.FormInput {
	return employee.FormInput{
		Name:       StringField(s, KeyName),
		Email:      StringField(s, KeyEmail),
		Age:        ageText(s.GetFields()[KeyAge]),
		Department: StringField(s, KeyDepartment),
		Status:     StringField(s, KeyStatus),
	}
}

func ageText(v *structpb.Value) string {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	case *structpb.Value_StringValue:
		return kind.StringValue
	default:
		return ""
	}
}

// ListRequest は一覧取得の入力を Struct に変換します。
func ListRequest(in employee.ListEmployeesInput) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeySearch:        structpb.NewStringValue(in.Criteria.Search),
		KeyDepartment:    structpb.NewStringValue(string(in.Criteria.Department)),
		KeyStatus:        structpb.NewStringValue(string(in.Criteria.Status)),
		KeySortField:     structpb.NewStringValue(string(in.Sort.Field)),
		KeySortDirection: structpb.NewStringValue(string(in.Sort.Direction)),
	}}
}

// ListInputFromStruct は一覧取得リクエストを読み取ります。
func ListInputFromStruct(s *structpb.Struct) (employee.ListEmployeesInput, error) {
	field, err := employee.ParseSortField(StringField(s, KeySortField))
	if err != nil {
		return employee.ListEmployeesInput{}, err
	}
	dir, err := employee.ParseSortDirection(StringField(s, KeySortDirection))
	if err != nil {
		return employee.ListEmployeesInput{}, err
	}

	return employee.ListEmployeesInput{
		Criteria: employee.Criteria{
			Search:     StringField(s, KeySearch),
			Department: employee.Department(StringField(s, KeyDepartment)),
			Status:     employee.Status(StringField(s, KeyStatus)),
		},
		Sort: employee.SortState{Field: field, Direction: dir},
	}, nil
}

// ListResultToStruct は一覧取得結果を Struct に変換します。
func ListResultToStruct(r *employee.ListEmployeesResult) *structpb.Struct {
	items := make([]*structpb.Value, 0, len(r.Employees))
	for i := range r.Employees {
		items = append(items, structpb.NewStructValue(EmployeeToStruct(&r.Employees[i])))
	}

	out := ListRequest(employee.ListEmployeesInput{Criteria: r.Criteria, Sort: r.Sort})
	out.Fields[KeyEmployees] = structpb.NewListValue(&structpb.ListValue{Values: items})
	out.Fields[KeyTotal] = structpb.NewNumberValue(float64(r.Total))
	return out
}

// ListResultFromStruct は一覧取得結果を復元します。
func ListResultFromStruct(s *structpb.Struct) (*employee.ListEmployeesResult, error) {
	in, err := ListInputFromStruct(s)
	if err != nil {
		return nil, err
	}

	values := s.GetFields()[KeyEmployees].GetListValue().GetValues()
	employees := make([]employee.Employee, 0, len(values))
	for _, v := range values {
		employees = append(employees, EmployeeFromStruct(v.GetStructValue()))
	}

	return &employee.ListEmployeesResult{
		Employees: employees,
		Total:     int(s.GetFields()[KeyTotal].GetNumberValue()),
		Criteria:  in.Criteria,
		Sort:      in.Sort,
	}, nil
}

// SummaryToStruct は集計結果を Struct に変換します。
func SummaryToStruct(sum *employee.Summary) *structpb.Struct {
	depts := make([]*structpb.Value, 0, len(sum.Departments))
	for _, dc := range sum.Departments {
		depts = append(depts, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			KeyDepartment: structpb.NewStringValue(string(dc.Department)),
			KeyCount:      structpb.NewNumberValue(float64(dc.Count)),
		}}))
	}

	statusValues := make([]*structpb.Value, 0, len(sum.Status))
	for _, sl := range sum.Status {
		statusValues = append(statusValues, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			KeyStatus: structpb.NewStringValue(string(sl.Status)),
			KeyName:   structpb.NewStringValue(sl.Name),
			KeyCount:  structpb.NewNumberValue(float64(sl.Count)),
			KeyFill:   structpb.NewStringValue(sl.Fill),
		}}))
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyTotal:       structpb.NewNumberValue(float64(sum.Total)),
		KeyActive:      structpb.NewNumberValue(float64(sum.Active)),
		KeyInactive:    structpb.NewNumberValue(float64(sum.Inactive)),
		KeyDepartments: structpb.NewListValue(&structpb.ListValue{Values: depts}),
		KeyStatus:      structpb.NewListValue(&structpb.ListValue{Values: statusValues}),
	}}
}

// SummaryFromStruct は集計結果を復元します。
func SummaryFromStruct(s *structpb.Struct) *employee.Summary {
	fields := s.GetFields()
	sum := &employee.Summary{
		Total:    int(fields[KeyTotal].GetNumberValue()),
		Active:   int(fields[KeyActive].GetNumberValue()),
		Inactive: int(fields[KeyInactive].GetNumberValue()),
	}

	for _, v := range fields[KeyDepartments].GetListValue().GetValues() {
		item := v.GetStructValue()
		sum.Departments = append(sum.Departments, employee.DepartmentCount{
			Department: employee.Department(StringField(item, KeyDepartment)),
			Count:      int(item.GetFields()[KeyCount].GetNumberValue()),
		})
	}

	for _, v := range fields[KeyStatus].GetListValue().GetValues() {
		item := v.GetStructValue()
		sum.Status = append(sum.Status, employee.StatusSlice{
			Status: employee.Status(StringField(item, KeyStatus)),
			Name:   StringField(item, KeyName),
			Count:  int(item.GetFields()[KeyCount].GetNumberValue()),
			Fill:   StringField(item, KeyFill),
		})
	}

	return sum
}

// DepartmentsToStruct は部署一覧を Struct に変換します。
func DepartmentsToStruct(depts []employee.Department) *structpb.Struct {
	values := make([]*structpb.Value, 0, len(depts))
	for _, d := range depts {
		values = append(values, structpb.NewStringValue(string(d)))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		KeyDepartments: structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}
}

// DepartmentsFromStruct は部署一覧を復元します。
func DepartmentsFromStruct(s *structpb.Struct) []employee.Department {
	values := s.GetFields()[KeyDepartments].GetListValue().GetValues()
	out := make([]employee.Department, 0, len(values))
	for _, v := range values {
		out = append(out, employee.Department(v.GetStringValue()))
	}
	return out
}

// StringField は文字列フィールドを返します。存在しないか型が違えば空文字です。
func StringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}
