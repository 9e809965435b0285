package employee

// Status は社員の在籍状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"

	// AllStatuses は状態で絞り込まないことを表すフィルタ値です。
	AllStatuses Status = "all"
)

// Label は画面表示用のラベルを返します。
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Not Active"
	case AllStatuses:
		return "All Status"
	default:
		return string(s)
	}
}

// Statuses は選択可能な状態の一覧です。
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive}
}

// Department は所属部署です。自由入力ではなく固定の列挙値を取ります。
type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"

	// AllDepartments は部署で絞り込まないことを表すフィルタ値です。
	AllDepartments Department = "all"
)

// Label は画面表示用のラベルを返します。
func (d Department) Label() string {
	if d == AllDepartments {
		return "All Departments"
	}
	return string(d)
}

// Departments は選択可能な部署を表示順で返します。
func Departments() []Department {
	return []Department{
		DepartmentEngineering,
		DepartmentMarketing,
		DepartmentSales,
		DepartmentHR,
		DepartmentFinance,
	}
}

// Employee は社員エンティティです。
type Employee struct {
	ID         string
	Name       string
	Email      string
	Age        int
	Department Department
	Status     Status
}

// Draft は ID 採番前の社員情報です。作成・更新の入力として検証されます。
type Draft struct {
	Name       string
	Email      string
	Age        int
	Department Department
	Status     Status
}

// Draft は社員の現在値を Draft として返します。
func (e Employee) Draft() Draft {
	return Draft{
		Name:       e.Name,
		Email:      e.Email,
		Age:        e.Age,
		Department: e.Department,
		Status:     e.Status,
	}
}

func (d Draft) withID(id string) Employee {
	return Employee{
		ID:         id,
		Name:       d.Name,
		Email:      d.Email,
		Age:        d.Age,
		Department: d.Department,
		Status:     d.Status,
	}
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

func isValidDepartment(dept Department) bool {
	switch dept {
	case DepartmentEngineering, DepartmentMarketing, DepartmentSales, DepartmentHR, DepartmentFinance:
		return true
	default:
		return false
	}
}
