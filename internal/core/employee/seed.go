package employee

// SampleDrafts はセッション開始時に登録する組み込みのサンプルデータです。
func SampleDrafts() []Draft {
	return []Draft{
		{Name: "John Smith", Email: "john.smith@company.com", Age: 32, Department: DepartmentEngineering, Status: StatusActive},
		{Name: "Sarah Johnson", Email: "sarah.johnson@company.com", Age: 28, Department: DepartmentMarketing, Status: StatusActive},
		{Name: "Michael Brown", Email: "michael.brown@company.com", Age: 45, Department: DepartmentSales, Status: StatusInactive},
		{Name: "Emily Davis", Email: "emily.davis@company.com", Age: 35, Department: DepartmentHR, Status: StatusActive},
		{Name: "David Wilson", Email: "david.wilson@company.com", Age: 29, Department: DepartmentEngineering, Status: StatusActive},
		{Name: "Jessica Martinez", Email: "jessica.martinez@company.com", Age: 41, Department: DepartmentFinance, Status: StatusActive},
		{Name: "Christopher Lee", Email: "christopher.lee@company.com", Age: 38, Department: DepartmentEngineering, Status: StatusInactive},
		{Name: "Amanda Taylor", Email: "amanda.taylor@company.com", Age: 26, Department: DepartmentMarketing, Status: StatusActive},
		{Name: "Daniel Anderson", Email: "daniel.anderson@company.com", Age: 52, Department: DepartmentSales, Status: StatusActive},
		{Name: "Jennifer Thomas", Email: "jennifer.thomas@company.com", Age: 33, Department: DepartmentFinance, Status: StatusInactive},
		{Name: "Robert Jackson", Email: "robert.jackson@company.com", Age: 47, Department: DepartmentHR, Status: StatusActive},
		{Name: "Lisa White", Email: "lisa.white@company.com", Age: 31, Department: DepartmentEngineering, Status: StatusActive},
	}
}
