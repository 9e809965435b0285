package employee

import "context"

// Repository は社員記録の保管先の抽象です。記録は追加順に保持されます。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Snapshot はある時点の全記録です。Version は記録が変わるたびに増えます。
type Snapshot struct {
	Employees []Employee
	Version   uint64
}
