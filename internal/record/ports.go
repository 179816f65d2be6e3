package record

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=record

// Repository defines the contract for record storage.
type Repository interface {
	Insert(ctx context.Context, rec NewRecord) (int64, error)
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	Delete(ctx context.Context, id int64) error
}
