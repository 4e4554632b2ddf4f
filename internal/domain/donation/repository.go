package donation

import "context"

type Repository interface {
	// All donations, newest id first
	List(ctx context.Context) ([]Donation, error)

	Create(ctx context.Context, d *Donation) error

	// ErrNotFound when no row has this id
	GetByID(ctx context.Context, id uint64) (*Donation, error)

	// Same as GetByID, but locks the row for the rest of the transaction
	GetByIDForUpdate(ctx context.Context, id uint64) (*Donation, error)

	// Writes every business field and updated_at of d; ErrNotFound when the row is gone
	Update(ctx context.Context, d *Donation) error

	// Hard delete; ErrNotFound when no row has this id
	Delete(ctx context.Context, id uint64) error
}
