package donationmock

import (
	"context"

	domain "donation-inventory/internal/domain/donation"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset reads return context.Canceled; unset writes are no-ops.
type Repo struct {
	ListFn             func(ctx context.Context) ([]domain.Donation, error)
	CreateFn           func(ctx context.Context, d *domain.Donation) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Donation, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Donation, error)
	UpdateFn           func(ctx context.Context, d *domain.Donation) error
	DeleteFn           func(ctx context.Context, id uint64) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Donation, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Create(ctx context.Context, d *domain.Donation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Donation, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Donation, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Update(ctx context.Context, d *domain.Donation) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, d)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
