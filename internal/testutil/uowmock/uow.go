package uowmock

import (
	"context"
	"errors"

	"donation-inventory/internal/domain/donation"
	"donation-inventory/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinDonationTxFn func(ctx context.Context, id uint64, fn func(r uow.Repos, d *donation.Donation) error) error
}

// Passthrough runs callbacks directly against repos, looking up the row for
// WithinDonationTx the way the real implementation does.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinDonationTxFn: func(ctx context.Context, id uint64, fn func(uow.Repos, *donation.Donation) error) error {
			d, err := repos.Donations.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, d)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinDonationTx(ctx context.Context, id uint64, fn func(r uow.Repos, d *donation.Donation) error) error {
	if m.WithinDonationTxFn != nil {
		return m.WithinDonationTxFn(ctx, id, fn)
	}
	return errUnimplemented
}
