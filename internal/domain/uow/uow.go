package uow

import (
	"context"

	"donation-inventory/internal/domain/donation"
)

type Repos struct {
	Donations donation.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the donation row first, then pass it in
	WithinDonationTx(ctx context.Context, id uint64, fn func(r Repos, d *donation.Donation) error) error
}
