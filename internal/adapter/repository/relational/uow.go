package relational

import (
	"context"

	"donation-inventory/internal/domain/donation"
	"donation-inventory/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.transaction(ctx, func(tx *gorm.DB) error {
		return fn(uow.Repos{Donations: &DonationRepository{db: tx}})
	})
}

func (u *GormUoW) WithinDonationTx(ctx context.Context, id uint64, fn func(r uow.Repos, d *donation.Donation) error) error {
	return u.transaction(ctx, func(tx *gorm.DB) error {
		r := uow.Repos{Donations: &DonationRepository{db: tx}}
		// lock the donation row up-front so read-modify-write is one unit
		d, err := r.Donations.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		return fn(r, d)
	})
}

// transaction keeps domain errors returned by fn intact and wraps begin/commit failures.
func (u *GormUoW) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var fnErr error
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(tx)
		return fnErr
	})
	if err != nil && fnErr == nil {
		return storeErr("commit", err)
	}
	return err
}
