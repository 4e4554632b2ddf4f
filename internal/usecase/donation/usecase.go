package donation

import (
	"context"
	"time"

	domain "donation-inventory/internal/domain/donation"
	"donation-inventory/internal/domain/uow"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

type Option func(*Usecase)

// WithClock overrides the time source used for created_at / updated_at.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

// NewUsecase: reads go through repo, every mutation runs inside tx.
func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		repo: repo,
		uow:  tx,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) List(ctx context.Context) ([]DonationDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DonationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*DonationDTO, error) {
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

// Create validates payload in full mode and persists a new record.
// Invalid payloads never reach the store.
func (u *Usecase) Create(ctx context.Context, payload map[string]any) (*DonationDTO, error) {
	f, err := domain.Validate(payload, domain.Full)
	if err != nil {
		return nil, err
	}

	now := u.now()
	d := &domain.Donation{CreatedAt: now, UpdatedAt: now}
	d.Apply(f)

	if err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Donations.Create(ctx, d)
	}); err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

// Update validates payload in partial mode and applies only the supplied
// fields. updated_at moves forward even when nothing else changes.
func (u *Usecase) Update(ctx context.Context, id uint64, payload map[string]any) (*DonationDTO, error) {
	f, err := domain.Validate(payload, domain.Partial)
	if err != nil {
		return nil, err
	}

	var dto *DonationDTO
	err = u.uow.WithinDonationTx(ctx, id, func(r uow.Repos, d *domain.Donation) error {
		d.Apply(f)
		d.UpdatedAt = u.now()
		// updated_at never precedes created_at, even if the clock stepped back
		if d.UpdatedAt.Before(d.CreatedAt) {
			d.UpdatedAt = d.CreatedAt
		}
		if err := r.Donations.Update(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Donations.Delete(ctx, id)
	})
}
