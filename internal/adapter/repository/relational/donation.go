package relational

import (
	"context"
	"errors"

	domain "donation-inventory/internal/domain/donation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonationRepository struct{ db *gorm.DB }

func NewDonationRepository(db *gorm.DB) *DonationRepository { return &DonationRepository{db: db} }

func (r *DonationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	var out []domain.Donation
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, storeErr("list", err)
	}
	return out, nil
}

func (r *DonationRepository) Create(ctx context.Context, d *domain.Donation) error {
	return storeErr("create", r.db.WithContext(ctx).Create(d).Error)
}

func (r *DonationRepository) GetByID(ctx context.Context, id uint64) (*domain.Donation, error) {
	var out domain.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, storeErr("get", err)
	}
	return &out, nil
}

// GetByIDForUpdate takes a row lock on mysql/postgres. SQLite has no
// SELECT ... FOR UPDATE; its write transactions are already serialized.
func (r *DonationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Donation, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out domain.Donation
	if err := q.Where("id = ?", id).First(&out).Error; err != nil {
		return nil, storeErr("get for update", err)
	}
	return &out, nil
}

// Update writes every business column plus updated_at. id and created_at are never touched.
func (r *DonationRepository) Update(ctx context.Context, d *domain.Donation) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Donation{}).
		Where("id = ?", d.ID).
		Updates(map[string]any{
			"donor_name":         d.DonorName,
			"donation_type":      d.DonationType,
			"quantity_or_amount": d.QuantityOrAmount,
			"date":               d.Date,
			"updated_at":         d.UpdatedAt,
		})
	if res.Error != nil {
		return storeErr("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DonationRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Donation{}, id)
	if res.Error != nil {
		return storeErr("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// storeErr maps gorm's not-found to the domain sentinel and wraps anything else.
func storeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, domain.ErrNotFound):
		return err
	}
	var se *domain.StoreError
	if errors.As(err, &se) {
		return err
	}
	return &domain.StoreError{Op: op, Err: err}
}
