package donation

import (
	"time"
)

type Type string

const (
	TypeMoney    Type = "money"
	TypeFood     Type = "food"
	TypeClothing Type = "clothing"
	TypeOther    Type = "other"
)

// Types lists the accepted donation types in sorted order.
var Types = []Type{TypeClothing, TypeFood, TypeMoney, TypeOther}

// Table: donations
type Donation struct {
	// Assigned by the store, never reused after deletion
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	DonorName        string    `gorm:"column:donor_name;not null"`
	DonationType     Type      `gorm:"column:donation_type;size:16;not null;check:chk_donations_type,donation_type IN ('money','food','clothing','other')"`
	QuantityOrAmount int64     `gorm:"column:quantity_or_amount;not null;check:chk_donations_quantity,quantity_or_amount >= 1"`
	Date             time.Time `gorm:"column:date;type:date;not null"`
	// Timestamps come from the usecase clock, not gorm auto-time
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (Donation) TableName() string { return "donations" }

// Apply copies the fields present in f onto d. Absent fields are left untouched.
func (d *Donation) Apply(f Fields) {
	if f.DonorName != nil {
		d.DonorName = *f.DonorName
	}
	if f.DonationType != nil {
		d.DonationType = *f.DonationType
	}
	if f.QuantityOrAmount != nil {
		d.QuantityOrAmount = *f.QuantityOrAmount
	}
	if f.Date != nil {
		d.Date = *f.Date
	}
}
