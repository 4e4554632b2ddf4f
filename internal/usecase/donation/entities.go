package donation

import (
	domain "donation-inventory/internal/domain/donation"
)

// DonationDTO is the wire shape of a record. Timestamps stay internal.
type DonationDTO struct {
	ID               uint64 `json:"id"`
	DonorName        string `json:"donor_name"`
	DonationType     string `json:"donation_type"`
	QuantityOrAmount int64  `json:"quantity_or_amount"`
	Date             string `json:"date"`
}

func toDTO(d *domain.Donation) *DonationDTO {
	return &DonationDTO{
		ID:               d.ID,
		DonorName:        d.DonorName,
		DonationType:     string(d.DonationType),
		QuantityOrAmount: d.QuantityOrAmount,
		Date:             domain.FormatDate(d.Date),
	}
}
