package donations

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

// Donation is one completed donation record
type Donation struct {
	ID          uuid.UUID `json:"id"`
	DonorName   string    `json:"donor_name"`
	AmountUSD   float64   `json:"amount_usd"`
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	DonatedAt   time.Time `json:"donated_at"`
}

// DonationPage is the paginated donation feed shape
type DonationPage struct {
	Data       []Donation `json:"data"`
	TotalPages int        `json:"total_pages"`
}

// DonationSource supplies donation records; backed by mock seed data
type DonationSource interface {
	Donations(ctx context.Context) ([]Donation, error)
}

// FetchDonations returns one page of the donation feed
func FetchDonations(ctx context.Context, source DonationSource, page, pageSize int) (*DonationPage, error) {
	all, err := source.Donations(ctx)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	totalPages := int(math.Ceil(float64(len(all)) / float64(pageSize)))
	start := (page - 1) * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}

	return &DonationPage{Data: all[start:end], TotalPages: totalPages}, nil
}
