package donations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateImpactScaling(t *testing.T) {
	impact := CalculateImpact(100)

	assert.InDelta(t, 100, impact.AmountUSD, 1e-9)
	assert.InDelta(t, 50, impact.Trees, 1e-9)
	assert.InDelta(t, 0.2, impact.Hectares, 1e-9)
	assert.InDelta(t, 4, impact.TonnesCO2, 1e-9)
}

// Amounts above the cap are clamped before scaling: 10,000,000 behaves as
// 1,000,000
func TestCalculateImpactClampsLargeAmounts(t *testing.T) {
	impact := CalculateImpact(10_000_000)

	assert.InDelta(t, float64(MaxImpactAmountUSD), impact.AmountUSD, 1e-9)
	assert.InDelta(t, MaxImpactAmountUSD*TreesPerDollar, impact.Trees, 1e-9)
}

func TestCalculateImpactNegativeCoercedToZero(t *testing.T) {
	impact := CalculateImpact(-50)

	assert.Zero(t, impact.AmountUSD)
	assert.Zero(t, impact.Trees)
	assert.Zero(t, impact.TonnesCO2)
}

func TestCanContinueThreshold(t *testing.T) {
	assert.False(t, CanContinue(0))
	assert.False(t, CanContinue(MinDonationUSD-0.01))
	assert.True(t, CanContinue(MinDonationUSD))
	assert.True(t, CanContinue(250))
}

type staticSource struct{ donations []Donation }

func (s staticSource) Donations(ctx context.Context) ([]Donation, error) {
	return s.donations, nil
}

func TestFetchDonationsPaging(t *testing.T) {
	donations := make([]Donation, 25)
	source := staticSource{donations: donations}

	page, err := FetchDonations(context.Background(), source, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, 3, page.TotalPages)

	page, err = FetchDonations(context.Background(), source, 3, 10)
	assert.NoError(t, err)
	assert.Len(t, page.Data, 5)

	// Past the last page is empty, not an error
	page, err = FetchDonations(context.Background(), source, 9, 10)
	assert.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestFetchDonationsEmptyFeed(t *testing.T) {
	page, err := FetchDonations(context.Background(), staticSource{}, 1, 10)

	assert.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Zero(t, page.TotalPages)
}
