package donations

// Per-dollar impact constants used for the donation projection display
const (
	TreesPerDollar     = 0.5
	HectaresPerDollar  = 0.002
	TonnesCO2PerDollar = 0.04
)

// MaxImpactAmountUSD caps the amount fed into the projection so display
// values stay bounded
const MaxImpactAmountUSD = 1_000_000

// MinDonationUSD is the smallest donation the flow accepts
const MinDonationUSD = 5

// Impact is the projected effect of a donation amount
type Impact struct {
	AmountUSD float64 `json:"amount_usd"`
	Trees     float64 `json:"trees"`
	Hectares  float64 `json:"hectares"`
	TonnesCO2 float64 `json:"tonnes_co2"`
}

// CalculateImpact scales a donation amount by the per-dollar constants.
// Negative amounts are treated as zero and anything above the cap is clamped
// before scaling.
func CalculateImpact(amountUSD float64) Impact {
	safe := amountUSD
	if safe < 0 {
		safe = 0
	}
	if safe > MaxImpactAmountUSD {
		safe = MaxImpactAmountUSD
	}

	return Impact{
		AmountUSD: safe,
		Trees:     safe * TreesPerDollar,
		Hectares:  safe * HectaresPerDollar,
		TonnesCO2: safe * TonnesCO2PerDollar,
	}
}

// CanContinue reports whether the donation flow's continue action is enabled
func CanContinue(amountUSD float64) bool {
	return amountUSD >= MinDonationUSD
}
