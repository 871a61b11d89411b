package marketplace

import "time"

// Listing is one marketplace credit listing
type Listing struct {
	ID                  string    `json:"id"`
	ProjectID           string    `json:"project_id"`
	Name                string    `json:"name"`
	ProjectType         string    `json:"project_type"`
	Country             string    `json:"country"`
	VintageYear         int       `json:"vintage_year"`
	PricePerTonUSD      float64   `json:"price_per_ton_usd"`
	AvailableSupplyTons float64   `json:"available_supply_tons"`
	MaxSupplyTons       float64   `json:"max_supply_tons"`
	ListedAt            time.Time `json:"listed_at"`
}

// Pagination is the page envelope marketplace responses carry
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// ListingPage is the marketplace browse response shape
type ListingPage struct {
	Listings     []Listing  `json:"listings"`
	Pagination   Pagination `json:"pagination"`
	ProjectTypes []string   `json:"project_types"`
}

// HoldingStatus is the state of one credit holding
type HoldingStatus string

const (
	HoldingActive  HoldingStatus = "active"
	HoldingListed  HoldingStatus = "listed"
	HoldingRetired HoldingStatus = "retired"
	HoldingPending HoldingStatus = "pending"
)

// Holding is one credit position in a portfolio
type Holding struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id"`
	ProjectName string        `json:"project_name"`
	Quantity    float64       `json:"quantity"`
	PricePerTon float64       `json:"price_per_ton"`
	VintageYear int           `json:"vintage_year"`
	Status      HoldingStatus `json:"status"`
	AcquiredAt  time.Time     `json:"acquired_at"`
}

// PortfolioStats aggregates a holder's credit positions
type PortfolioStats struct {
	TotalHoldings int                   `json:"total_holdings"`
	TotalTons     float64               `json:"total_tons"`
	TotalValueUSD float64               `json:"total_value_usd"`
	CountByStatus map[HoldingStatus]int `json:"count_by_status"`
	TonsByVintage map[int]float64       `json:"tons_by_vintage"`
}
