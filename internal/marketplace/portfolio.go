package marketplace

// ComputePortfolioStats aggregates holdings into portfolio totals. An empty
// or nil list yields zeroed stats with initialized maps.
func ComputePortfolioStats(holdings []Holding) PortfolioStats {
	stats := PortfolioStats{
		CountByStatus: make(map[HoldingStatus]int),
		TonsByVintage: make(map[int]float64),
	}

	for _, h := range holdings {
		stats.TotalHoldings++
		stats.TotalTons += h.Quantity
		stats.TotalValueUSD += CalculatePrice(h.Quantity, h.PricePerTon)
		stats.CountByStatus[h.Status]++
		stats.TonsByVintage[h.VintageYear] += h.Quantity
	}

	return stats
}
