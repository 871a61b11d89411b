package admin

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var projectCollator = collate.New(language.English, collate.IgnoreCase)

// FilterProjects applies search, enum filters and a stable sort to the given
// records. The input slice is never mutated; a new slice is returned.
func FilterProjects(records []ProjectDetail, filter TableFilterState) []ProjectDetail {
	out := make([]ProjectDetail, 0, len(records))

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, p := range records {
		if search != "" && !projectMatchesSearch(p, search) {
			continue
		}
		if filter.Status != "" && filter.Status != FilterAll && string(p.Status) != filter.Status {
			continue
		}
		if filter.RiskRating != "" && filter.RiskRating != FilterAll && string(p.RiskRating) != filter.RiskRating {
			continue
		}
		if filter.ProjectType != "" && filter.ProjectType != FilterAll && p.ProjectType != filter.ProjectType {
			continue
		}
		out = append(out, p)
	}

	sortProjects(out, filter.SortBy, filter.SortOrder)
	return out
}

// projectMatchesSearch checks name, id, location and country for a
// case-insensitive substring match
func projectMatchesSearch(p ProjectDetail, search string) bool {
	for _, field := range []string{p.Name, p.ID, p.Location, p.Country} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func sortProjects(projects []ProjectDetail, sortBy string, order SortOrder) {
	if sortBy == "" {
		return
	}

	cmp := projectComparator(sortBy)
	if cmp == nil {
		return
	}

	sort.SliceStable(projects, func(i, j int) bool {
		c := cmp(projects[i], projects[j])
		if order == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

// projectComparator returns a three-way comparator for the given sort key.
// String fields compare locale-aware, numeric fields by subtraction, date
// fields by epoch milliseconds.
func projectComparator(sortBy string) func(a, b ProjectDetail) int {
	switch sortBy {
	case "name":
		return func(a, b ProjectDetail) int { return projectCollator.CompareString(a.Name, b.Name) }
	case "location":
		return func(a, b ProjectDetail) int { return projectCollator.CompareString(a.Location, b.Location) }
	case "country":
		return func(a, b ProjectDetail) int { return projectCollator.CompareString(a.Country, b.Country) }
	case "status":
		return func(a, b ProjectDetail) int {
			return projectCollator.CompareString(string(a.Status), string(b.Status))
		}
	case "price_per_ton":
		return func(a, b ProjectDetail) int { return compareFloats(a.PricePerTonUSD, b.PricePerTonUSD) }
	case "available_supply":
		return func(a, b ProjectDetail) int { return compareFloats(a.AvailableSupplyTons, b.AvailableSupplyTons) }
	case "total_issued":
		return func(a, b ProjectDetail) int { return compareFloats(a.TotalIssuedTons, b.TotalIssuedTons) }
	case "created_at":
		return func(a, b ProjectDetail) int {
			return compareInt64(a.CreatedAt.UnixMilli(), b.CreatedAt.UnixMilli())
		}
	case "updated_at":
		return func(a, b ProjectDetail) int {
			return compareInt64(a.UpdatedAt.UnixMilli(), b.UpdatedAt.UnixMilli())
		}
	default:
		return nil
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
