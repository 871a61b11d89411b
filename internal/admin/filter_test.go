package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testProjects() []ProjectDetail {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []ProjectDetail{
		{ID: "PRJ-001", Name: "Sahel Agroforestry", ProjectType: "Agroforestry", Location: "Kaffrine", Country: "Senegal", Status: StatusApproved, RiskRating: RiskLow, PricePerTonUSD: 12.5, CreatedAt: base},
		{ID: "PRJ-002", Name: "Mekong Rice Methane", ProjectType: "Rice", Location: "Can Tho", Country: "Vietnam", Status: StatusUnderReview, RiskRating: RiskMedium, PricePerTonUSD: 9.0, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "PRJ-003", Name: "Cerrado Soil Carbon", ProjectType: "Soil", Location: "Goias", Country: "Brazil", Status: StatusApproved, RiskRating: RiskHigh, PricePerTonUSD: 12.5, CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "PRJ-004", Name: "Andes Reforestation", ProjectType: "Forestry", Location: "Cusco", Country: "Peru", Status: StatusPaused, RiskRating: RiskLow, PricePerTonUSD: 15.0, CreatedAt: base.AddDate(0, 0, 3)},
	}
}

func TestFilterProjectsSearch(t *testing.T) {
	filter := DefaultTableFilterState()
	filter.Search = "  saHEL "

	result := FilterProjects(testProjects(), filter)

	assert.Len(t, result, 1)
	assert.Equal(t, "PRJ-001", result[0].ID)
}

func TestFilterProjectsSearchAcrossFields(t *testing.T) {
	filter := DefaultTableFilterState()
	filter.Search = "prj-003"

	result := FilterProjects(testProjects(), filter)

	assert.Len(t, result, 1)
	assert.Equal(t, "Cerrado Soil Carbon", result[0].Name)
}

func TestFilterProjectsEnumSentinel(t *testing.T) {
	filter := DefaultTableFilterState()
	filter.Status = FilterAll

	result := FilterProjects(testProjects(), filter)

	assert.Len(t, result, 4)
}

func TestFilterProjectsStatusFilter(t *testing.T) {
	filter := DefaultTableFilterState()
	filter.Status = string(StatusApproved)
	filter.SortBy = "created_at"

	result := FilterProjects(testProjects(), filter)

	assert.Len(t, result, 2)
	assert.Equal(t, "PRJ-001", result[0].ID)
	assert.Equal(t, "PRJ-003", result[1].ID)
}

func TestFilterProjectsDoesNotMutateInput(t *testing.T) {
	input := testProjects()
	filter := DefaultTableFilterState()
	filter.SortBy = "price_per_ton"
	filter.SortOrder = SortDesc

	FilterProjects(input, filter)

	assert.Equal(t, "PRJ-001", input[0].ID)
	assert.Equal(t, "PRJ-002", input[1].ID)
	assert.Equal(t, "PRJ-003", input[2].ID)
	assert.Equal(t, "PRJ-004", input[3].ID)
}

// Records with equal sort keys must keep their input order. PRJ-001 and
// PRJ-003 share the same price, so sorting by price must leave PRJ-001 first.
func TestFilterProjectsSortStability(t *testing.T) {
	filter := DefaultTableFilterState()
	filter.SortBy = "price_per_ton"
	filter.SortOrder = SortAsc

	result := FilterProjects(testProjects(), filter)

	assert.Equal(t, []string{"PRJ-002", "PRJ-001", "PRJ-003", "PRJ-004"},
		[]string{result[0].ID, result[1].ID, result[2].ID, result[3].ID})
}

func TestFilterProjectsSortDesc(t *testing.T) {
	filter := DefaultTableFilterState()
	filter.SortBy = "price_per_ton"
	filter.SortOrder = SortDesc

	result := FilterProjects(testProjects(), filter)

	assert.Equal(t, "PRJ-004", result[0].ID)
	// Descending also keeps equal keys in input order
	assert.Equal(t, "PRJ-001", result[1].ID)
	assert.Equal(t, "PRJ-003", result[2].ID)
}

func TestFilterProjectsDateSort(t *testing.T) {
	filter := DefaultTableFilterState()
	filter.SortBy = "created_at"
	filter.SortOrder = SortDesc

	result := FilterProjects(testProjects(), filter)

	assert.Equal(t, "PRJ-004", result[0].ID)
	assert.Equal(t, "PRJ-001", result[3].ID)
}

func TestFilterProjectsUnknownSortKeyKeepsOrder(t *testing.T) {
	filter := DefaultTableFilterState()
	filter.SortBy = "nonsense"

	result := FilterProjects(testProjects(), filter)

	assert.Equal(t, "PRJ-001", result[0].ID)
	assert.Equal(t, "PRJ-004", result[3].ID)
}
