package marketplace

import (
	"context"
	"math"
	"sort"
)

// ListingSource supplies marketplace listings; backed by mock seed data in
// this deployment
type ListingSource interface {
	Listings(ctx context.Context) ([]Listing, error)
}

// ListingQuery selects and pages the marketplace browse view
type ListingQuery struct {
	ProjectType string `json:"project_type" form:"project_type"`
	Country     string `json:"country" form:"country"`
	Page        int    `json:"page" form:"page"`
	PageSize    int    `json:"page_size" form:"page_size"`
}

// Service provides marketplace browse operations
type Service struct {
	source ListingSource
}

// NewService creates the marketplace service
func NewService(source ListingSource) *Service {
	return &Service{source: source}
}

// BrowseListings returns one page of listings plus the distinct project types
// for the filter dropdown
func (s *Service) BrowseListings(ctx context.Context, q ListingQuery) (*ListingPage, error) {
	all, err := s.source.Listings(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Listing, 0, len(all))
	typeSet := make(map[string]struct{})
	for _, l := range all {
		typeSet[l.ProjectType] = struct{}{}
		if q.ProjectType != "" && q.ProjectType != "all" && l.ProjectType != q.ProjectType {
			continue
		}
		if q.Country != "" && q.Country != "all" && l.Country != q.Country {
			continue
		}
		filtered = append(filtered, l)
	}

	projectTypes := make([]string, 0, len(typeSet))
	for t := range typeSet {
		projectTypes = append(projectTypes, t)
	}
	sort.Strings(projectTypes)

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 12
	}

	totalPages := int(math.Ceil(float64(len(filtered)) / float64(pageSize)))
	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return &ListingPage{
		Listings: filtered[start:end],
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: len(filtered),
		},
		ProjectTypes: projectTypes,
	}, nil
}
