// Package mockdata provides the read-only seed records the portal serves in
// mock mode. Every function builds fresh values on each call, so callers may
// treat the returned slices as their own copies.
package mockdata

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"terra-carbon/market-portal/market-portal-backend/internal/admin"
	"terra-carbon/market-portal/market-portal-backend/internal/donations"
	"terra-carbon/market-portal/market-portal-backend/internal/marketplace"
	"terra-carbon/market-portal/market-portal-backend/internal/users"
	"terra-carbon/market-portal/market-portal-backend/internal/verification"
	"terra-carbon/market-portal/market-portal-backend/internal/webhooks"
)

// MockVerificationQueue returns the seed review queue. It deliberately mixes
// flagged and unflagged projects with out-of-order submission dates.
func MockVerificationQueue() []verification.QueueProject {
	reviewer := "reviewer-1"
	return []verification.QueueProject{
		{
			ID:          "VQ-001",
			Name:        "Mangrove Restoration, Senegal",
			ProjectType: "Blue Carbon",
			Status:      verification.QueuePending,
			Flagged:     true,
			SubmittedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			Documents: []verification.QueueDocument{
				{ProjectID: "VQ-001", FileName: "baseline-survey.pdf", SizeMB: 4.2},
				{ProjectID: "VQ-001", FileName: "drone-imagery.zip", SizeMB: 18.7},
			},
		},
		{
			ID:          "VQ-002",
			Name:        "Community Cookstoves, Kenya",
			ProjectType: "Energy Efficiency",
			Status:      verification.QueuePending,
			SubmittedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			MissingFields: datatypes.NewJSONSlice([]string{
				"baseline_methodology", "community_consent_form",
			}),
		},
		{
			ID:          "VQ-003",
			Name:        "Agroforestry Expansion, Ghana",
			ProjectType: "Afforestation",
			Status:      verification.QueueResubmitted,
			SubmittedAt: time.Date(2024, 2, 3, 15, 30, 0, 0, time.UTC),
			DecisionHistory: []verification.DecisionRecord{
				{
					ProjectID: "VQ-003",
					Decision:  verification.DecisionReject,
					Reason:    "Monitoring plan missing sampling density",
					DecidedBy: reviewer,
					DecidedAt: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			ID:          "VQ-004",
			Name:        "Peatland Rewetting, Indonesia",
			ProjectType: "Wetland Restoration",
			Status:      verification.QueueApproved,
			SubmittedAt: time.Date(2023, 11, 12, 8, 0, 0, 0, time.UTC),
			DecisionHistory: []verification.DecisionRecord{
				{
					ProjectID: "VQ-004",
					Decision:  verification.DecisionApprove,
					Reason:    "All documentation complete and verified",
					DecidedBy: reviewer,
					DecidedAt: time.Date(2023, 12, 1, 14, 0, 0, 0, time.UTC),
				},
			},
		},
	}
}

// MockAdminProjects returns the seed admin project table
func MockAdminProjects() []admin.ProjectDetail {
	return []admin.ProjectDetail{
		{
			ID:                  "PRJ-001",
			Slug:                "mangrove-restoration-senegal",
			Name:                "Mangrove Restoration, Senegal",
			ProjectType:         "Blue Carbon",
			Location:            "Sine-Saloum Delta",
			Country:             "Senegal",
			Status:              admin.StatusApproved,
			RiskRating:          admin.RiskLow,
			PricePerTonUSD:      15.999,
			AvailableSupplyTons: 42000,
			TotalIssuedTons:     60000,
			BufferPoolPercent:   12,
			VerificationEnabled: true,
			CreatedAt:           time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			IssuanceHistory: []admin.CreditIssuance{
				{ProjectID: "PRJ-001", VintageYear: 2023, Tons: 60000,
					IssuedAt:    time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC),
					SerialRange: "SN-TC-2023-000001-060000"},
			},
		},
		{
			ID:                  "PRJ-002",
			Slug:                "community-cookstoves-kenya",
			Name:                "Community Cookstoves, Kenya",
			ProjectType:         "Energy Efficiency",
			Location:            "Nakuru County",
			Country:             "Kenya",
			Status:              admin.StatusUnderReview,
			RiskRating:          admin.RiskMedium,
			PricePerTonUSD:      9.25,
			AvailableSupplyTons: 15000,
			TotalIssuedTons:     15000,
			BufferPoolPercent:   8,
			CreatedAt:           time.Date(2023, 10, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                  "PRJ-003",
			Slug:                "agroforestry-expansion-ghana",
			Name:                "Agroforestry Expansion, Ghana",
			ProjectType:         "Afforestation",
			Location:            "Ashanti Region",
			Country:             "Ghana",
			Status:              admin.StatusPaused,
			RiskRating:          admin.RiskHigh,
			PricePerTonUSD:      15.999,
			AvailableSupplyTons: 0,
			TotalIssuedTons:     22000,
			BufferPoolPercent:   20,
			VerificationEnabled: true,
			CreatedAt:           time.Date(2023, 2, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "PRJ-004",
			Slug:           "peatland-rewetting-indonesia",
			Name:           "Peatland Rewetting, Indonesia",
			ProjectType:    "Wetland Restoration",
			Location:       "Central Kalimantan",
			Country:        "Indonesia",
			Status:         admin.StatusDraft,
			RiskRating:     admin.RiskMedium,
			PricePerTonUSD: 21.4,
			CreatedAt:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

// MockAdminUsers returns the seed user table
func MockAdminUsers() []users.AdminUser {
	return []users.AdminUser{
		{
			ID:            uuid.MustParse("0b54a9ce-23b1-4f3e-9b6e-111111111111"),
			Email:         "amina.diallo@example.com",
			WalletAddress: "0xA1b2C3d4E5f60718293a4B5c6D7e8F9012345678",
			DisplayName:   "Amina Diallo",
			Status:        users.UserActive,
			CreatedAt:     time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            uuid.MustParse("0b54a9ce-23b1-4f3e-9b6e-222222222222"),
			Email:         "j.okafor@example.com",
			WalletAddress: "0xB2c3D4e5F60718293A4b5C6d7E8f901234567890",
			DisplayName:   "Jide Okafor",
			Status:        users.UserSuspended,
			CreatedAt:     time.Date(2023, 8, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("0b54a9ce-23b1-4f3e-9b6e-333333333333"),
			Email:       "m.santos@example.com",
			DisplayName: "Maria Santos",
			Status:      users.UserDeleted,
			CreatedAt:   time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// MockListings returns the seed marketplace listings
func MockListings() []marketplace.Listing {
	return []marketplace.Listing{
		{
			ID:                  "LST-001",
			ProjectID:           "PRJ-001",
			Name:                "Mangrove Restoration, Senegal",
			ProjectType:         "Blue Carbon",
			Country:             "Senegal",
			VintageYear:         2023,
			PricePerTonUSD:      15.999,
			AvailableSupplyTons: 42000,
			MaxSupplyTons:       60000,
			ListedAt:            time.Date(2023, 9, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                  "LST-002",
			ProjectID:           "PRJ-002",
			Name:                "Community Cookstoves, Kenya",
			ProjectType:         "Energy Efficiency",
			Country:             "Kenya",
			VintageYear:         2022,
			PricePerTonUSD:      9.25,
			AvailableSupplyTons: 15000,
			MaxSupplyTons:       15000,
			ListedAt:            time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "LST-003",
			ProjectID:      "PRJ-003",
			Name:           "Agroforestry Expansion, Ghana",
			ProjectType:    "Afforestation",
			Country:        "Ghana",
			VintageYear:    2021,
			PricePerTonUSD: 15.999,
			MaxSupplyTons:  22000,
			ListedAt:       time.Date(2023, 4, 14, 0, 0, 0, 0, time.UTC),
		},
	}
}

// MockDonations returns the seed donation feed
func MockDonations() []donations.Donation {
	return []donations.Donation{
		{
			ID:          uuid.MustParse("9f1b24de-5a99-4f53-b43d-7a1c3a2f98a1"),
			DonorName:   "Amina Diallo",
			AmountUSD:   125.5,
			ProjectID:   "PRJ-001",
			ProjectName: "Mangrove Restoration, Senegal",
			DonatedAt:   time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("9f1b24de-5a99-4f53-b43d-7a1c3a2f98a2"),
			DonorName:   "Anonymous",
			AmountUSD:   5000,
			ProjectID:   "PRJ-002",
			ProjectName: "Community Cookstoves, Kenya",
			DonatedAt:   time.Date(2024, 3, 12, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("9f1b24de-5a99-4f53-b43d-7a1c3a2f98a3"),
			DonorName:   "Jide Okafor",
			AmountUSD:   42,
			ProjectID:   "PRJ-001",
			ProjectName: "Mangrove Restoration, Senegal",
			DonatedAt:   time.Date(2024, 2, 28, 9, 30, 0, 0, time.UTC),
		},
	}
}

// MockWebhookEvents returns the seed webhook event table
func MockWebhookEvents() []webhooks.Event {
	next := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return []webhooks.Event{
		{
			ID:         uuid.MustParse("6c1f0a00-0000-4000-8000-000000000001"),
			Endpoint:   "https://partner.example.com/hooks/credits",
			EventType:  "credit.retired",
			Status:     webhooks.EventSuccess,
			RetryPhase: webhooks.PhaseIdle,
			MaxRetries: 5,
			Payload:    datatypes.JSON(`{"tx_hash":"0xdeadbeef","quantity_t":12.5}`),
			CreatedAt:  time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 3, 10, 8, 0, 1, 0, time.UTC),
		},
		{
			ID:         uuid.MustParse("6c1f0a00-0000-4000-8000-000000000002"),
			Endpoint:   "https://registry.example.org/events",
			EventType:  "project.approved",
			Status:     webhooks.EventFailed,
			RetryPhase: webhooks.PhaseIdle,
			RetryCount: 2,
			MaxRetries: 5,
			Payload:    datatypes.JSON(`{"project_id":"PRJ-002"}`),
			CreatedAt:  time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 3, 11, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("6c1f0a00-0000-4000-8000-000000000003"),
			Endpoint:    "https://registry.example.org/events",
			EventType:   "order.settled",
			Status:      webhooks.EventRetrying,
			RetryPhase:  webhooks.PhaseRequested,
			RetryCount:  1,
			MaxRetries:  5,
			NextRetryAt: &next,
			Payload:     datatypes.JSON(`{"order_id":"ORD-7781"}`),
			CreatedAt:   time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 3, 12, 10, 5, 0, 0, time.UTC),
		},
	}
}

type seedListingSource struct{}

// NewListingSource serves the seed marketplace listings
func NewListingSource() marketplace.ListingSource {
	return seedListingSource{}
}

func (seedListingSource) Listings(_ context.Context) ([]marketplace.Listing, error) {
	return MockListings(), nil
}

type seedDonationSource struct{}

// NewDonationSource serves the seed donation feed
func NewDonationSource() donations.DonationSource {
	return seedDonationSource{}
}

func (seedDonationSource) Donations(_ context.Context) ([]donations.Donation, error) {
	return MockDonations(), nil
}
