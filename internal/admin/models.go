package admin

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LifecycleStatus is the admin-controlled project state machine stage
type LifecycleStatus string

const (
	StatusDraft       LifecycleStatus = "Draft"
	StatusUnderReview LifecycleStatus = "Under Review"
	StatusApproved    LifecycleStatus = "Approved"
	StatusPaused      LifecycleStatus = "Paused"
	StatusArchived    LifecycleStatus = "Archived"
)

// RiskRating classifies project risk
type RiskRating string

const (
	RiskLow    RiskRating = "Low"
	RiskMedium RiskRating = "Medium"
	RiskHigh   RiskRating = "High"
)

// MRVDocumentStatus is the review state of an MRV document
type MRVDocumentStatus string

const (
	MRVPendingReview MRVDocumentStatus = "Pending Review"
	MRVCurrent       MRVDocumentStatus = "Current"
	MRVSuperseded    MRVDocumentStatus = "Superseded"
)

// ProjectDetail is the admin view of a marketplace project
type ProjectDetail struct {
	ID                  string          `gorm:"primaryKey" json:"id"`
	Slug                string          `gorm:"uniqueIndex" json:"slug"`
	Name                string          `gorm:"not null" json:"name"`
	ProjectType         string          `json:"project_type"`
	Location            string          `json:"location"`
	Country             string          `json:"country"`
	Status              LifecycleStatus `gorm:"not null;default:'Draft'" json:"status"`
	RiskRating          RiskRating      `json:"risk_rating"`
	PricePerTonUSD      float64         `json:"price_per_ton_usd"`
	AvailableSupplyTons float64         `json:"available_supply_tons"`
	TotalIssuedTons     float64         `json:"total_issued_tons"`
	BufferPoolPercent   float64         `json:"buffer_pool_percent"`
	VerificationEnabled bool            `json:"verification_enabled"`
	VerificationNotes   string          `json:"verification_notes"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`

	MRVDocuments    []MRVDocument    `gorm:"foreignKey:ProjectID" json:"mrv_documents"`
	IssuanceHistory []CreditIssuance `gorm:"foreignKey:ProjectID" json:"credit_issuance_history"`
	ActivityLog     []ActivityEntry  `gorm:"foreignKey:ProjectID" json:"activity_log"`
}

// MRVDocument is a Measurement, Reporting, Verification file attached to a project
type MRVDocument struct {
	ID         uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID  string            `gorm:"not null;index" json:"project_id"`
	FileName   string            `gorm:"not null" json:"file_name"`
	Status     MRVDocumentStatus `gorm:"not null;default:'Pending Review'" json:"status"`
	UploadedAt time.Time         `json:"uploaded_at"`
	SizeBytes  int64             `json:"size_bytes"`
	StorageKey string            `json:"storage_key"`
}

// CreditIssuance is one batch in a project's issuance history
type CreditIssuance struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID   string    `gorm:"not null;index" json:"project_id"`
	VintageYear int       `json:"vintage_year"`
	Tons        float64   `json:"tons"`
	IssuedAt    time.Time `json:"issued_at"`
	SerialRange string    `json:"serial_range"`
}

// ActivityEntry is one append-only audit trail record
type ActivityEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID string         `gorm:"not null;index" json:"project_id"`
	Action    string         `gorm:"not null" json:"action"`
	Actor     string         `gorm:"not null" json:"actor"`
	Reason    string         `json:"reason"`
	Metadata  datatypes.JSON `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}

// SortOrder flips comparator direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterAll is the sentinel that disables an enum filter
const FilterAll = "all"

// TableFilterState is the admin project table filter configuration
type TableFilterState struct {
	Search      string    `json:"search" form:"search"`
	Status      string    `json:"status" form:"status"`
	RiskRating  string    `json:"risk_rating" form:"risk_rating"`
	ProjectType string    `json:"project_type" form:"project_type"`
	SortBy      string    `json:"sort_by" form:"sort_by"`
	SortOrder   SortOrder `json:"sort_order" form:"sort_order"`
}

// DefaultTableFilterState returns the filter state a fresh table starts with
func DefaultTableFilterState() TableFilterState {
	return TableFilterState{
		Status:      FilterAll,
		RiskRating:  FilterAll,
		ProjectType: FilterAll,
		SortBy:      "name",
		SortOrder:   SortAsc,
	}
}
