package webhooks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventStatus is the delivery state of a webhook event
type EventStatus string

const (
	EventSuccess  EventStatus = "success"
	EventFailed   EventStatus = "failed"
	EventRetrying EventStatus = "retrying"
)

// RetryPhase tracks the explicit two-phase retry lifecycle so tests can
// assert on the intermediate state without timers
type RetryPhase string

const (
	PhaseIdle      RetryPhase = "idle"
	PhaseRequested RetryPhase = "requested"
	PhaseConfirmed RetryPhase = "confirmed"
	PhaseFailed    RetryPhase = "failed"
)

// Event is one webhook delivery attempt record
type Event struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Endpoint    string         `db:"endpoint" json:"endpoint"`
	EventType   string         `db:"event_type" json:"event_type"`
	Status      EventStatus    `db:"status" json:"status"`
	RetryPhase  RetryPhase     `db:"retry_phase" json:"retry_phase"`
	RetryCount  int            `db:"retry_count" json:"retry_count"`
	MaxRetries  int            `db:"max_retries" json:"max_retries"`
	NextRetryAt *time.Time     `db:"next_retry_at" json:"next_retry_at,omitempty"`
	Payload     datatypes.JSON `db:"payload" json:"payload"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// FilterState is the webhook event table filter configuration
type FilterState struct {
	Search    string `json:"search" form:"search"`
	Status    string `json:"status" form:"status"`
	EventType string `json:"event_type" form:"event_type"`
	SortBy    string `json:"sort_by" form:"sort_by"`
	SortOrder string `json:"sort_order" form:"sort_order"`
}

// DefaultFilterState returns the filter state a fresh table starts with
func DefaultFilterState() FilterState {
	return FilterState{
		Status:    "all",
		EventType: "all",
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}
