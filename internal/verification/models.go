package verification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QueueStatus is the verification-specific state of a queued project,
// distinct from the admin lifecycle status
type QueueStatus string

const (
	QueuePending     QueueStatus = "pending"
	QueueResubmitted QueueStatus = "resubmitted"
	QueueApproved    QueueStatus = "approved"
	QueueRejected    QueueStatus = "rejected"
)

// Decision is a reviewer's verdict on a queued project
type Decision string

const (
	DecisionApprove Decision = "approved"
	DecisionReject  Decision = "rejected"
)

// LargeDocumentThresholdMB triggers the large-document warning
const LargeDocumentThresholdMB = 15.0

// QueueProject is one project awaiting verification review
type QueueProject struct {
	ID            string                      `gorm:"primaryKey" json:"id"`
	Name          string                      `gorm:"not null" json:"name"`
	ProjectType   string                      `json:"project_type"`
	Status        QueueStatus                 `gorm:"not null;default:'pending'" json:"status"`
	Flagged       bool                        `json:"flagged"`
	SubmittedAt   time.Time                   `json:"submitted_at"`
	MissingFields datatypes.JSONSlice[string] `json:"missing_fields"`
	LockOwner     *string                     `json:"lock_owner,omitempty"`

	Documents       []QueueDocument  `gorm:"foreignKey:ProjectID" json:"documents"`
	DecisionHistory []DecisionRecord `gorm:"foreignKey:ProjectID" json:"decision_history"`
}

// QueueDocument is a file submitted for review
type QueueDocument struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID string    `gorm:"not null;index" json:"project_id"`
	FileName  string    `gorm:"not null" json:"file_name"`
	SizeMB    float64   `json:"size_mb"`
}

// IsLarge reports whether the document crosses the warning threshold
func (d QueueDocument) IsLarge() bool {
	return d.SizeMB >= LargeDocumentThresholdMB
}

// DecisionRecord is one append-only entry in a project's decision history
type DecisionRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID string    `gorm:"not null;index" json:"project_id"`
	Decision  Decision  `gorm:"not null" json:"decision"`
	Reason    string    `gorm:"not null" json:"reason"`
	DecidedBy string    `gorm:"not null" json:"decided_by"`
	DecidedAt time.Time `json:"decided_at"`
}

// Comment is one entry in a project's review discussion. ParentID is nil for
// root comments and holds the root's id for replies.
type Comment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ProjectID string    `gorm:"not null;index" json:"project_id"`
	ParentID  *string   `json:"parent_id,omitempty"`
	Author    string    `gorm:"not null" json:"author"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// QueueStats summarizes the review queue
type QueueStats struct {
	Pending       int `json:"pending"`
	Resubmitted   int `json:"resubmitted"`
	Approved      int `json:"approved"`
	Rejected      int `json:"rejected"`
	Flagged       int `json:"flagged"`
	AwaitingTotal int `json:"awaiting_total"`

	// OldestAwaiting is the submission time of the longest-waiting pending or
	// resubmitted project, nil when the queue is empty
	OldestAwaiting *time.Time `json:"oldest_awaiting,omitempty"`
}
