package onboarding

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// TourState is the onboarding tour's visible state
type TourState string

const (
	TourClosed    TourState = "closed"
	TourOpen      TourState = "open"
	TourCompleted TourState = "completed"
)

// Tour is a pure index-clamping state machine over a fixed number of steps.
// Completion is the only durable fact; everything else resets per session.
type Tour struct {
	StepCount int       `json:"step_count"`
	Step      int       `json:"step"`
	State     TourState `json:"state"`
}

// NewTour creates a closed tour over the given number of steps
func NewTour(stepCount int) Tour {
	return Tour{StepCount: stepCount, State: TourClosed}
}

// Open starts the tour at its first step
func (t Tour) Open() Tour {
	next := t
	next.State = TourOpen
	next.Step = 0
	return next
}

// Next advances one step; at the last step it completes and closes
func (t Tour) Next() Tour {
	next := t
	if t.State != TourOpen {
		return next
	}
	if t.Step >= t.StepCount-1 {
		next.State = TourCompleted
		return next
	}
	next.Step++
	return next
}

// Back walks one step back, flooring at the first step
func (t Tour) Back() Tour {
	next := t
	if t.State != TourOpen {
		return next
	}
	if next.Step > 0 {
		next.Step--
	}
	return next
}

// Close dismisses the tour without completing it, so it reappears next
// session
func (t Tour) Close() Tour {
	next := t
	if next.State == TourOpen {
		next.State = TourClosed
	}
	return next
}

// Completed reports whether the tour finished
func (t Tour) Completed() bool {
	return t.State == TourCompleted
}

// TourCompletion is the persisted completion flag
type TourCompletion struct {
	UserID      string `gorm:"primaryKey" json:"user_id"`
	TourName    string `gorm:"primaryKey" json:"tour_name"`
	CompletedAt int64  `json:"completed_at"`
}

// CompletionStore persists the durable completion flag
type CompletionStore interface {
	IsCompleted(ctx context.Context, userID, tourName string) (bool, error)
	MarkCompleted(ctx context.Context, userID, tourName string, at int64) error
}

type gormCompletionStore struct {
	db *gorm.DB
}

// NewCompletionStore creates a gorm-backed completion store
func NewCompletionStore(db *gorm.DB) CompletionStore {
	return &gormCompletionStore{db: db}
}

func (s *gormCompletionStore) IsCompleted(ctx context.Context, userID, tourName string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&TourCompletion{}).
		Where("user_id = ? AND tour_name = ?", userID, tourName).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check tour completion: %w", err)
	}
	return count > 0, nil
}

func (s *gormCompletionStore) MarkCompleted(ctx context.Context, userID, tourName string, at int64) error {
	completion := TourCompletion{UserID: userID, TourName: tourName, CompletedAt: at}
	if err := s.db.WithContext(ctx).Save(&completion).Error; err != nil {
		return fmt.Errorf("failed to mark tour completed: %w", err)
	}
	return nil
}
