package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActionPredicates(t *testing.T) {
	assert.True(t, CanApproveProject(StatusUnderReview))
	assert.True(t, CanApproveProject(StatusPaused))
	assert.False(t, CanApproveProject(StatusApproved))
	assert.False(t, CanApproveProject(StatusDraft))

	assert.True(t, CanPauseProject(StatusApproved))
	assert.False(t, CanPauseProject(StatusUnderReview))

	assert.True(t, CanArchiveProject(StatusDraft))
	assert.True(t, CanArchiveProject(StatusApproved))
	assert.False(t, CanArchiveProject(StatusArchived))

	// Delete is deliberately unguarded
	assert.True(t, CanDeleteProject(StatusArchived))
	assert.True(t, CanDeleteProject(StatusDraft))
}

func TestValidateActionRequestReasonRules(t *testing.T) {
	base := ActionRequest{ProjectIDs: []string{"PRJ-001"}, Actor: "admin@example.com"}

	approve := base
	approve.Action = ActionApprove
	assert.NoError(t, ValidateActionRequest(approve))

	for _, action := range []ProjectAction{ActionPause, ActionArchive, ActionDelete} {
		req := base
		req.Action = action
		err := ValidateActionRequest(req)
		assert.ErrorIs(t, err, ErrActionReasonRequired, string(action))

		req.Reason = "   "
		assert.ErrorIs(t, ValidateActionRequest(req), ErrActionReasonRequired)

		req.Reason = "compliance review"
		assert.NoError(t, ValidateActionRequest(req))
	}
}

func TestValidateActionRequestUnknownAction(t *testing.T) {
	req := ActionRequest{Action: "explode", ProjectIDs: []string{"PRJ-001"}}
	assert.ErrorIs(t, ValidateActionRequest(req), ErrUnknownAction)
}

func TestApplyProjectActionAppendsOneActivityEntry(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	project := ProjectDetail{
		ID:     "PRJ-010",
		Status: StatusUnderReview,
		ActivityLog: []ActivityEntry{
			{ProjectID: "PRJ-010", Action: "CREATED", Actor: "owner"},
		},
	}

	next, deleted, err := ApplyProjectAction(project, ActionApprove, "admin", "", now)

	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, StatusApproved, next.Status)
	assert.Len(t, next.ActivityLog, 2)
	assert.Equal(t, "APPROVE", next.ActivityLog[1].Action)
	assert.Equal(t, "admin", next.ActivityLog[1].Actor)
	assert.Equal(t, now, next.ActivityLog[1].CreatedAt)

	// The original snapshot's history is untouched
	assert.Equal(t, StatusUnderReview, project.Status)
	assert.Len(t, project.ActivityLog, 1)
}

func TestApplyProjectActionBlockedTransition(t *testing.T) {
	now := time.Now()
	project := ProjectDetail{ID: "PRJ-011", Status: StatusDraft}

	_, _, err := ApplyProjectAction(project, ActionApprove, "admin", "", now)
	assert.ErrorIs(t, err, ErrActionNotAllowed)

	_, _, err = ApplyProjectAction(project, ActionPause, "admin", "seasonal halt", now)
	assert.ErrorIs(t, err, ErrActionNotAllowed)

	archived := ProjectDetail{ID: "PRJ-012", Status: StatusArchived}
	_, _, err = ApplyProjectAction(archived, ActionArchive, "admin", "cleanup", now)
	assert.ErrorIs(t, err, ErrActionNotAllowed)
}

func TestApplyProjectActionDelete(t *testing.T) {
	now := time.Now()
	project := ProjectDetail{ID: "PRJ-013", Status: StatusArchived}

	next, deleted, err := ApplyProjectAction(project, ActionDelete, "admin", "duplicate record", now)

	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, next.ActivityLog, 1)
	assert.Equal(t, "DELETE", next.ActivityLog[0].Action)
	assert.Equal(t, "duplicate record", next.ActivityLog[0].Reason)
}

func TestBadgeVariants(t *testing.T) {
	for _, status := range []LifecycleStatus{StatusDraft, StatusUnderReview, StatusApproved, StatusPaused, StatusArchived} {
		variant, err := StatusBadge(status)
		assert.NoError(t, err)
		assert.NotEmpty(t, variant)
	}

	_, err := StatusBadge(LifecycleStatus("Bogus"))
	assert.Error(t, err)

	_, err = RiskBadge(RiskRating("Extreme"))
	assert.Error(t, err)
}
