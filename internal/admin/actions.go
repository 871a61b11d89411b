package admin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"terra-carbon/market-portal/market-portal-backend/pkg/workflows"
)

// lifecycleMachine holds the allowed lifecycle status transitions
var lifecycleMachine = workflows.NewLifecycleStateMachine()

// ProjectAction is an admin-initiated lifecycle action
type ProjectAction string

const (
	ActionApprove ProjectAction = "approve"
	ActionPause   ProjectAction = "pause"
	ActionArchive ProjectAction = "archive"
	ActionDelete  ProjectAction = "delete"
)

var (
	ErrActionReasonRequired = errors.New("a reason is required for this action")
	ErrActionNotAllowed     = errors.New("action not allowed for current project status")
	ErrUnknownAction        = errors.New("unknown project action")
)

// CanApproveProject reports whether a project in the given status may be approved
func CanApproveProject(status LifecycleStatus) bool {
	return lifecycleMachine.CanTransition(string(status), string(StatusApproved))
}

// CanPauseProject reports whether a project in the given status may be paused
func CanPauseProject(status LifecycleStatus) bool {
	return lifecycleMachine.CanTransition(string(status), string(StatusPaused))
}

// CanArchiveProject reports whether a project in the given status may be archived
func CanArchiveProject(status LifecycleStatus) bool {
	return lifecycleMachine.CanTransition(string(status), string(StatusArchived))
}

// CanDeleteProject reports whether a project may be deleted. Delete carries no
// status guard; the asymmetry with the other actions is preserved from the
// marketplace admin flow rather than unified.
func CanDeleteProject(status LifecycleStatus) bool {
	return true
}

// ActionRequiresReason reports whether an action needs a non-empty reason.
// Approve is the only action without one.
func ActionRequiresReason(action ProjectAction) bool {
	return action == ActionPause || action == ActionArchive || action == ActionDelete
}

// ActionRequest is one confirmed admin action over one or more projects
type ActionRequest struct {
	Action     ProjectAction `json:"action"`
	ProjectIDs []string      `json:"project_ids"`
	Actor      string        `json:"actor"`
	Reason     string        `json:"reason"`
}

// ValidateActionRequest checks the confirmation-step inputs before any project
// is touched
func ValidateActionRequest(req ActionRequest) error {
	switch req.Action {
	case ActionApprove, ActionPause, ActionArchive, ActionDelete:
	default:
		return ErrUnknownAction
	}
	if len(req.ProjectIDs) == 0 {
		return errors.New("at least one project id is required")
	}
	if ActionRequiresReason(req.Action) && strings.TrimSpace(req.Reason) == "" {
		return ErrActionReasonRequired
	}
	return nil
}

// ApplyProjectAction produces a new project snapshot with the action applied
// and exactly one activity-log entry appended. The input project is not
// mutated; delete is signalled through the returned deleted flag since the
// record itself is removed by the caller.
func ApplyProjectAction(project ProjectDetail, action ProjectAction, actor, reason string, now time.Time) (ProjectDetail, bool, error) {
	next := project
	deleted := false

	switch action {
	case ActionApprove:
		if !CanApproveProject(project.Status) {
			return project, false, fmt.Errorf("%w: cannot approve from %q", ErrActionNotAllowed, project.Status)
		}
		next.Status = StatusApproved
	case ActionPause:
		if !CanPauseProject(project.Status) {
			return project, false, fmt.Errorf("%w: cannot pause from %q", ErrActionNotAllowed, project.Status)
		}
		next.Status = StatusPaused
	case ActionArchive:
		if !CanArchiveProject(project.Status) {
			return project, false, fmt.Errorf("%w: cannot archive from %q", ErrActionNotAllowed, project.Status)
		}
		next.Status = StatusArchived
	case ActionDelete:
		deleted = true
	default:
		return project, false, ErrUnknownAction
	}

	next.UpdatedAt = now
	next.ActivityLog = appendActivity(project.ActivityLog, ActivityEntry{
		ProjectID: project.ID,
		Action:    strings.ToUpper(string(action)),
		Actor:     actor,
		Reason:    reason,
		CreatedAt: now,
	})

	return next, deleted, nil
}

// appendActivity returns a new slice so the previous snapshot's history stays
// untouched
func appendActivity(log []ActivityEntry, entry ActivityEntry) []ActivityEntry {
	out := make([]ActivityEntry, len(log), len(log)+1)
	copy(out, log)
	return append(out, entry)
}
