package verification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"terra-carbon/market-portal/market-portal-backend/pkg/workflows"
)

// queueMachine holds the allowed queue status transitions; a decision is a
// transition from an awaiting status to its verdict
var queueMachine = workflows.NewQueueStateMachine()

var (
	ErrReasonRequired = errors.New("Reason is required for a verification decision")
	ErrProjectLocked  = errors.New("project is locked by another reviewer")
	ErrMissingFields  = errors.New("project has missing fields and cannot be approved")
	ErrNotAwaiting    = errors.New("project is not awaiting review")
)

// DecisionInput carries a reviewer's verdict
type DecisionInput struct {
	Decision   Decision `json:"decision"`
	Reason     string   `json:"reason"`
	ReviewerID string   `json:"reviewer_id"`
}

// ApplyDecision is the pure decision transition. It validates preconditions
// in a fixed order and, on success, returns a new project snapshot with the
// decision applied and the history entry that was appended. The input project
// is never mutated; on error it is returned unchanged.
//
// Precondition order: a trimmed non-empty reason, then lock ownership, then
// (approval only) an empty missing-fields list. Rejection is allowed with
// missing fields.
func ApplyDecision(project QueueProject, in DecisionInput, now time.Time) (QueueProject, DecisionRecord, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return project, DecisionRecord{}, ErrReasonRequired
	}

	if project.LockOwner != nil && *project.LockOwner != in.ReviewerID {
		return project, DecisionRecord{}, fmt.Errorf("%w (held by %s)", ErrProjectLocked, *project.LockOwner)
	}

	switch in.Decision {
	case DecisionApprove, DecisionReject:
	default:
		return project, DecisionRecord{}, fmt.Errorf("unknown decision %q", in.Decision)
	}
	if !queueMachine.CanTransition(string(project.Status), string(in.Decision)) {
		return project, DecisionRecord{}, fmt.Errorf("%w: status %q", ErrNotAwaiting, project.Status)
	}

	if in.Decision == DecisionApprove && len(project.MissingFields) > 0 {
		return project, DecisionRecord{}, fmt.Errorf("%w: %s",
			ErrMissingFields, strings.Join(project.MissingFields, ", "))
	}

	record := DecisionRecord{
		ProjectID: project.ID,
		Decision:  in.Decision,
		Reason:    reason,
		DecidedBy: in.ReviewerID,
		DecidedAt: now,
	}

	next := project
	next.Status = QueueStatus(in.Decision)
	next.DecisionHistory = make([]DecisionRecord, len(project.DecisionHistory), len(project.DecisionHistory)+1)
	copy(next.DecisionHistory, project.DecisionHistory)
	next.DecisionHistory = append(next.DecisionHistory, record)

	return next, record, nil
}
