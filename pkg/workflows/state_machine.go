package workflows

// StateMachine enforces status transitions from a transition table
type StateMachine struct {
	allowedTransitions map[string][]string
}

// NewStateMachine creates a state machine with the given transition table
func NewStateMachine(transitions map[string][]string) *StateMachine {
	return &StateMachine{allowedTransitions: transitions}
}

// NewLifecycleStateMachine builds the machine for admin project lifecycle statuses
func NewLifecycleStateMachine() *StateMachine {
	return NewStateMachine(map[string][]string{
		"Draft":        {"Under Review", "Archived"},
		"Under Review": {"Approved", "Archived"},
		"Approved":     {"Paused", "Archived"},
		"Paused":       {"Approved", "Archived"},
		"Archived":     {},
	})
}

// NewQueueStateMachine builds the machine for verification queue statuses
func NewQueueStateMachine() *StateMachine {
	return NewStateMachine(map[string][]string{
		"pending":     {"approved", "rejected"},
		"resubmitted": {"approved", "rejected"},
		"approved":    {},
		"rejected":    {"resubmitted"}, // Allow owners to resubmit after rejection
	})
}

// CanTransition checks if a status transition is allowed
func (sm *StateMachine) CanTransition(from, to string) bool {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return false
	}
	for _, allowedTo := range allowed {
		if allowedTo == to {
			return true
		}
	}
	return false
}

// GetAllowedTransitions returns the allowed next statuses for a given status
func (sm *StateMachine) GetAllowedTransitions(from string) []string {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return []string{}
	}
	return allowed
}
