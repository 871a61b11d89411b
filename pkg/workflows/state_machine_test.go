package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleTransitions(t *testing.T) {
	sm := NewLifecycleStateMachine()

	assert.True(t, sm.CanTransition("Draft", "Under Review"))
	assert.True(t, sm.CanTransition("Under Review", "Approved"))
	assert.True(t, sm.CanTransition("Approved", "Paused"))
	assert.True(t, sm.CanTransition("Paused", "Approved"))

	// Archived is terminal
	assert.False(t, sm.CanTransition("Archived", "Draft"))
	assert.False(t, sm.CanTransition("Archived", "Approved"))
	assert.Empty(t, sm.GetAllowedTransitions("Archived"))

	// Everything else can archive
	for _, from := range []string{"Draft", "Under Review", "Approved", "Paused"} {
		assert.True(t, sm.CanTransition(from, "Archived"), from)
	}

	assert.False(t, sm.CanTransition("Draft", "Approved"))
	assert.False(t, sm.CanTransition("bogus", "Approved"))
}

func TestQueueTransitions(t *testing.T) {
	sm := NewQueueStateMachine()

	assert.True(t, sm.CanTransition("pending", "approved"))
	assert.True(t, sm.CanTransition("pending", "rejected"))
	assert.True(t, sm.CanTransition("resubmitted", "approved"))
	assert.True(t, sm.CanTransition("rejected", "resubmitted"))

	assert.False(t, sm.CanTransition("approved", "rejected"))
	assert.False(t, sm.CanTransition("pending", "resubmitted"))
}

func TestGetAllowedTransitionsUnknownStatus(t *testing.T) {
	sm := NewStateMachine(map[string][]string{"a": {"b"}})
	assert.Empty(t, sm.GetAllowedTransitions("z"))
	assert.Equal(t, []string{"b"}, sm.GetAllowedTransitions("a"))
}
