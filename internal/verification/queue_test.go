package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestSortPendingProjectsSelectsAwaitingOnly(t *testing.T) {
	projects := []QueueProject{
		{ID: "V-1", Status: QueuePending, SubmittedAt: day(5)},
		{ID: "V-2", Status: QueueApproved, SubmittedAt: day(1)},
		{ID: "V-3", Status: QueueResubmitted, SubmittedAt: day(3)},
		{ID: "V-4", Status: QueueRejected, SubmittedAt: day(2)},
	}

	result := SortPendingProjects(projects)

	assert.Len(t, result, 2)
	assert.Equal(t, "V-3", result[0].ID)
	assert.Equal(t, "V-1", result[1].ID)
}

// A flagged project always precedes an unflagged one, even when the unflagged
// project is older. Project A (flagged, 2024-01-10) must come before project B
// (unflagged, 2024-01-01).
func TestSortPendingProjectsFlaggedBeforeOlderUnflagged(t *testing.T) {
	projects := []QueueProject{
		{ID: "B", Status: QueuePending, Flagged: false, SubmittedAt: day(1)},
		{ID: "A", Status: QueuePending, Flagged: true, SubmittedAt: day(10)},
	}

	result := SortPendingProjects(projects)

	assert.Equal(t, "A", result[0].ID)
	assert.Equal(t, "B", result[1].ID)
}

func TestSortPendingProjectsOldestFirstWithinFlagGroup(t *testing.T) {
	projects := []QueueProject{
		{ID: "V-1", Status: QueuePending, Flagged: true, SubmittedAt: day(8)},
		{ID: "V-2", Status: QueuePending, Flagged: true, SubmittedAt: day(2)},
		{ID: "V-3", Status: QueuePending, Flagged: false, SubmittedAt: day(4)},
		{ID: "V-4", Status: QueuePending, Flagged: false, SubmittedAt: day(1)},
	}

	result := SortPendingProjects(projects)

	assert.Equal(t, []string{"V-2", "V-1", "V-4", "V-3"},
		[]string{result[0].ID, result[1].ID, result[2].ID, result[3].ID})
}

func TestSortPendingProjectsDoesNotMutateInput(t *testing.T) {
	projects := []QueueProject{
		{ID: "V-1", Status: QueuePending, SubmittedAt: day(9)},
		{ID: "V-2", Status: QueuePending, SubmittedAt: day(1)},
	}

	SortPendingProjects(projects)

	assert.Equal(t, "V-1", projects[0].ID)
	assert.Equal(t, "V-2", projects[1].ID)
}

func TestSortPendingProjectsStableOnEqualKeys(t *testing.T) {
	projects := []QueueProject{
		{ID: "V-1", Status: QueuePending, SubmittedAt: day(3)},
		{ID: "V-2", Status: QueuePending, SubmittedAt: day(3)},
		{ID: "V-3", Status: QueuePending, SubmittedAt: day(3)},
	}

	result := SortPendingProjects(projects)

	assert.Equal(t, []string{"V-1", "V-2", "V-3"},
		[]string{result[0].ID, result[1].ID, result[2].ID})
}

func TestComputeQueueStats(t *testing.T) {
	oldest := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	projects := []QueueProject{
		{Status: QueuePending, Flagged: true, SubmittedAt: oldest.AddDate(0, 1, 0)},
		{Status: QueuePending, SubmittedAt: oldest},
		{Status: QueueResubmitted, Flagged: true, SubmittedAt: oldest.AddDate(0, 2, 0)},
		{Status: QueueApproved, Flagged: true, SubmittedAt: oldest.AddDate(0, -6, 0)}, // decided, not counted
		{Status: QueueRejected},
	}

	stats := ComputeQueueStats(projects)

	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Resubmitted)
	assert.Equal(t, 1, stats.Approved)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 2, stats.Flagged)
	assert.Equal(t, 3, stats.AwaitingTotal)
	require.NotNil(t, stats.OldestAwaiting)
	assert.Equal(t, oldest, *stats.OldestAwaiting)
}

func TestComputeQueueStatsEmpty(t *testing.T) {
	stats := ComputeQueueStats(nil)
	assert.Equal(t, QueueStats{}, stats)
}

func TestLargeDocumentThreshold(t *testing.T) {
	assert.False(t, QueueDocument{SizeMB: 14.9}.IsLarge())
	assert.True(t, QueueDocument{SizeMB: 15}.IsLarge())
	assert.True(t, QueueDocument{SizeMB: 40}.IsLarge())
}
