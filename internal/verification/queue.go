package verification

import "sort"

// SortPendingProjects selects projects awaiting review and orders them for
// the queue: flagged projects always precede unflagged ones regardless of
// age, then oldest submission first. A new slice is returned; the input is
// never mutated.
func SortPendingProjects(projects []QueueProject) []QueueProject {
	out := make([]QueueProject, 0, len(projects))
	for _, p := range projects {
		if p.Status == QueuePending || p.Status == QueueResubmitted {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Flagged != out[j].Flagged {
			return out[i].Flagged
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})

	return out
}

// ComputeQueueStats aggregates queue counts. An empty queue yields all zeroes.
func ComputeQueueStats(projects []QueueProject) QueueStats {
	var stats QueueStats
	for _, p := range projects {
		switch p.Status {
		case QueuePending:
			stats.Pending++
		case QueueResubmitted:
			stats.Resubmitted++
		case QueueApproved:
			stats.Approved++
		case QueueRejected:
			stats.Rejected++
		}
		if p.Status == QueuePending || p.Status == QueueResubmitted {
			if p.Flagged {
				stats.Flagged++
			}
			if stats.OldestAwaiting == nil || p.SubmittedAt.Before(*stats.OldestAwaiting) {
				submitted := p.SubmittedAt
				stats.OldestAwaiting = &submitted
			}
		}
	}
	stats.AwaitingTotal = stats.Pending + stats.Resubmitted
	return stats
}
