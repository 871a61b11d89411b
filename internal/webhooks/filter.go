package webhooks

import (
	"sort"
	"strings"
)

// FilterEvents applies search, enum filters and a stable sort to webhook
// events. The input slice is never mutated; a new slice is returned.
func FilterEvents(events []Event, filter FilterState) []Event {
	out := make([]Event, 0, len(events))

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, e := range events {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Endpoint), search) &&
			!strings.Contains(strings.ToLower(e.EventType), search) &&
			!strings.Contains(strings.ToLower(e.ID.String()), search) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(e.Status) != filter.Status {
			continue
		}
		if filter.EventType != "" && filter.EventType != "all" && e.EventType != filter.EventType {
			continue
		}
		out = append(out, e)
	}

	sortEvents(out, filter.SortBy, filter.SortOrder)
	return out
}

func sortEvents(events []Event, sortBy, order string) {
	var cmp func(a, b Event) int
	switch sortBy {
	case "endpoint":
		cmp = func(a, b Event) int { return strings.Compare(a.Endpoint, b.Endpoint) }
	case "event_type":
		cmp = func(a, b Event) int { return strings.Compare(a.EventType, b.EventType) }
	case "retry_count":
		cmp = func(a, b Event) int { return a.RetryCount - b.RetryCount }
	case "created_at":
		cmp = func(a, b Event) int {
			am, bm := a.CreatedAt.UnixMilli(), b.CreatedAt.UnixMilli()
			switch {
			case am < bm:
				return -1
			case am > bm:
				return 1
			default:
				return 0
			}
		}
	default:
		return
	}

	sort.SliceStable(events, func(i, j int) bool {
		c := cmp(events[i], events[j])
		if order == "desc" {
			return c > 0
		}
		return c < 0
	})
}
