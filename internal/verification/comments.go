package verification

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Thread is the one-level comment tree rebuilt from the flat comment list
type Thread struct {
	Roots   []Comment            `json:"roots"`
	Replies map[string][]Comment `json:"replies"`
}

// BuildThread reconstructs root comments and their direct replies from a flat
// list. Roots and each reply list are sorted by creation time ascending. The
// input is never mutated.
func BuildThread(comments []Comment) Thread {
	thread := Thread{Replies: make(map[string][]Comment)}

	for _, c := range comments {
		if c.ParentID == nil {
			thread.Roots = append(thread.Roots, c)
		} else {
			thread.Replies[*c.ParentID] = append(thread.Replies[*c.ParentID], c)
		}
	}

	byCreatedAt := func(list []Comment) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		})
	}
	byCreatedAt(thread.Roots)
	for _, replies := range thread.Replies {
		byCreatedAt(replies)
	}

	return thread
}

// AddComment appends a comment to the flat list after trimming its content.
// Empty submissions are silently ignored and the original list is returned.
// Existing entries are never reordered or modified.
func AddComment(comments []Comment, projectID string, parentID *string, author, content string, now time.Time) []Comment {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return comments
	}

	out := make([]Comment, len(comments), len(comments)+1)
	copy(out, comments)
	return append(out, Comment{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		ParentID:  parentID,
		Author:    author,
		Content:   trimmed,
		CreatedAt: now,
	})
}
