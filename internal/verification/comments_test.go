package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestBuildThreadOrdering(t *testing.T) {
	comments := []Comment{
		{ID: "c2", Content: "second root", CreatedAt: day(2)},
		{ID: "r2", ParentID: strptr("c1"), Content: "later reply", CreatedAt: day(5)},
		{ID: "c1", Content: "first root", CreatedAt: day(1)},
		{ID: "r1", ParentID: strptr("c1"), Content: "early reply", CreatedAt: day(3)},
		{ID: "r3", ParentID: strptr("c2"), Content: "only reply", CreatedAt: day(4)},
	}

	thread := BuildThread(comments)

	assert.Len(t, thread.Roots, 2)
	assert.Equal(t, "c1", thread.Roots[0].ID)
	assert.Equal(t, "c2", thread.Roots[1].ID)

	assert.Equal(t, []string{"r1", "r2"},
		[]string{thread.Replies["c1"][0].ID, thread.Replies["c1"][1].ID})
	assert.Equal(t, "r3", thread.Replies["c2"][0].ID)
}

func TestBuildThreadEmpty(t *testing.T) {
	thread := BuildThread(nil)
	assert.Empty(t, thread.Roots)
	assert.Empty(t, thread.Replies)
}

func TestAddCommentIgnoresEmptyContent(t *testing.T) {
	existing := []Comment{{ID: "c1", Content: "root"}}

	for _, content := range []string{"", "   ", "\t\n"} {
		result := AddComment(existing, "V-1", nil, "ana", content, time.Now())
		assert.Len(t, result, 1)
	}
}

func TestAddCommentAppendsWithoutMutating(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	existing := []Comment{
		{ID: "c1", Content: "root", CreatedAt: day(1)},
		{ID: "r1", ParentID: strptr("c1"), Content: "reply", CreatedAt: day(2)},
	}

	result := AddComment(existing, "V-1", strptr("c1"), "ben", "  agree  ", now)

	assert.Len(t, result, 3)
	assert.Equal(t, "agree", result[2].Content)
	assert.Equal(t, "c1", *result[2].ParentID)
	assert.NotEmpty(t, result[2].ID)

	// Existing entries are untouched and in their original order
	assert.Len(t, existing, 2)
	assert.Equal(t, "c1", existing[0].ID)
	assert.Equal(t, "r1", existing[1].ID)
}

// A new reply appears exactly once, positioned last among its siblings
func TestAddReplyPositionedLast(t *testing.T) {
	flat := []Comment{
		{ID: "c1", Content: "root", CreatedAt: day(1)},
		{ID: "r1", ParentID: strptr("c1"), Content: "first", CreatedAt: day(2)},
	}

	flat = AddComment(flat, "V-1", strptr("c1"), "cara", "newest", day(6))
	thread := BuildThread(flat)

	replies := thread.Replies["c1"]
	assert.Len(t, replies, 2)
	assert.Equal(t, "newest", replies[1].Content)

	count := 0
	for _, r := range replies {
		if r.Content == "newest" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
