package users

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var userCollator = collate.New(language.English, collate.IgnoreCase)

// FilterUsers applies search, status filter and a stable sort to the given
// records. The input slice is never mutated; a new slice is returned.
func FilterUsers(records []AdminUser, filter UserTableFilterState) []AdminUser {
	out := make([]AdminUser, 0, len(records))

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, u := range records {
		if search != "" && !userMatchesSearch(u, search) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(u.Status) != filter.Status {
			continue
		}
		out = append(out, u)
	}

	sortUsers(out, filter.SortBy, filter.SortOrder)
	return out
}

// userMatchesSearch checks email, wallet and id for a case-insensitive
// substring match
func userMatchesSearch(u AdminUser, search string) bool {
	for _, field := range []string{u.Email, u.WalletAddress, u.ID.String()} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func sortUsers(users []AdminUser, sortBy, order string) {
	var cmp func(a, b AdminUser) int
	switch sortBy {
	case "email":
		cmp = func(a, b AdminUser) int { return userCollator.CompareString(a.Email, b.Email) }
	case "display_name":
		cmp = func(a, b AdminUser) int { return userCollator.CompareString(a.DisplayName, b.DisplayName) }
	case "status":
		cmp = func(a, b AdminUser) int { return userCollator.CompareString(string(a.Status), string(b.Status)) }
	case "created_at":
		cmp = func(a, b AdminUser) int {
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

	sort.SliceStable(users, func(i, j int) bool {
		c := cmp(users[i], users[j])
		if order == "desc" {
			return c > 0
		}
		return c < 0
	})
}
