package query

import (
	"sort"

	"github.com/kehindeadewusi/lendboard/internal/models"
)

// Organizations returns the distinct organization values present in users,
// sorted ascending. It is recomputed from the collection on every call;
// callers must not cache the result across collection changes or the
// selector they populate goes stale.
func Organizations(users []models.User) []string {
	seen := make(map[string]struct{}, len(users))
	var orgs []string
	for _, u := range users {
		if _, ok := seen[u.Organization]; ok {
			continue
		}
		seen[u.Organization] = struct{}{}
		orgs = append(orgs, u.Organization)
	}
	sort.Strings(orgs)
	return orgs
}
