// Package query implements the pure collection logic the dashboard view is
// built on: multi-field filtering, pagination and the derived organization
// list. Nothing here touches storage or keeps state; every function is a
// plain function of its inputs.
package query

import (
	"strings"

	"github.com/kehindeadewusi/lendboard/internal/models"
)

// Filter retains exactly the records matching every non-empty field of f.
// Matching rules per field:
//
//   - Organization: exact equality
//   - Username, Email: case-insensitive substring
//   - PhoneNumber: substring
//   - Status: case-insensitive equality
//   - Date: equality with DateJoined truncated to its YYYY-MM-DD component
//
// An empty field is a wildcard. Order and membership of the input are
// preserved; re-applying the same filter to its own output is a no-op.
func Filter(users []models.User, f models.FilterParams) []models.User {
	if f.IsZero() {
		return users
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if matches(u, f) {
			out = append(out, u)
		}
	}
	return out
}

func matches(u models.User, f models.FilterParams) bool {
	if f.Organization != "" && u.Organization != f.Organization {
		return false
	}
	if f.Username != "" && !containsFold(u.Username, f.Username) {
		return false
	}
	if f.Email != "" && !containsFold(u.Email, f.Email) {
		return false
	}
	if f.PhoneNumber != "" && !strings.Contains(u.PhoneNumber, f.PhoneNumber) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(string(u.Status), f.Status) {
		return false
	}
	if f.Date != "" && dateOnly(u.DateJoined) != f.Date {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// dateOnly truncates a date or timestamp string to its YYYY-MM-DD prefix.
func dateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
