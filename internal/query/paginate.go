package query

import (
	"strconv"

	"github.com/kehindeadewusi/lendboard/internal/models"
)

// Paginate returns the 1-based page of size perPage from users. Pages
// outside [1, TotalPages] yield an empty slice rather than an error; a
// non-positive perPage yields an empty slice as well.
func Paginate(users []models.User, page, perPage int) []models.User {
	if perPage <= 0 || page < 1 {
		return []models.User{}
	}

	start := (page - 1) * perPage
	if start >= len(users) {
		return []models.User{}
	}

	end := start + perPage
	if end > len(users) {
		end = len(users)
	}
	return users[start:end]
}

// TotalPages is ceil(n / perPage). Zero when either argument is
// non-positive.
func TotalPages(n, perPage int) int {
	if n <= 0 || perPage <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// PageNumbers produces the labels for pagination controls: every page when
// there are at most five, otherwise windows around the edges or the current
// page separated by "..." ellipses.
func PageNumbers(current, total int) []string {
	const maxVisible = 5

	var pages []string
	num := func(n int) string { return strconv.Itoa(n) }

	switch {
	case total <= maxVisible:
		for i := 1; i <= total; i++ {
			pages = append(pages, num(i))
		}
	case current <= 3:
		for i := 1; i <= 4; i++ {
			pages = append(pages, num(i))
		}
		pages = append(pages, "...", num(total))
	case current >= total-2:
		pages = append(pages, num(1), "...")
		for i := total - 3; i <= total; i++ {
			pages = append(pages, num(i))
		}
	default:
		pages = append(pages, num(1), "...")
		for i := current - 1; i <= current+1; i++ {
			pages = append(pages, num(i))
		}
		pages = append(pages, "...", num(total))
	}
	return pages
}
