package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kehindeadewusi/lendboard/internal/models"
)

// listQuery is what a `users` invocation asks for: a filter plus a page
// window over the filtered result.
type listQuery struct {
	filter  models.FilterParams
	page    int
	perPage int
}

// parseListArgs turns `users` arguments of the form key=value into a
// listQuery. Recognized filter keys: org, user, email, phone, status, date;
// paging keys: page, per. Giving per without page resets to page 1, so a
// page-size change never lands past the new last page.
func parseListArgs(args []string) (listQuery, error) {
	q := listQuery{page: 1, perPage: defaultPerPage}
	pageSet := false

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || value == "" {
			return listQuery{}, fmt.Errorf("expected key=value, got %q", arg)
		}

		switch key {
		case "org":
			q.filter.Organization = value
		case "user":
			q.filter.Username = value
		case "email":
			q.filter.Email = value
		case "phone":
			q.filter.PhoneNumber = value
		case "status":
			q.filter.Status = value
		case "date":
			q.filter.Date = value
		case "page":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return listQuery{}, fmt.Errorf("invalid page %q", value)
			}
			q.page = n
			pageSet = true
		case "per":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return listQuery{}, fmt.Errorf("invalid page size %q", value)
			}
			q.perPage = n
			if !pageSet {
				q.page = 1
			}
		default:
			return listQuery{}, fmt.Errorf("unknown filter %q", key)
		}
	}
	return q, nil
}
