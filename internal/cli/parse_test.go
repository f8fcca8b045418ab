package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kehindeadewusi/lendboard/internal/models"
)

func TestParseListArgs_Defaults(t *testing.T) {
	q, err := parseListArgs(nil)
	require.NoError(t, err)
	assert.True(t, q.filter.IsZero())
	assert.Equal(t, 1, q.page)
	assert.Equal(t, defaultPerPage, q.perPage)
}

func TestParseListArgs_Filters(t *testing.T) {
	q, err := parseListArgs([]string{"org=Kuda", "status=active", "user=john", "email=gmail", "phone=080", "date=2021-03-04"})
	require.NoError(t, err)
	assert.Equal(t, models.FilterParams{
		Organization: "Kuda",
		Status:       "active",
		Username:     "john",
		Email:        "gmail",
		PhoneNumber:  "080",
		Date:         "2021-03-04",
	}, q.filter)
}

func TestParseListArgs_Paging(t *testing.T) {
	q, err := parseListArgs([]string{"page=3", "per=25"})
	require.NoError(t, err)
	assert.Equal(t, 3, q.page)
	assert.Equal(t, 25, q.perPage)

	// a page-size change without an explicit page resets to page 1
	q, err = parseListArgs([]string{"per=25"})
	require.NoError(t, err)
	assert.Equal(t, 1, q.page)
	assert.Equal(t, 25, q.perPage)
}

func TestParseListArgs_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"bogus"},
		{"color=red"},
		{"page=zero"},
		{"page=0"},
		{"per=-1"},
		{"org="},
	} {
		_, err := parseListArgs(args)
		assert.Error(t, err, "args %v", args)
	}
}
