// Package mockdata produces the synthetic user records the dashboard is
// seeded with on first run. Output is random but every record satisfies the
// model invariants: sequential unique ids, well-formed emails, a valid
// status and a join date no later than generation time.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/kehindeadewusi/lendboard/internal/models"
)

// DefaultCount is the collection size used when seeding an empty store.
const DefaultCount = 500

// dateRangeStart bounds generated join dates from below.
var dateRangeStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generator draws user records from the fixed value pools using the
// supplied random source.
type Generator struct {
	r   *rand.Rand
	now func() time.Time
}

// New returns a Generator backed by a randomly seeded PCG source.
func New() *Generator {
	return NewSeeded(rand.Uint64(), rand.Uint64())
}

// NewSeeded returns a deterministic Generator for the given PCG seed pair.
func NewSeeded(seed1, seed2 uint64) *Generator {
	return &Generator{r: rand.New(rand.NewPCG(seed1, seed2)), now: time.Now}
}

// Generate produces n user records with ids "1".."n". It performs no I/O
// and cannot fail.
func (g *Generator) Generate(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, g.user(i))
	}
	return users
}

func (g *Generator) user(i int) models.User {
	first := pick(g.r, firstNames)
	last := pick(g.r, lastNames)
	username := strings.ToLower(first) + strings.ToLower(last) + strconv.Itoa(i)

	second := g.guarantor()

	return models.User{
		Id:           strconv.Itoa(i),
		Organization: pick(g.r, organizations),
		Username:     username,
		Email:        g.email(first, last),
		PhoneNumber:  g.phoneNumber(),
		DateJoined:   g.dateJoined(),
		Status:       pick(g.r, models.AllStatuses),
		FullName:     first + " " + last,
		BVN:          "070" + g.digits8(),

		Gender:               pick(g.r, genders),
		MaritalStatus:        pick(g.r, maritalStatuses),
		Children:             g.children(),
		TypeOfResidence:      pick(g.r, residences),
		LevelOfEducation:     pick(g.r, educationLevels),
		EmploymentStatus:     pick(g.r, employmentStatuses),
		SectorOfEmployment:   pick(g.r, sectors),
		DurationOfEmployment: fmt.Sprintf("%d years", g.r.IntN(20)+1),
		OfficeEmail:          strings.ToLower(first) + "." + strings.ToLower(last) + "@company.com",
		MonthlyIncome:        g.monthlyIncome(),
		LoanRepayment:        g.loanRepayment(),
		SocialMediaHandle:    "@" + username,

		Guarantor:       g.guarantor(),
		SecondGuarantor: &second,
	}
}

func (g *Generator) guarantor() models.Guarantor {
	first := pick(g.r, firstNames)
	last := pick(g.r, lastNames)
	return models.Guarantor{
		FullName:     first + " " + last,
		PhoneNumber:  g.phoneNumber(),
		Email:        g.email(pick(g.r, firstNames), pick(g.r, lastNames)),
		Relationship: pick(g.r, relationships),
	}
}

func (g *Generator) email(first, last string) string {
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + pick(g.r, emailProviders)
}

// digits8 returns a random 8-digit string with no leading zero.
func (g *Generator) digits8() string {
	return strconv.Itoa(10000000 + g.r.IntN(90000000))
}

func (g *Generator) phoneNumber() string {
	return "080" + g.digits8()
}

// dateJoined picks a uniform instant between dateRangeStart and now and
// truncates it to its calendar date.
func (g *Generator) dateJoined() string {
	start := dateRangeStart.UnixMilli()
	end := g.now().UnixMilli()
	at := start + g.r.Int64N(end-start+1)
	return time.UnixMilli(at).UTC().Format("2006-01-02")
}

func (g *Generator) children() string {
	if g.r.IntN(2) == 0 {
		return "None"
	}
	return strconv.Itoa(g.r.IntN(5))
}

// monthlyIncome renders a naira range; the upper bound is an independent
// draw offset by 100k so it always exceeds the lower one.
func (g *Generator) monthlyIncome() string {
	const min, max = 50_000, 5_000_000
	lo := min + g.r.IntN(max-min+1)
	hi := min + g.r.IntN(max-min+1) + 100_000
	return formatNaira(lo) + " - " + formatNaira(hi)
}

func (g *Generator) loanRepayment() string {
	return formatNaira(10_000 + g.r.IntN(500_000))
}

// formatNaira renders n as "₦1,234,567".
func formatNaira(n int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	b.WriteString("₦")
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func pick[T any](r *rand.Rand, pool []T) T {
	return pool[r.IntN(len(pool))]
}
