package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/kehindeadewusi/lendboard/internal/models"
	"github.com/kehindeadewusi/lendboard/internal/query"
)

func statusFromString(s string) models.Status {
	return models.Status(strings.ToLower(s))
}

func (a *App) renderUsers(page []models.User, q listQuery, total int) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORGANIZATION\tUSERNAME\tEMAIL\tPHONE\tDATE JOINED\tSTATUS")
	for _, u := range page {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.Id, u.Organization, u.Username, u.Email, u.PhoneNumber, u.DateJoined, u.Status)
	}
	w.Flush()

	totalPages := query.TotalPages(total, q.perPage)
	fmt.Fprintf(a.out, "Showing %d of %d users (page %d/%d)\n", len(page), total, q.page, totalPages)
	fmt.Fprintf(a.out, "Pages: %s\n", strings.Join(query.PageNumbers(q.page, totalPages), " "))
}

func (a *App) renderUserDetails(u *models.User) {
	fmt.Fprintf(a.out, "%s (id %s)\n", u.FullName, u.Id)
	fmt.Fprintf(a.out, "  Organization:\t%s\n", u.Organization)
	fmt.Fprintf(a.out, "  Username:\t%s\n", u.Username)
	fmt.Fprintf(a.out, "  Email:\t%s\n", u.Email)
	fmt.Fprintf(a.out, "  Phone:\t%s\n", u.PhoneNumber)
	fmt.Fprintf(a.out, "  BVN:\t%s\n", u.BVN)
	fmt.Fprintf(a.out, "  Date joined:\t%s\n", u.DateJoined)
	fmt.Fprintf(a.out, "  Status:\t%s\n", u.Status)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Personal:")
	fmt.Fprintf(a.out, "  Gender: %s, Marital status: %s, Children: %s\n", u.Gender, u.MaritalStatus, u.Children)
	fmt.Fprintf(a.out, "  Residence: %s, Education: %s\n", u.TypeOfResidence, u.LevelOfEducation)
	fmt.Fprintln(a.out, "Employment:")
	fmt.Fprintf(a.out, "  %s, %s sector, %s\n", u.EmploymentStatus, u.SectorOfEmployment, u.DurationOfEmployment)
	fmt.Fprintf(a.out, "  Office email: %s\n", u.OfficeEmail)
	fmt.Fprintf(a.out, "  Monthly income: %s, Loan repayment: %s\n", u.MonthlyIncome, u.LoanRepayment)
	fmt.Fprintf(a.out, "  Socials: %s\n", u.SocialMediaHandle)

	for i := 0; i < 2; i++ {
		g := u.GuarantorAt(i)
		fmt.Fprintf(a.out, "Guarantor %d:\n", i+1)
		fmt.Fprintf(a.out, "  %s (%s), %s, %s\n", g.FullName, g.Relationship, g.PhoneNumber, g.Email)
	}
}

func (a *App) renderStats(stats models.DashboardStats) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "USERS\t%d\n", stats.TotalUsers)
	fmt.Fprintf(w, "ACTIVE USERS\t%d\n", stats.ActiveUsers)
	fmt.Fprintf(w, "USERS WITH LOANS\t%d\n", stats.UsersWithLoans)
	fmt.Fprintf(w, "USERS WITH SAVINGS\t%d\n", stats.UsersWithSavings)
	w.Flush()
}
