// Package models defines the data types shared by the lendboard storage,
// facade and query layers: the User record, its status enum, the derived
// dashboard statistics and the filter parameters.
package models

// Status is the lifecycle state of a user record. It is the only mutable
// field of a User once the record has been generated.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusPending     Status = "pending"
	StatusBlacklisted Status = "blacklisted"
)

// AllStatuses lists every valid Status, in display order.
var AllStatuses = []Status{StatusActive, StatusInactive, StatusPending, StatusBlacklisted}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusBlacklisted:
		return true
	}
	return false
}

// Guarantor is a contact vouching for a user.
type Guarantor struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
}

// User is a single record of the admin dashboard. All fields except Status
// are immutable once generated. DateJoined is an ISO calendar date in
// YYYY-MM-DD form. SecondGuarantor is optional; use GuarantorAt to read
// guarantors with the fallback applied.
type User struct {
	Id           string `json:"id"`
	Organization string `json:"organization"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	DateJoined   string `json:"dateJoined"`
	Status       Status `json:"status"`
	FullName     string `json:"fullName"`
	BVN          string `json:"bvn,omitempty"`

	Gender               string `json:"gender"`
	MaritalStatus        string `json:"maritalStatus"`
	Children             string `json:"children"`
	TypeOfResidence      string `json:"typeOfResidence"`
	LevelOfEducation     string `json:"levelOfEducation"`
	EmploymentStatus     string `json:"employmentStatus"`
	SectorOfEmployment   string `json:"sectorOfEmployment"`
	DurationOfEmployment string `json:"durationOfEmployment"`
	OfficeEmail          string `json:"officeEmail"`
	MonthlyIncome        string `json:"monthlyIncome"`
	LoanRepayment        string `json:"loanRepayment"`
	SocialMediaHandle    string `json:"socialMediaHandle"`

	Guarantor       Guarantor  `json:"guarantor"`
	SecondGuarantor *Guarantor `json:"guarantor2,omitempty"`
}

// GuarantorAt returns the guarantor at index i (0 or 1). Index 1 falls back
// to the first guarantor when no second guarantor is present, so the
// fallback policy lives in one place instead of at every call site.
func (u *User) GuarantorAt(i int) Guarantor {
	if i == 1 && u.SecondGuarantor != nil {
		return *u.SecondGuarantor
	}
	return u.Guarantor
}

// DashboardStats is derived from the record collection on demand and never
// stored. UsersWithLoans and UsersWithSavings are fixed-ratio approximations;
// see api.GetDashboardStats.
type DashboardStats struct {
	TotalUsers       int `json:"totalUsers"`
	ActiveUsers      int `json:"activeUsers"`
	UsersWithLoans   int `json:"usersWithLoans"`
	UsersWithSavings int `json:"usersWithSavings"`
}

// FilterParams narrows a record collection. An empty field imposes no
// constraint (wildcard). Date matches DateJoined truncated to its
// YYYY-MM-DD calendar component.
type FilterParams struct {
	Organization string
	Username     string
	Email        string
	PhoneNumber  string
	Status       string
	Date         string
}

// IsZero reports whether every filter field is empty, i.e. the filter
// matches any record.
func (f FilterParams) IsZero() bool {
	return f == FilterParams{}
}
