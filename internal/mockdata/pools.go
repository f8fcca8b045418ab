package mockdata

// Fixed value pools the generator draws from. Keep these in sync with the
// organization filter options exposed by the dashboard.

var organizations = []string{
	"Lendsqr", "Irorun", "Lendstar", "LAPO", "Fairmoney", "Kuda",
	"Sterling Bank", "GTBank",
}

var firstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emma", "Chris", "Lisa",
	"Daniel", "Rachel", "James", "Mary", "Robert", "Patricia", "William",
	"Jennifer", "Richard", "Elizabeth", "Thomas", "Linda",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var genders = []string{"Male", "Female"}

var maritalStatuses = []string{"Single", "Married", "Divorced", "Widowed"}

var residences = []string{
	"Parent's Apartment", "Own House", "Rented Apartment", "Company Apartment",
}

var educationLevels = []string{"B.Sc", "M.Sc", "PhD", "HND", "OND", "SSCE"}

var employmentStatuses = []string{"Employed", "Self-employed", "Unemployed", "Student"}

var sectors = []string{
	"FinTech", "Healthcare", "Education", "Retail", "Technology",
	"Agriculture", "Manufacturing", "Transportation",
}

var relationships = []string{"Father", "Mother", "Brother", "Sister", "Friend", "Colleague"}

var emailProviders = []string{"gmail.com", "yahoo.com", "outlook.com", "lendsqr.com"}
