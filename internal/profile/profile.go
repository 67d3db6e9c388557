package profile

// Profile is the canonical resume record produced by Normalize. Every leaf
// field is a string or a slice of strings, never nil, so downstream consumers
// (the HTML renderer in particular) never need nil checks.
type Profile struct {
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Website        string     `json:"website"`
	Summary        string     `json:"summary"`
	WorkExperience []WorkItem `json:"work_experience"`
	Education      []EduItem  `json:"education"`
	Skills         []string   `json:"skills"`
}

type WorkItem struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Dates            string   `json:"dates"`
	Responsibilities []string `json:"responsibilities"`
}

type EduItem struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Dates      string `json:"dates"`
}

// Fallback literals substituted for missing or malformed fields.
const (
	FallbackName             = "Name not found"
	FallbackEmail            = "Email not found"
	FallbackPhone            = "Phone not found"
	FallbackWebsite          = "Website not found"
	FallbackSummary          = "Summary not found"
	FallbackJobTitle         = "Job title not found"
	FallbackCompany          = "Company not found"
	FallbackDates            = "Dates not found"
	FallbackDegree           = "Degree not found"
	FallbackUniversity       = "University not found"
	FallbackResponsibilities = "Responsibilities not found"
	FallbackSkills           = "Skills not found"
)
