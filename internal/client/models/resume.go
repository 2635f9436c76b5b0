package models

// ResumeFile is a transient reference to the picked resume. It exists for the
// duration of one wizard session and is discarded after a successful
// submission or on exit.
type ResumeFile struct {
	URI      string
	Name     string
	MimeType string
	Data     []byte
}

// ParsedResume is the subset of profile fields the resume parser service can
// extract. Absent lists are nil; present-but-empty lists are empty slices.
type ParsedResume struct {
	FirstName         string           `json:"firstName"`
	LastName          string           `json:"lastName"`
	Email             string           `json:"email"`
	PhoneNumber       string           `json:"phoneNumber"`
	Headline          string           `json:"headline"`
	Summary           string           `json:"summary"`
	YearsOfExperience int              `json:"yearsOfExperience"`
	Skills            []string         `json:"skills"`
	LinkedInURL       string           `json:"linkedinUrl"`
	Education         []EducationItem  `json:"education"`
	Experience        []ExperienceItem `json:"experience"`
}
