package models

import "time"

// Profile is the server's view of a created profile.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Headline  string    `json:"headline"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateProfileRequest is the payload sent to the profile service on submit.
type CreateProfileRequest struct {
	Name             string `json:"name"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	Email            string `json:"email,omitempty"`
	PhoneCountryCode string `json:"phoneCountryCode,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`

	StreetAddress string   `json:"streetAddress,omitempty"`
	CurrentCity   string   `json:"currentCity,omitempty"`
	State         string   `json:"state,omitempty"`
	Country       string   `json:"country,omitempty"`
	Zipcode       string   `json:"zipcode,omitempty"`
	Timezone      Timezone `json:"timezone,omitempty"`

	Headline          string   `json:"headline,omitempty"`
	Summary           string   `json:"summary,omitempty"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Skills            []string `json:"skills"`
	LinkedInURL       string   `json:"linkedinUrl,omitempty"`

	Education  []EducationItem  `json:"education"`
	Experience []ExperienceItem `json:"experience"`

	WorkAuthorization   WorkAuthorization `json:"workAuthorization,omitempty"`
	RequiresSponsorship bool              `json:"requiresSponsorship"`
}

// NewCreateProfileRequest finalizes a draft for submission. The skill list is
// re-derived from the raw skills input here, never taken from anywhere else.
func NewCreateProfileRequest(d ProfileDraft) CreateProfileRequest {
	return CreateProfileRequest{
		Name:             d.Name,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		PhoneCountryCode: d.PhoneCountryCode,
		PhoneNumber:      d.PhoneNumber,

		StreetAddress: d.StreetAddress,
		CurrentCity:   d.CurrentCity,
		State:         d.State,
		Country:       d.Country,
		Zipcode:       d.Zipcode,
		Timezone:      d.Timezone,

		Headline:          d.Headline,
		Summary:           d.Summary,
		YearsOfExperience: d.YearsOfExperience,
		Skills:            d.Skills(),
		LinkedInURL:       d.LinkedInURL,

		Education:  d.Education,
		Experience: d.Experience,

		WorkAuthorization:   d.WorkAuthorization,
		RequiresSponsorship: d.RequiresSponsorship,
	}
}

// Notification is one entry in the user's notification feed.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Application is the detail view of one job application.
type Application struct {
	ID        string    `json:"id"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	AppliedAt time.Time `json:"appliedAt"`
}

// Subscription is the user's current subscription tier.
type Subscription struct {
	Tier     string    `json:"tier"`
	Active   bool      `json:"active"`
	RenewsAt time.Time `json:"renewsAt"`
}
