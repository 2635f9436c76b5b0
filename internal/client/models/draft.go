// Package models holds the client-side data shapes: the profile draft
// assembled by the wizard, parse results, and the DTOs returned by the
// remote services.
package models

import "strings"

// Timezone is one of the fixed timezone codes offered by the profile form,
// or TimezoneOther.
type Timezone string

const (
	TimezoneEastern  Timezone = "EST"
	TimezoneCentral  Timezone = "CST"
	TimezoneMountain Timezone = "MST"
	TimezonePacific  Timezone = "PST"
	TimezoneOther    Timezone = "other"
)

// WorkAuthorization describes the candidate's eligibility to work.
type WorkAuthorization string

const (
	WorkAuthCitizen           WorkAuthorization = "citizen"
	WorkAuthPermanentResident WorkAuthorization = "permanent_resident"
	WorkAuthVisa              WorkAuthorization = "visa"
	WorkAuthOther             WorkAuthorization = "other"
)

// ProfileDraft is the in-progress profile assembled across wizard steps.
// It is owned by a single wizard instance for the duration of one creation
// session and discarded after a successful submission.
type ProfileDraft struct {
	Name             string
	FirstName        string
	LastName         string
	Email            string
	PhoneCountryCode string
	PhoneNumber      string

	StreetAddress string
	CurrentCity   string
	State         string
	Country       string
	Zipcode       string
	Timezone      Timezone

	Headline          string
	Summary           string
	YearsOfExperience int
	// SkillsInput is the raw comma-separated skills string exactly as typed.
	// It is the single source of truth: the skill list is derived from it at
	// submission time and never stored separately.
	SkillsInput string
	LinkedInURL string

	Education  []EducationItem
	Experience []ExperienceItem

	WorkAuthorization   WorkAuthorization
	RequiresSponsorship bool
}

// Skills derives the final skill list from the raw input.
func (d *ProfileDraft) Skills() []string {
	return SplitSkills(d.SkillsInput)
}

// SplitSkills splits a comma-separated skills string, trimming whitespace and
// dropping empty segments. Splitting the same string twice yields the same
// result.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AddEducation appends an education entry.
func (d *ProfileDraft) AddEducation(item EducationItem) {
	d.Education = append(d.Education, item)
}

// RemoveEducation deletes the entry at index i, preserving order. It reports
// whether the index was in range.
func (d *ProfileDraft) RemoveEducation(i int) bool {
	if i < 0 || i >= len(d.Education) {
		return false
	}
	d.Education = append(d.Education[:i], d.Education[i+1:]...)
	return true
}

// AddExperience appends an experience entry.
func (d *ProfileDraft) AddExperience(item ExperienceItem) {
	d.Experience = append(d.Experience, item)
}

// RemoveExperience deletes the entry at index i, preserving order. It reports
// whether the index was in range.
func (d *ProfileDraft) RemoveExperience(i int) bool {
	if i < 0 || i >= len(d.Experience) {
		return false
	}
	d.Experience = append(d.Experience[:i], d.Experience[i+1:]...)
	return true
}

// EducationItem is one education entry on the profile.
type EducationItem struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Location     string `json:"location"`
}

// ExperienceItem is one work-experience entry on the profile.
type ExperienceItem struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}
