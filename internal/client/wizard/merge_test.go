package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ananyev/jobpilot/internal/client/models"
)

func TestMerge_IdentityAlwaysOverwritten(t *testing.T) {
	current := models.ProfileDraft{
		FirstName:   "Old",
		LastName:    "Value",
		Email:       "old@example.org",
		PhoneNumber: "000",
	}
	parsed := models.ParsedResume{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.org",
		PhoneNumber: "555-0100",
	}

	got := Merge(current, parsed)

	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "jane@example.org", got.Email)
	assert.Equal(t, "555-0100", got.PhoneNumber)
}

func TestMerge_SecondaryFieldsFillOnlyWhenEmpty(t *testing.T) {
	t.Run("preset values survive", func(t *testing.T) {
		current := models.ProfileDraft{
			Headline:          "Senior Eng",
			Summary:           "my summary",
			YearsOfExperience: 7,
			LinkedInURL:       "https://linkedin.com/in/jane",
		}
		parsed := models.ParsedResume{
			Headline:          "SWE",
			Summary:           "parsed summary",
			YearsOfExperience: 3,
			LinkedInURL:       "https://linkedin.com/in/parsed",
		}

		got := Merge(current, parsed)

		assert.Equal(t, "Senior Eng", got.Headline)
		assert.Equal(t, "my summary", got.Summary)
		assert.Equal(t, 7, got.YearsOfExperience)
		assert.Equal(t, "https://linkedin.com/in/jane", got.LinkedInURL)
	})

	t.Run("empty values are filled", func(t *testing.T) {
		parsed := models.ParsedResume{
			Headline:          "SWE",
			Summary:           "parsed summary",
			YearsOfExperience: 3,
			LinkedInURL:       "https://linkedin.com/in/parsed",
		}

		got := Merge(models.ProfileDraft{}, parsed)

		assert.Equal(t, "SWE", got.Headline)
		assert.Equal(t, "parsed summary", got.Summary)
		assert.Equal(t, 3, got.YearsOfExperience)
		assert.Equal(t, "https://linkedin.com/in/parsed", got.LinkedInURL)
	})
}

func TestMerge_SkillsRenderAsJoinedInput(t *testing.T) {
	got := Merge(models.ProfileDraft{}, models.ParsedResume{Skills: []string{"Go", "Rust"}})
	assert.Equal(t, "Go, Rust", got.SkillsInput)
	assert.Equal(t, []string{"Go", "Rust"}, got.Skills())

	// user-entered skills are never clobbered
	got = Merge(models.ProfileDraft{SkillsInput: "Python"}, models.ParsedResume{Skills: []string{"Go"}})
	assert.Equal(t, "Python", got.SkillsInput)
}

func TestMerge_ListsReplacedWholesale(t *testing.T) {
	current := models.ProfileDraft{
		Education:  []models.EducationItem{{School: "Manual U"}},
		Experience: []models.ExperienceItem{{Company: "Manual Inc"}, {Company: "Other"}},
	}
	parsed := models.ParsedResume{
		Education:  []models.EducationItem{{School: "Parsed Tech"}},
		Experience: []models.ExperienceItem{{Company: "Parsed Corp"}},
	}

	got := Merge(current, parsed)

	assert.Equal(t, []models.EducationItem{{School: "Parsed Tech"}}, got.Education)
	assert.Equal(t, []models.ExperienceItem{{Company: "Parsed Corp"}}, got.Experience)
}

func TestMerge_AbsentListsLeaveDraftAlone(t *testing.T) {
	current := models.ProfileDraft{
		Education: []models.EducationItem{{School: "Manual U"}},
	}

	got := Merge(current, models.ParsedResume{Headline: "SWE"})

	assert.Equal(t, []models.EducationItem{{School: "Manual U"}}, got.Education)

	// an explicitly empty parsed list does replace
	got = Merge(current, models.ParsedResume{Education: []models.EducationItem{}})
	assert.Empty(t, got.Education)
}

func TestMerge_NameComposedOnlyWhenEmpty(t *testing.T) {
	parsed := models.ParsedResume{FirstName: "Jane", LastName: "Doe"}

	got := Merge(models.ProfileDraft{}, parsed)
	assert.Equal(t, "Jane Doe", got.Name)

	got = Merge(models.ProfileDraft{Name: "J. Doe"}, parsed)
	assert.Equal(t, "J. Doe", got.Name)
}

func TestMerge_IsPure(t *testing.T) {
	current := models.ProfileDraft{
		Headline:  "Senior Eng",
		Education: []models.EducationItem{{School: "Manual U"}},
	}
	parsed := models.ParsedResume{
		Education: []models.EducationItem{{School: "Parsed Tech"}},
	}

	got := Merge(current, parsed)
	got.Education[0].School = "Mutated"
	parsed.Education[0].School = "Also Mutated"

	assert.Equal(t, "Manual U", current.Education[0].School)
	assert.Equal(t, "Senior Eng", current.Headline)
}
