package wizard

import (
	"strings"

	"github.com/ananyev/jobpilot/internal/client/models"
)

// Merge reconciles a resume parse result into the current draft without
// destroying user-entered values.
//
// Identity fields (first/last name, email, phone) are taken from the parse
// unconditionally: parsing happens before the personal step, so they are
// still blank. Fields the user could plausibly have set already (headline,
// summary, years of experience, skills, LinkedIn URL) treat the parsed value
// as a default and fill only when the draft value is empty. Education and
// experience are replaced wholesale whenever the parse result carries the
// list; they are never merged element-wise.
func Merge(current models.ProfileDraft, parsed models.ParsedResume) models.ProfileDraft {
	d := current

	d.FirstName = parsed.FirstName
	d.LastName = parsed.LastName
	d.Email = parsed.Email
	d.PhoneNumber = parsed.PhoneNumber

	if d.Name == "" {
		d.Name = strings.TrimSpace(parsed.FirstName + " " + parsed.LastName)
	}
	if d.Headline == "" {
		d.Headline = parsed.Headline
	}
	if d.Summary == "" {
		d.Summary = parsed.Summary
	}
	if d.YearsOfExperience == 0 && parsed.YearsOfExperience > 0 {
		d.YearsOfExperience = parsed.YearsOfExperience
	}
	if d.LinkedInURL == "" {
		d.LinkedInURL = parsed.LinkedInURL
	}
	if d.SkillsInput == "" && len(parsed.Skills) > 0 {
		d.SkillsInput = strings.Join(parsed.Skills, ", ")
	}

	if parsed.Education != nil {
		d.Education = append([]models.EducationItem(nil), parsed.Education...)
	}
	if parsed.Experience != nil {
		d.Experience = append([]models.ExperienceItem(nil), parsed.Experience...)
	}

	return d
}
