package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ananyev/jobpilot/internal/client/models"
	"github.com/ananyev/jobpilot/internal/client/picker"
	"github.com/ananyev/jobpilot/internal/client/wizard"
)

// nav is the user's choice at the end of a wizard screen.
type nav int

const (
	navStay nav = iota
	navNext
	navBack
	navQuit
	navDone
)

// Wizard runs the interactive profile creation flow.
func (a *App) Wizard(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	p := &picker.PathPicker{
		MaxSize: a.config.ResumeMaxBytes,
		PromptFn: func() (string, error) {
			return getSimpleText(a.reader, "Path to the resume file (empty line to cancel)", os.Stdout)
		},
	}

	return a.runWizard(ctx, wizard.New(a.client, p, a.log))
}

func (a *App) runWizard(ctx context.Context, w *wizard.Wizard) error {
	for {
		printlnFn(fmt.Sprintf("--- Step %d of %d: %s ---", int(w.Step())+1, wizard.StepCount, w.Step()))

		act, err := a.runStep(ctx, w)
		if err != nil {
			return err
		}

		switch act {
		case navNext:
			if err := w.Next(); err != nil {
				if errors.Is(err, wizard.ErrNameRequired) {
					printlnFn("Name is required to continue")
					continue
				}
				printlnFn("Error:", err)
			}
		case navBack:
			if err := w.Prev(); err != nil {
				printlnFn("Already at the first step")
			}
		case navQuit:
			printlnFn("Wizard closed, nothing was submitted")
			return nil
		case navDone:
			return nil
		case navStay:
		}
	}
}

func (a *App) runStep(ctx context.Context, w *wizard.Wizard) (nav, error) {
	switch w.Step() {
	case wizard.StepUpload:
		return a.stepUpload(ctx, w)
	case wizard.StepPersonal:
		return a.stepPersonal(w)
	case wizard.StepProfessional:
		return a.stepProfessional(w)
	case wizard.StepEducation:
		return a.stepEducation(w)
	case wizard.StepExperience:
		return a.stepExperience(w)
	case wizard.StepPreferences:
		return a.stepPreferences(w)
	case wizard.StepDemographics:
		return a.stepDemographics(ctx, w)
	}
	return navQuit, nil
}

// stepUpload offers the optional resume upload. Parsing failures are
// reported but never block: the wizard moves on with the file attached.
func (a *App) stepUpload(ctx context.Context, w *wizard.Wizard) (nav, error) {
	choice, err := getSimpleText(a.reader, "[u]pload resume, [s]kip, [q]uit", os.Stdout)
	if err != nil {
		return navQuit, err
	}

	switch choice {
	case "u":
		err := w.AttachResume(ctx)
		switch {
		case err == nil:
			printlnFn("Resume parsed, fields were pre-filled where possible")
		case errors.Is(err, picker.ErrCancelled):
			return navStay, nil
		case errors.Is(err, wizard.ErrParseUnavailable):
			printlnFn("The resume could not be parsed; it will still be uploaded with your profile")
		default:
			printlnFn("Error:", err)
			return navStay, nil
		}
		// AttachResume already advanced the wizard
		return navStay, nil

	case "s":
		if err := w.SkipUpload(); err != nil {
			printlnFn("Error:", err)
		}
		return navStay, nil

	case "q":
		return navQuit, nil

	default:
		return navStay, nil
	}
}

func (a *App) stepPersonal(w *wizard.Wizard) (nav, error) {
	d := w.Draft()

	fields := []struct {
		label string
		value *string
	}{
		{"Full name", &d.Name},
		{"First name", &d.FirstName},
		{"Last name", &d.LastName},
		{"Email", &d.Email},
		{"Phone country code", &d.PhoneCountryCode},
		{"Phone number", &d.PhoneNumber},
		{"Street address", &d.StreetAddress},
		{"City", &d.CurrentCity},
		{"State", &d.State},
		{"Country", &d.Country},
		{"Zip code", &d.Zipcode},
	}
	for _, f := range fields {
		v, err := a.askField(f.label, *f.value)
		if err != nil {
			return navQuit, err
		}
		*f.value = v
	}

	tz, err := a.askField("Timezone (EST/CST/MST/PST/other)", string(d.Timezone))
	if err != nil {
		return navQuit, err
	}
	d.Timezone = models.Timezone(tz)

	return a.navPrompt(false)
}

func (a *App) stepProfessional(w *wizard.Wizard) (nav, error) {
	d := w.Draft()

	var err error
	if d.Headline, err = a.askField("Headline", d.Headline); err != nil {
		return navQuit, err
	}
	if d.Summary, err = a.askField("Summary", d.Summary); err != nil {
		return navQuit, err
	}

	years, err := a.askField("Years of experience", strconv.Itoa(d.YearsOfExperience))
	if err != nil {
		return navQuit, err
	}
	if n, convErr := strconv.Atoi(years); convErr == nil && n >= 0 {
		d.YearsOfExperience = n
	} else {
		printlnFn("Not a number, keeping", d.YearsOfExperience)
	}

	if d.SkillsInput, err = a.askField("Skills (comma-separated)", d.SkillsInput); err != nil {
		return navQuit, err
	}
	if d.LinkedInURL, err = a.askField("LinkedIn URL", d.LinkedInURL); err != nil {
		return navQuit, err
	}

	return a.navPrompt(false)
}

func (a *App) stepEducation(w *wizard.Wizard) (nav, error) {
	d := w.Draft()

	for {
		if len(d.Education) == 0 {
			printlnFn("No education entries")
		}
		for i, e := range d.Education {
			printlnFn(fmt.Sprintf("%d. %s, %s in %s (%s - %s)", i+1, e.School, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate))
		}

		choice, err := getSimpleText(a.reader, "[a]dd, [r]emove <n>, [d]one", os.Stdout)
		if err != nil {
			return navQuit, err
		}

		switch {
		case choice == "a":
			item, err := a.askEducation()
			if err != nil {
				return navQuit, err
			}
			d.AddEducation(item)

		case strings.HasPrefix(choice, "r"):
			if !a.removeIndexed(choice, d.RemoveEducation) {
				printlnFn("Usage: r <n>")
			}

		case choice == "d":
			return a.navPrompt(false)
		}
	}
}

func (a *App) askEducation() (models.EducationItem, error) {
	var item models.EducationItem
	fields := []struct {
		label string
		value *string
	}{
		{"School", &item.School},
		{"Degree", &item.Degree},
		{"Field of study", &item.FieldOfStudy},
		{"Start date (YYYY-MM)", &item.StartDate},
		{"End date (YYYY-MM, empty if ongoing)", &item.EndDate},
		{"Location", &item.Location},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.label, os.Stdout)
		if err != nil {
			return item, err
		}
		*f.value = v
	}
	return item, nil
}

func (a *App) stepExperience(w *wizard.Wizard) (nav, error) {
	d := w.Draft()

	for {
		if len(d.Experience) == 0 {
			printlnFn("No experience entries")
		}
		for i, e := range d.Experience {
			printlnFn(fmt.Sprintf("%d. %s at %s (%s - %s)", i+1, e.Title, e.Company, e.StartDate, e.EndDate))
		}

		choice, err := getSimpleText(a.reader, "[a]dd, [r]emove <n>, [d]one", os.Stdout)
		if err != nil {
			return navQuit, err
		}

		switch {
		case choice == "a":
			item, err := a.askExperience()
			if err != nil {
				return navQuit, err
			}
			d.AddExperience(item)

		case strings.HasPrefix(choice, "r"):
			if !a.removeIndexed(choice, d.RemoveExperience) {
				printlnFn("Usage: r <n>")
			}

		case choice == "d":
			return a.navPrompt(false)
		}
	}
}

func (a *App) askExperience() (models.ExperienceItem, error) {
	var item models.ExperienceItem
	fields := []struct {
		label string
		value *string
	}{
		{"Company", &item.Company},
		{"Title", &item.Title},
		{"Location", &item.Location},
		{"Start date (YYYY-MM)", &item.StartDate},
		{"End date (YYYY-MM, empty if current)", &item.EndDate},
		{"Description", &item.Description},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.label, os.Stdout)
		if err != nil {
			return item, err
		}
		*f.value = v
	}
	return item, nil
}

// removeIndexed parses "r <n>" and removes the 1-based entry via remove.
func (a *App) removeIndexed(choice string, remove func(int) bool) bool {
	parts := strings.Fields(choice)
	if len(parts) != 2 {
		return false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if !remove(n - 1) {
		printlnFn("No such entry")
	}
	return true
}

func (a *App) stepPreferences(w *wizard.Wizard) (nav, error) {
	p := w.Preferences()

	var err error
	if p.SecurityClearance, err = a.askField("Security clearance", p.SecurityClearance); err != nil {
		return navQuit, err
	}
	if p.NoticePeriod, err = a.askField("Notice period", p.NoticePeriod); err != nil {
		return navQuit, err
	}
	if p.DesiredSalary, err = a.askField("Desired salary", p.DesiredSalary); err != nil {
		return navQuit, err
	}

	d := w.Draft()
	auth, err := a.askField("Work authorization (citizen/permanent_resident/visa/other)", string(d.WorkAuthorization))
	if err != nil {
		return navQuit, err
	}
	d.WorkAuthorization = models.WorkAuthorization(auth)

	sponsor, err := a.askField("Requires sponsorship (y/n)", yesNo(d.RequiresSponsorship))
	if err != nil {
		return navQuit, err
	}
	d.RequiresSponsorship = sponsor == "y" || sponsor == "yes"

	return a.navPrompt(false)
}

func (a *App) stepDemographics(ctx context.Context, w *wizard.Wizard) (nav, error) {
	dm := w.Demographics()

	fields := []struct {
		label string
		value *string
	}{
		{"Gender", &dm.Gender},
		{"Date of birth (YYYY-MM-DD)", &dm.DateOfBirth},
		{"Race / ethnicity", &dm.Race},
		{"Disability status", &dm.DisabilityStatus},
		{"Veteran status", &dm.VeteranStatus},
	}
	printlnFn("All demographic questions are optional")
	for _, f := range fields {
		v, err := a.askField(f.label, *f.value)
		if err != nil {
			return navQuit, err
		}
		*f.value = v
	}

	act, err := a.navPrompt(true)
	if err != nil || act != navDone {
		return act, err
	}
	return a.submit(ctx, w)
}

// submit sends the profile and reports the outcome. A failed submission
// keeps the wizard on the final step so the user can retry or quit.
func (a *App) submit(ctx context.Context, w *wizard.Wizard) (nav, error) {
	if w.AuxiliaryPending() {
		printlnFn("Note: preferences and demographics are stored on this device only for now")
	}

	profile, err := w.Submit(ctx)
	switch {
	case err == nil:
		printlnFn("Profile created:", profile.ID)
		return navDone, nil

	case errors.Is(err, wizard.ErrResumeAttachFailed):
		printlnFn("Profile created:", profile.ID)
		printlnFn("The resume upload failed; please attach it again later")
		return navDone, nil

	case errors.Is(err, wizard.ErrSubmitInFlight):
		printlnFn("A submission is already in progress")
		return navStay, nil

	default:
		printlnFn("Submission failed:", err)
		printlnFn("Your answers are kept, you can retry")
		return navStay, nil
	}
}

// navPrompt asks where to go after a screen's fields are done. On the final
// screen the forward action is submit instead of next.
func (a *App) navPrompt(terminal bool) (nav, error) {
	prompt := "[n]ext, [b]ack, [q]uit"
	if terminal {
		prompt = "[s]ubmit, [b]ack, [q]uit"
	}

	for {
		choice, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return navQuit, err
		}
		switch choice {
		case "n":
			if !terminal {
				return navNext, nil
			}
		case "s":
			if terminal {
				return navDone, nil
			}
		case "b":
			return navBack, nil
		case "q":
			return navQuit, nil
		}
	}
}

// askField prompts for one field, showing the current value; an empty input
// keeps it.
func (a *App) askField(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return current, err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
