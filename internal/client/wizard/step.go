package wizard

// Step enumerates the wizard screens in order. Movement is one step at a
// time, with a single exception: the explicit skip from StepUpload straight
// to StepPersonal.
type Step int

const (
	StepUpload Step = iota
	StepPersonal
	StepProfessional
	StepEducation
	StepExperience
	StepPreferences
	StepDemographics
)

// StepCount is the total number of wizard steps.
const StepCount = int(StepDemographics) + 1

func (s Step) String() string {
	switch s {
	case StepUpload:
		return "Resume Upload"
	case StepPersonal:
		return "Personal"
	case StepProfessional:
		return "Professional"
	case StepEducation:
		return "Education"
	case StepExperience:
		return "Experience"
	case StepPreferences:
		return "Preferences"
	case StepDemographics:
		return "Demographics"
	default:
		return "Unknown"
	}
}

// Terminal reports whether s is the final step, whose forward action submits
// the profile instead of advancing.
func (s Step) Terminal() bool {
	return s == StepDemographics
}
