package models

// JobPreferences and Demographics are collected by the last two wizard steps
// but not yet accepted by the profile service. They stay on the device; see
// the wizard's SubmitAuxiliary.

type JobPreferences struct {
	SecurityClearance string
	NoticePeriod      string
	// DesiredSalary is collected but unused even locally.
	DesiredSalary string
}

func (p JobPreferences) IsZero() bool {
	return p == JobPreferences{}
}

type Demographics struct {
	Gender           string
	DateOfBirth      string
	Race             string
	DisabilityStatus string
	VeteranStatus    string
}

func (d Demographics) IsZero() bool {
	return d == Demographics{}
}
