// Package wizard implements the multi-step profile creation flow: step
// transitions with the personal-step gate, resume parse reconciliation, and
// submission orchestration against the remote profile service.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/ananyev/jobpilot/internal/client/api"
	"github.com/ananyev/jobpilot/internal/client/models"
	"github.com/ananyev/jobpilot/internal/client/picker"
	"github.com/ananyev/jobpilot/internal/logging"
)

// Wizard owns all state of one profile-creation session: the draft, the
// optional picked resume, the collected-but-unsent auxiliary data, and the
// current step. A wizard instance has a single logical writer (the step
// handlers of whatever screen is active) and must not be shared between
// sessions.
type Wizard struct {
	client api.Client
	picker picker.DocumentPicker
	log    logging.Logger

	step   Step
	draft  models.ProfileDraft
	prefs  models.JobPreferences
	demo   models.Demographics
	resume *models.ResumeFile

	submitting bool
}

func New(client api.Client, p picker.DocumentPicker, log logging.Logger) *Wizard {
	return &Wizard{client: client, picker: p, log: log}
}

func (w *Wizard) Step() Step { return w.step }

// Draft exposes the mutable draft to the active step's field handlers.
func (w *Wizard) Draft() *models.ProfileDraft { return &w.draft }

// Preferences and Demographics expose the auxiliary state. Both are
// collected only; see SubmitAuxiliary.
func (w *Wizard) Preferences() *models.JobPreferences { return &w.prefs }
func (w *Wizard) Demographics() *models.Demographics  { return &w.demo }

// ResumeAttached reports whether a file was picked this session, regardless
// of whether parsing succeeded.
func (w *Wizard) ResumeAttached() bool { return w.resume != nil }

// SkipUpload jumps from the upload step straight to the personal step
// without touching the draft.
func (w *Wizard) SkipUpload() error {
	if w.step != StepUpload {
		return ErrNotOnUploadStep
	}
	w.step = StepPersonal
	return nil
}

// AttachResume runs the pick → parse → merge flow from the upload step.
//
// Cancelling the picker returns picker.ErrCancelled with no state change.
// Once a file is picked it stays attached for the later upload even when
// parsing fails, and the wizard advances to the personal step no matter how
// the parse attempt settles. Uploading never traps the user. A parse
// failure is reported as ErrParseUnavailable purely so the caller can show
// a notice.
func (w *Wizard) AttachResume(ctx context.Context) error {
	if w.step != StepUpload {
		return ErrNotOnUploadStep
	}

	file, err := w.picker.Pick(ctx)
	if err != nil {
		// nothing was picked; stay put
		return err
	}
	w.resume = &file

	parsed, err := w.client.ParseResume(ctx, file)
	w.step = StepPersonal
	if err != nil {
		w.log.Warn(ctx, "resume parse failed", "file", file.Name, "error", err)
		return fmt.Errorf("%w: %v", ErrParseUnavailable, err)
	}
	if parsed != nil {
		w.draft = Merge(w.draft, *parsed)
	}
	return nil
}

// Next advances one step when the current step's gate passes. On the final
// step it returns ErrTerminalStep; the caller should Submit instead.
func (w *Wizard) Next() error {
	if w.step.Terminal() {
		return ErrTerminalStep
	}
	if err := w.gate(); err != nil {
		return err
	}
	w.step++
	return nil
}

// Prev moves one step back. Always allowed except on the first step.
func (w *Wizard) Prev() error {
	if w.step == StepUpload {
		return ErrAtFirstStep
	}
	w.step--
	return nil
}

// gate returns the blocking validation error for the current step, if any.
// Only the personal step gates (name must be non-empty); every other field
// is optional on the client and the server enforces the rest at submission.
func (w *Wizard) gate() error {
	if w.step == StepPersonal && strings.TrimSpace(w.draft.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// Submit finalizes the draft and sends it to the profile service, then
// uploads the picked resume (if any) against the created profile id.
//
// Re-entry while a submission is pending is rejected with ErrSubmitInFlight.
// Any failure preserves the draft and keeps the wizard on the final step so
// the user can retry without re-entering anything. A successful creation
// followed by a failed upload returns the created profile together with
// ErrResumeAttachFailed: the profile exists server-side without its
// attachment and there is no rollback. Only a fully successful submission
// clears the session state.
func (w *Wizard) Submit(ctx context.Context) (models.Profile, error) {
	if !w.step.Terminal() {
		return models.Profile{}, ErrNotTerminalStep
	}
	if w.submitting {
		return models.Profile{}, ErrSubmitInFlight
	}
	w.submitting = true
	defer func() { w.submitting = false }()

	if !w.prefs.IsZero() || !w.demo.IsZero() {
		w.log.Warn(ctx, "preferences and demographics stay on this device",
			"reason", "profile service does not accept them yet")
	}

	req := models.NewCreateProfileRequest(w.draft)
	profile, err := w.client.CreateProfile(ctx, req)
	if err != nil {
		w.log.Error(ctx, "profile creation failed", "error", err)
		return models.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	if w.resume != nil {
		if err := w.client.UploadResume(ctx, profile.ID, *w.resume); err != nil {
			w.log.Error(ctx, "resume upload failed after profile creation",
				"profileId", profile.ID, "error", err)
			return profile, fmt.Errorf("%w: %v", ErrResumeAttachFailed, err)
		}
	}

	w.log.Info(ctx, "profile created", "profileId", profile.ID, "resume", w.resume != nil)
	w.reset()
	return profile, nil
}

// SubmitAuxiliary is the explicit sink for preferences and demographics.
// The profile service has no endpoint for them yet, so the data stays local
// and the caller is told so instead of the input being silently dropped.
func (w *Wizard) SubmitAuxiliary(ctx context.Context) error {
	if w.prefs.IsZero() && w.demo.IsZero() {
		return nil
	}
	return ErrAuxiliaryNotSupported
}

// AuxiliaryPending reports whether any collected auxiliary data is waiting
// for server-side support.
func (w *Wizard) AuxiliaryPending() bool {
	return !w.prefs.IsZero() || !w.demo.IsZero()
}

// reset clears all session state after a fully successful submission.
func (w *Wizard) reset() {
	w.step = StepUpload
	w.draft = models.ProfileDraft{}
	w.prefs = models.JobPreferences{}
	w.demo = models.Demographics{}
	w.resume = nil
}
