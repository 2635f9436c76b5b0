package wizard

import "errors"

var (
	// ErrNameRequired blocks leaving the personal step with an empty name.
	ErrNameRequired = errors.New("name is required")

	// ErrAtFirstStep is returned by Prev on the upload step.
	ErrAtFirstStep = errors.New("already at the first step")

	// ErrTerminalStep is returned by Next on the final step; submit instead.
	ErrTerminalStep = errors.New("final step reached")

	// ErrNotTerminalStep is returned by Submit before the final step.
	ErrNotTerminalStep = errors.New("not at the final step")

	// ErrNotOnUploadStep guards the upload-step-only actions.
	ErrNotOnUploadStep = errors.New("not on the upload step")

	// ErrSubmitInFlight rejects re-entrant submission while one is pending.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrParseUnavailable marks a failed or rejected resume parse. The
	// wizard still advances; the error only carries the notice.
	ErrParseUnavailable = errors.New("resume could not be parsed")

	// ErrResumeAttachFailed marks a failed resume upload after the profile
	// was already created. There is no rollback; the profile exists without
	// its attachment.
	ErrResumeAttachFailed = errors.New("resume attachment failed")

	// ErrAuxiliaryNotSupported reports that preferences and demographics
	// have no server-side destination yet and stay local.
	ErrAuxiliaryNotSupported = errors.New("preferences and demographics submission is not supported yet")
)
