package profiles

import "errors"

var (
	// ErrDecode indicates the profile listing could not be parsed.
	ErrDecode = errors.New("failed to decode profile listing")

	// ErrNoComputerLevel indicates the listing has no computer-level
	// profile list.
	ErrNoComputerLevel = errors.New("computer-level profile list missing")

	// ErrAcquire indicates the profile listing could not be obtained.
	ErrAcquire = errors.New("failed to acquire profile listing")
)
