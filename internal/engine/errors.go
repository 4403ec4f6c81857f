package engine

import (
	"github.com/danieljhkim/dupekeys/internal/privilege"
	"github.com/danieljhkim/dupekeys/internal/profiles"
)

var (
	// ErrPrivilege indicates the check needs root and is not running as root.
	ErrPrivilege = privilege.ErrNotRoot

	// ErrAcquire indicates the profile listing could not be obtained.
	ErrAcquire = profiles.ErrAcquire

	// ErrDecode indicates the profile listing could not be parsed or lacks
	// the computer-level profile list.
	ErrDecode = profiles.ErrDecode
)
