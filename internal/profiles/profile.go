package profiles

import (
	"github.com/danieljhkim/dupekeys/internal/value"
)

// Well-known keys in the profiles tool output.
const (
	KeyComputerLevel  = "_computerlevel"
	KeyDisplayName    = "ProfileDisplayName"
	KeyIdentifier     = "ProfileIdentifier"
	KeyItems          = "ProfileItems"
	KeyPayloadType    = "PayloadType"
	KeyPayloadContent = "PayloadContent"
)

// Profile is one installed configuration profile.
type Profile struct {
	// Name is the display name. It is empty when the profile has none and
	// is not guaranteed to be unique.
	Name string

	// Identifier is the reverse-DNS profile identifier, if present.
	Identifier string

	// Items are the payload items in document order.
	Items []PayloadItem
}

// PayloadItem is one configuration unit within a profile.
type PayloadItem struct {
	// Type is the PayloadType, e.g. com.apple.screensaver.
	Type string

	// Content is the PayloadContent dictionary. It is a Map value when
	// Valid is true.
	Content value.Value

	// Valid is false when PayloadContent is missing or not a dictionary.
	Valid bool
}

// ContentKeys returns the PayloadContent keys in sorted order, or nil for an
// invalid item.
func (p PayloadItem) ContentKeys() []string {
	if !p.Valid {
		return nil
	}
	return p.Content.Keys()
}
