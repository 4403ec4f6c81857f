package analyzer

import (
	"log/slog"

	"github.com/danieljhkim/dupekeys/internal/profiles"
	"github.com/danieljhkim/dupekeys/internal/value"
)

const (
	// ManagedPreferencesKey marks a PayloadContent entry holding MCX
	// managed preferences.
	ManagedPreferencesKey = "PayloadContentManagedPreferences"

	forcedKey      = "Forced"
	mcxSettingsKey = "mcx_preference_settings"
)

// Entry is one preference definition: a key, the display name of the
// profile that set it, and the value it was set to.
type Entry struct {
	Key     string
	Profile string
	Value   value.Value
}

// Flatten extracts every preference definition from profiles, in profile,
// item and sorted-key order. Items whose PayloadContent is not a dictionary
// are skipped.
func Flatten(profs []profiles.Profile) []Entry {
	var entries []Entry
	for _, p := range profs {
		for i, item := range p.Items {
			if !item.Valid {
				slog.Debug("skipping malformed payload item", "profile", p.Name, "index", i, "type", item.Type)
				continue
			}
			entries = appendItem(entries, p.Name, item)
		}
	}
	return entries
}

func appendItem(entries []Entry, profile string, item profiles.PayloadItem) []Entry {
	for _, key := range item.ContentKeys() {
		v, _ := item.Content.Get(key)

		if key == ManagedPreferencesKey {
			if forced, ok := forcedSettings(v); ok {
				entries = appendForced(entries, profile, forced)
				continue
			}
			slog.Debug("managed preferences without a Forced list", "profile", profile)
		}

		entries = append(entries, Entry{Key: key, Profile: profile, Value: v})
	}
	return entries
}

// forcedSettings returns the Forced list of a managed-preferences value.
func forcedSettings(v value.Value) ([]value.Value, bool) {
	forced, ok := v.Get(forcedKey)
	if !ok || forced.Kind() != value.List {
		return nil, false
	}
	return forced.Items(), true
}

func appendForced(entries []Entry, profile string, forced []value.Value) []Entry {
	for _, mcx := range forced {
		settings, ok := mcx.Get(mcxSettingsKey)
		if !ok || settings.Kind() != value.Map {
			slog.Debug("skipping forced entry without preference settings", "profile", profile)
			continue
		}
		for _, key := range settings.Keys() {
			v, _ := settings.Get(key)
			entries = append(entries, Entry{Key: key, Profile: profile, Value: v})
		}
	}
	return entries
}
