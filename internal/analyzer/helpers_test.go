package analyzer

import (
	"github.com/danieljhkim/dupekeys/internal/profiles"
	"github.com/danieljhkim/dupekeys/internal/value"
)

// profile builds a Profile whose items each carry one PayloadContent map.
func profile(name string, contents ...map[string]any) profiles.Profile {
	p := profiles.Profile{Name: name}
	for _, c := range contents {
		p.Items = append(p.Items, profiles.PayloadItem{
			Type:    "com.example.test",
			Content: value.FromNative(c),
			Valid:   true,
		})
	}
	return p
}

// mcx builds a managed-preferences PayloadContent entry forcing settings.
func mcx(settings ...map[string]any) map[string]any {
	forced := make([]any, 0, len(settings))
	for _, s := range settings {
		forced = append(forced, map[string]any{"mcx_preference_settings": s})
	}
	return map[string]any{
		ManagedPreferencesKey: map[string]any{"Forced": forced},
	}
}

func group(key string, sources ...Source) KeyGroup {
	return KeyGroup{Key: key, Sources: sources}
}

func src(profile string, v any) Source {
	return Source{Profile: profile, Value: value.FromNative(v)}
}
