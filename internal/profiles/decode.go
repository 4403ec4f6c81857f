package profiles

import (
	"bytes"
	"fmt"

	"howett.net/plist"

	"github.com/danieljhkim/dupekeys/internal/value"
)

// Decode parses a property-list document produced by the profiles tool and
// returns the computer-level profiles in document order.
func Decode(data []byte) ([]Profile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecode)
	}

	var doc map[string]interface{}
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is not a dictionary", ErrDecode)
	}

	raw, ok := doc[KeyComputerLevel]
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrNoComputerLevel)
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s is %T", ErrDecode, ErrNoComputerLevel, KeyComputerLevel, raw)
	}

	profiles := make([]Profile, 0, len(list))
	for _, entry := range list {
		dict, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		profiles = append(profiles, decodeProfile(dict))
	}
	return profiles, nil
}

func decodeProfile(dict map[string]interface{}) Profile {
	p := Profile{
		Name:       stringField(dict, KeyDisplayName),
		Identifier: stringField(dict, KeyIdentifier),
	}

	items, ok := dict[KeyItems].([]interface{})
	if !ok {
		return p
	}

	for _, raw := range items {
		itemDict, ok := raw.(map[string]interface{})
		if !ok {
			p.Items = append(p.Items, PayloadItem{})
			continue
		}
		p.Items = append(p.Items, decodeItem(itemDict))
	}
	return p
}

func decodeItem(dict map[string]interface{}) PayloadItem {
	item := PayloadItem{Type: stringField(dict, KeyPayloadType)}

	content, ok := dict[KeyPayloadContent].(map[string]interface{})
	if !ok {
		return item
	}
	item.Content = value.FromNative(content)
	item.Valid = true
	return item
}

func stringField(dict map[string]interface{}, key string) string {
	s, _ := dict[key].(string)
	return s
}
