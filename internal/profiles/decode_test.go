package profiles

import (
	"errors"
	"testing"

	"github.com/danieljhkim/dupekeys/internal/value"
)

const samplePlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>_computerlevel</key>
	<array>
		<dict>
			<key>ProfileDisplayName</key>
			<string>Security Baseline</string>
			<key>ProfileIdentifier</key>
			<string>com.example.security</string>
			<key>ProfileItems</key>
			<array>
				<dict>
					<key>PayloadType</key>
					<string>com.apple.screensaver</string>
					<key>PayloadContent</key>
					<dict>
						<key>askForPassword</key>
						<true/>
						<key>askForPasswordDelay</key>
						<integer>5</integer>
					</dict>
				</dict>
				<dict>
					<key>PayloadType</key>
					<string>com.example.broken</string>
					<key>PayloadContent</key>
					<string>not a dictionary</string>
				</dict>
			</array>
		</dict>
		<dict>
			<key>ProfileItems</key>
			<array>
				<dict>
					<key>PayloadContent</key>
					<dict>
						<key>PayloadContentManagedPreferences</key>
						<dict>
							<key>com.apple.Safari</key>
							<dict>
								<key>Forced</key>
								<array>
									<dict>
										<key>mcx_preference_settings</key>
										<dict>
											<key>HomePage</key>
											<string>https://intranet.example.com</string>
										</dict>
									</dict>
								</array>
							</dict>
						</dict>
					</dict>
				</dict>
			</array>
		</dict>
		<string>stray entry</string>
	</array>
</dict>
</plist>
`

func TestDecode(t *testing.T) {
	profiles, err := Decode([]byte(samplePlist))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles (stray entry skipped), got %d", len(profiles))
	}

	first := profiles[0]
	if first.Name != "Security Baseline" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Identifier != "com.example.security" {
		t.Errorf("Identifier = %q", first.Identifier)
	}
	if len(first.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(first.Items))
	}

	item := first.Items[0]
	if !item.Valid {
		t.Fatal("first item should be valid")
	}
	if item.Type != "com.apple.screensaver" {
		t.Errorf("Type = %q", item.Type)
	}
	keys := item.ContentKeys()
	if len(keys) != 2 || keys[0] != "askForPassword" || keys[1] != "askForPasswordDelay" {
		t.Errorf("ContentKeys() = %v", keys)
	}
	delay, _ := item.Content.Get("askForPasswordDelay")
	if !value.Equal(delay, value.NewInt(5)) {
		t.Errorf("askForPasswordDelay = %v, want 5", delay)
	}

	if first.Items[1].Valid {
		t.Error("item with non-dictionary PayloadContent should be invalid")
	}
	if first.Items[1].ContentKeys() != nil {
		t.Error("invalid item should have no content keys")
	}

	second := profiles[1]
	if second.Name != "" {
		t.Errorf("missing display name should decode as empty, got %q", second.Name)
	}
	if len(second.Items) != 1 || !second.Items[0].Valid {
		t.Fatalf("expected one valid item, got %+v", second.Items)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "truncated xml",
			data:    `<?xml version="1.0" encoding="UTF-8"?><plist version="1.0"><dict><key>_computerlevel</key><array><dict>`,
			wantErr: ErrDecode,
		},
		{
			name:    "empty",
			data:    "",
			wantErr: ErrDecode,
		},
		{
			name: "missing computer level",
			data: `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0"><dict><key>_userlevel</key><array/></dict></plist>`,
			wantErr: ErrNoComputerLevel,
		},
		{
			name: "computer level is not a list",
			data: `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0"><dict><key>_computerlevel</key><string>x</string></dict></plist>`,
			wantErr: ErrNoComputerLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("error = %v, should wrap ErrDecode", err)
			}
		})
	}
}

func TestDecode_EmptyComputerLevel(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0"><dict><key>_computerlevel</key><array/></dict></plist>`

	profiles, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("expected no profiles, got %d", len(profiles))
	}
}
