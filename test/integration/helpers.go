package integration

import (
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/dupekeys/internal/clock"
	"github.com/danieljhkim/dupekeys/internal/config"
	"github.com/danieljhkim/dupekeys/internal/engine"
	"github.com/danieljhkim/dupekeys/internal/hash"
	"github.com/danieljhkim/dupekeys/internal/privilege"
	"github.com/danieljhkim/dupekeys/internal/profiles"
)

// testFS is a filesystem implementation that keeps files in memory for testing
type testFS struct {
	files map[string][]byte
}

func newTestFS() *testFS {
	return &testFS{files: make(map[string][]byte)}
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, ok := fs.files[path]
	return ok, nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

var fixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func testSettings() config.Settings {
	return config.Settings{
		Banner: config.DefaultBanner,
		Width:  config.DefaultWidth,
	}
}

// setupFileEngine wires an engine that reads the listing stored at path.
func setupFileEngine(t *testing.T, path string) (*engine.Engine, *testFS, *privilege.FakeChecker) {
	t.Helper()

	fs := newTestFS()
	priv := &privilege.FakeChecker{}
	settings := testSettings()
	source := profiles.NewFileSource(fs, path, settings.Banner)

	eng := engine.New(source, priv, hash.NewSHA256Hasher(), clock.NewFakeClock(fixedTime), settings)
	return eng, fs, priv
}

// plistDoc wraps computer-level profile dictionaries in a listing document,
// preceded by the banner the profiles utility prints.
func plistDoc(profileDicts ...string) string {
	return `There are ` + strconv.Itoa(len(profileDicts)) + ` configuration profiles installed
<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>_computerlevel</key>
	<array>
` + strings.Join(profileDicts, "\n") + `
	</array>
</dict>
</plist>
`
}

// profileDict builds one profile holding the given payload content dicts.
func profileDict(name string, contents ...string) string {
	var items strings.Builder
	for _, content := range contents {
		items.WriteString(`<dict>
				<key>PayloadType</key><string>com.example.settings</string>
				<key>PayloadContent</key>
				<dict>` + content + `</dict>
			</dict>`)
	}
	return `<dict>
		<key>ProfileDisplayName</key><string>` + name + `</string>
		<key>ProfileIdentifier</key><string>com.example.` + strings.ReplaceAll(strings.ToLower(name), " ", "-") + `</string>
		<key>ProfileItems</key>
		<array>` + items.String() + `</array>
	</dict>`
}

// forcedContent builds a managed-preferences payload forcing settings.
func forcedContent(settings string) string {
	return `<key>PayloadContentManagedPreferences</key>
	<dict>
		<key>Forced</key>
		<array>
			<dict>
				<key>mcx_preference_settings</key>
				<dict>` + settings + `</dict>
			</dict>
		</array>
	</dict>`
}
