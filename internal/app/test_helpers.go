package app

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/vk/prodcat/internal/hcl"
	"github.com/vk/prodcat/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. input is fed to
// the session as the user's keystrokes.
func SetupAppTest(t *testing.T, cfg *Config, input string) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(strings.NewReader(input), out, logBuffer, cfg, hcl.NewLoader())

	t.Cleanup(func() {
		if os.Getenv("PRODCAT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
