package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/prilive-com/notigo/internal/testutil"
)

// notigoEnv lists every variable the CLI reads, so tests start from a clean
// slate regardless of the host environment.
var notigoEnv = []string{
	"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "TELEGRAM_API_BASE_URL",
	"NOTIGO_PARSE_MODE", "NOTIGO_MESSAGE_PREFIX", "NOTIGO_MESSAGE_SUFFIX",
	"NOTIGO_DISABLE_WEB_PAGE_PREVIEW", "NOTIGO_ESCAPE_MARKDOWN",
	"NOTIGO_ESCAPE_HTML", "NOTIGO_OBFUSCATE_EMAILS", "NOTIGO_TRUNCATE",
	"NOTIGO_TIMEOUT", "NOTIGO_RETRY_COUNT", "NOTIGO_RETRY_DELAY",
	"RATE_LIMIT_REQUESTS", "RATE_LIMIT_BURST",
	"BREAKER_MAX_REQUESTS", "BREAKER_INTERVAL", "BREAKER_TIMEOUT",
}

// clearCLIEnv unsets every CLI variable for the duration of the test.
// t.Setenv registers the restore; Unsetenv leaves the variable absent
// rather than empty.
func clearCLIEnv(t *testing.T) {
	t.Helper()
	for _, k := range notigoEnv {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// chdir moves the working directory for the duration of the test and
// restores it on cleanup. Stand-in for testing.T.Chdir, which requires
// Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

// setupCLIEnv points the CLI at a mock API server with test credentials.
// The working directory moves to a temp dir so no stray notigo.yaml leaks
// into the run.
func setupCLIEnv(t *testing.T) *testutil.MockTelegramServer {
	t.Helper()

	clearCLIEnv(t)
	chdir(t, t.TempDir())

	server := testutil.NewMockServer(t)
	t.Setenv("TELEGRAM_API_BASE_URL", server.BaseURL())
	t.Setenv("TELEGRAM_BOT_TOKEN", testutil.TestToken)
	t.Setenv("TELEGRAM_CHAT_ID", testutil.TestChatID)
	return server
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func waitFor(t *testing.T, duration time.Duration, fn func() bool) {
	t.Helper()
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", duration)
}
