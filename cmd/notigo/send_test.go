package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/notigo"
	"github.com/prilive-com/notigo/internal/testutil"
	"github.com/prilive-com/notigo/tg"
)

func TestSend_DeliversArguments(t *testing.T) {
	server := setupCLIEnv(t)

	stdout, _, err := runCLI(t, []string{"send", "deploy", "*done*"}, "")

	require.NoError(t, err)
	assert.Equal(t, "sent message 1\n", stdout)

	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertPath(t, server.SendMessagePath(testutil.TestToken))
	cap.AssertJSONField(t, "chat_id", testutil.TestChatID)
	cap.AssertJSONField(t, "text", `deploy \*done\*`)
	cap.AssertJSONField(t, "parse_mode", "MarkdownV2")
}

func TestSend_ReadsStdin(t *testing.T) {
	server := setupCLIEnv(t)

	stdout, _, err := runCLI(t, []string{"send"}, "from stdin\n")

	require.NoError(t, err)
	assert.Equal(t, "sent message 1\n", stdout)

	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertJSONField(t, "text", "from stdin")
}

func TestSend_FlagOverrides(t *testing.T) {
	server := setupCLIEnv(t)

	_, _, err := runCLI(t, []string{
		"send", "hello *there*",
		"--chat-id", "@ops",
		"--parse-mode", "plain",
		"--preview", "true",
	}, "")

	require.NoError(t, err)

	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertJSONField(t, "chat_id", "@ops")
	cap.AssertJSONField(t, "text", "hello *there*")
	cap.AssertJSONFieldAbsent(t, "parse_mode")
	cap.AssertJSONFieldAbsent(t, "disable_web_page_preview")
}

func TestSend_ConfigFileFlag(t *testing.T) {
	server := setupCLIEnv(t)
	path := writeConfigFile(t, "message_prefix: \"[cfg] \"\n")

	_, _, err := runCLI(t, []string{"--config", path, "send", "hello"}, "")

	require.NoError(t, err)

	// The prefix frames the message after escaping and stays literal.
	cap := server.LastCapture()
	require.NotNil(t, cap)
	cap.AssertJSONField(t, "text", "[cfg] hello")
}

func TestSend_MalformedOverrideFails(t *testing.T) {
	server := setupCLIEnv(t)

	_, _, err := runCLI(t, []string{"send", "hello", "--truncate", "banana"}, "")

	var valErr *tg.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "truncate", valErr.Key)
	assert.Equal(t, 2, exitCode(err))
	assert.Equal(t, 0, server.CaptureCount())
}

func TestSend_MissingTokenFails(t *testing.T) {
	server := setupCLIEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, _, err := runCLI(t, []string{"send", "hello"}, "")

	var cfgErr *tg.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "token", cfgErr.Key)
	assert.Equal(t, 2, exitCode(err))
	assert.Equal(t, 0, server.CaptureCount())
}

func TestSend_DeliveryFailureExitsNonzero(t *testing.T) {
	server := setupCLIEnv(t)
	server.On(server.SendMessagePath(testutil.TestToken), func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyUnauthorized(w)
	})

	_, _, err := runCLI(t, []string{"send", "hello"}, "")

	var delErr *notigo.DeliveryError
	require.ErrorAs(t, err, &delErr)
	assert.Equal(t, 1, delErr.Attempts)
	assert.Equal(t, 1, exitCode(err))
}
