package notigo_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notigo "github.com/prilive-com/notigo"
	"github.com/prilive-com/notigo/internal/testutil"
	"github.com/prilive-com/notigo/tg"
)

// newHTTPNotifier wires a Notifier to a real transport client pointed at the
// mock server, exercising the full stack down to the wire.
func newHTTPNotifier(t *testing.T, server *testutil.MockTelegramServer, mutate func(*notigo.Config)) (*notigo.Notifier, *testutil.FakeSleeper) {
	t.Helper()

	cfg := notigo.DefaultConfig()
	cfg.Token = tg.SecretToken(testutil.TestToken)
	cfg.ChatID = testutil.TestChatID
	if mutate != nil {
		mutate(&cfg)
	}

	client := testutil.NewTestClient(t, server.BaseURL())
	sleeper := &testutil.FakeSleeper{}
	n, err := notigo.New(cfg,
		notigo.WithTransport(client),
		notigo.WithSleeper(sleeper),
		notigo.WithLogger(testLogger()),
	)
	require.NoError(t, err)
	return n, sleeper
}

func TestNotifier_EndToEnd(t *testing.T) {
	server := testutil.NewMockServer(t)
	n, _ := newHTTPNotifier(t, server, nil)

	msg, err := n.Send(context.Background(), "Hello *world*")

	require.NoError(t, err)
	assert.Equal(t, 1, msg.MessageID)
	require.Equal(t, 1, server.CaptureCount())

	capture := server.LastCapture()
	capture.AssertMethod(t, http.MethodPost)
	capture.AssertPath(t, server.SendMessagePath(testutil.TestToken))
	capture.AssertContentType(t, "application/json")
	capture.AssertJSONField(t, "chat_id", testutil.TestChatID)
	capture.AssertJSONField(t, "text", `Hello \*world\*`)
	capture.AssertJSONField(t, "parse_mode", "MarkdownV2")
	capture.AssertJSONField(t, "disable_web_page_preview", true)
}

func TestNotifier_EndToEnd_MarkupFallback(t *testing.T) {
	server := testutil.NewMockServer(t)

	var calls int
	server.On(server.SendMessagePath(testutil.TestToken), func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			testutil.ReplyBadMarkup(w)
			return
		}
		testutil.ReplyMessage(w, 2)
	})

	n, sleeper := newHTTPNotifier(t, server, func(c *notigo.Config) {
		c.Formatting.EscapeMarkdown = false
	})

	msg, err := n.Send(context.Background(), "Alert: *unclosed")

	require.NoError(t, err)
	assert.Equal(t, 2, msg.MessageID)
	require.Equal(t, 2, server.CaptureCount())
	assert.Equal(t, 0, sleeper.CallCount())

	captures := server.Captures()
	captures[0].AssertJSONField(t, "parse_mode", "MarkdownV2")
	captures[0].AssertJSONField(t, "text", "Alert: *unclosed")
	captures[1].AssertJSONFieldAbsent(t, "parse_mode")
	captures[1].AssertJSONField(t, "text", "Alert: *unclosed")
}

func TestNotifier_EndToEnd_FixedDelayOn429(t *testing.T) {
	server := testutil.NewMockServer(t)

	var calls int
	server.On(server.SendMessagePath(testutil.TestToken), func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			testutil.ReplyRateLimit(w, 7)
			return
		}
		testutil.ReplyMessage(w, 3)
	})

	n, sleeper := newHTTPNotifier(t, server, func(c *notigo.Config) {
		c.Client.RetryDelay = 2 * time.Second
	})

	msg, err := n.Send(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, 3, msg.MessageID)
	assert.Equal(t, 2, server.CaptureCount())
	// The pipeline waits its configured delay, not the server's retry_after.
	assert.Equal(t, []time.Duration{2 * time.Second}, sleeper.Calls())
}

func TestNotifier_EndToEnd_UnauthorizedIsPermanent(t *testing.T) {
	server := testutil.NewMockServer(t)
	server.On(server.SendMessagePath(testutil.TestToken), func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyUnauthorized(w)
	})

	n, sleeper := newHTTPNotifier(t, server, nil)

	_, err := n.Send(context.Background(), "hello")

	var derr *notigo.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 1, derr.Attempts)
	assert.False(t, derr.Transient)
	assert.ErrorIs(t, err, tg.ErrUnauthorized)
	assert.Equal(t, 1, server.CaptureCount())
	assert.Equal(t, 0, sleeper.CallCount())
}
