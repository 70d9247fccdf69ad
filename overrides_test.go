package notigo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/notigo/tg"
)

func baseConfig() Config {
	cfg := DefaultConfig()
	cfg.Token = tg.SecretToken("123456789:TESTTOKEN")
	cfg.ChatID = "123456789"
	return cfg
}

func TestResolve_NoOverrides(t *testing.T) {
	cfg := baseConfig()

	eff, err := resolve(cfg, nil)

	require.NoError(t, err)
	assert.Equal(t, cfg, eff)
}

func TestResolve_AppliesEveryKnownKey(t *testing.T) {
	eff, err := resolve(baseConfig(), []Override{
		{Key: KeyChatID, Value: "@alerts"},
		{Key: KeyParseMode, Value: "html"},
		{Key: KeyDisableWebPagePreview, Value: "false"},
		{Key: KeyEscapeMarkdown, Value: "false"},
		{Key: KeyEscapeHTML, Value: "true"},
		{Key: KeyObfuscateEmails, Value: "true"},
		{Key: KeyTruncate, Value: "200"},
		{Key: KeyTimeout, Value: "5"},
		{Key: KeyRetryCount, Value: "0"},
		{Key: KeyRetryDelay, Value: "2"},
	})

	require.NoError(t, err)
	assert.Equal(t, "@alerts", eff.ChatID)
	assert.Equal(t, tg.ParseModeHTML, eff.ParseMode)
	assert.False(t, eff.DisableWebPagePreview)
	assert.False(t, eff.Formatting.EscapeMarkdown)
	assert.True(t, eff.Formatting.EscapeHTML)
	assert.True(t, eff.Formatting.ObfuscateEmails)
	assert.Equal(t, 200, eff.Formatting.Truncate)
	assert.Equal(t, 5*time.Second, eff.Client.Timeout)
	assert.Equal(t, 0, eff.Client.RetryCount)
	assert.Equal(t, 2*time.Second, eff.Client.RetryDelay)
}

func TestResolve_LastValueWins(t *testing.T) {
	eff, err := resolve(baseConfig(), []Override{
		{Key: KeyChatID, Value: "@first"},
		{Key: KeyChatID, Value: "@second"},
	})

	require.NoError(t, err)
	assert.Equal(t, "@second", eff.ChatID)
}

func TestResolve_UnknownKeysIgnored(t *testing.T) {
	eff, err := resolve(baseConfig(), []Override{
		{Key: "slack_channel", Value: "#ops"},
		{Key: "priority", Value: "high"},
	})

	require.NoError(t, err)
	assert.Equal(t, baseConfig(), eff)
}

func TestResolve_ParseModeSpellings(t *testing.T) {
	tests := []struct {
		value string
		want  tg.ParseMode
	}{
		{"", tg.ParseModePlain},
		{"plaintext", tg.ParseModePlain},
		{"PlainText", tg.ParseModePlain},
		{"plain", tg.ParseModePlain},
		{"markdownv2", tg.ParseModeMarkdownV2},
		{"MarkdownV2", tg.ParseModeMarkdownV2},
		{"MARKDOWNV2", tg.ParseModeMarkdownV2},
		{"html", tg.ParseModeHTML},
		{"HTML", tg.ParseModeHTML},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			eff, err := resolve(baseConfig(), []Override{{Key: KeyParseMode, Value: tt.value}})

			require.NoError(t, err)
			assert.Equal(t, tt.want, eff.ParseMode)
		})
	}
}

func TestResolve_EmptyTruncateDisables(t *testing.T) {
	eff, err := resolve(baseConfig(), []Override{{Key: KeyTruncate, Value: ""}})

	require.NoError(t, err)
	assert.Equal(t, 0, eff.Formatting.Truncate)
}

func TestResolve_MalformedValuesFail(t *testing.T) {
	tests := []struct {
		name     string
		override Override
	}{
		{"empty chat_id", Override{Key: KeyChatID, Value: ""}},
		{"legacy parse mode", Override{Key: KeyParseMode, Value: "Markdown"}},
		{"unknown parse mode", Override{Key: KeyParseMode, Value: "rtf"}},
		{"preview not a bool", Override{Key: KeyDisableWebPagePreview, Value: "yes please"}},
		{"escape_markdown not a bool", Override{Key: KeyEscapeMarkdown, Value: "2"}},
		{"escape_html not a bool", Override{Key: KeyEscapeHTML, Value: "on"}},
		{"obfuscate not a bool", Override{Key: KeyObfuscateEmails, Value: "maybe"}},
		{"truncate zero", Override{Key: KeyTruncate, Value: "0"}},
		{"truncate negative", Override{Key: KeyTruncate, Value: "-5"}},
		{"truncate not a number", Override{Key: KeyTruncate, Value: "big"}},
		{"timeout zero", Override{Key: KeyTimeout, Value: "0"}},
		{"timeout negative", Override{Key: KeyTimeout, Value: "-1"}},
		{"timeout fractional", Override{Key: KeyTimeout, Value: "1.5"}},
		{"retry_count negative", Override{Key: KeyRetryCount, Value: "-1"}},
		{"retry_count not a number", Override{Key: KeyRetryCount, Value: "three"}},
		{"retry_delay negative", Override{Key: KeyRetryDelay, Value: "-2"}},
		{"retry_delay duration syntax", Override{Key: KeyRetryDelay, Value: "2s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolve(baseConfig(), []Override{tt.override})

			var verr *tg.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.override.Key, verr.Key)
			assert.Equal(t, tt.override.Value, verr.Value)
		})
	}
}

func TestResolve_DoesNotMutateBase(t *testing.T) {
	cfg := baseConfig()

	_, err := resolve(cfg, []Override{{Key: KeyChatID, Value: "@other"}})

	require.NoError(t, err)
	assert.Equal(t, baseConfig().ChatID, cfg.ChatID)
}
