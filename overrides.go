package notigo

import (
	"strconv"
	"strings"
	"time"

	"github.com/prilive-com/notigo/tg"
)

// Override adjusts one configuration knob for a single Send call. Keys and
// values are plain strings so override lists can be passed through from CLI
// flags or config files without a typed schema. Later entries win when a key
// repeats.
type Override struct {
	Key   string
	Value string
}

// Recognized override keys. Unknown keys are ignored so one override list
// can be shared between sinks with different capabilities.
const (
	KeyChatID                = "chat_id"
	KeyParseMode             = "parse_mode"
	KeyDisableWebPagePreview = "disable_web_page_preview"
	KeyEscapeMarkdown        = "escape_markdown"
	KeyEscapeHTML            = "escape_html"
	KeyObfuscateEmails       = "obfuscate_emails"
	KeyTruncate              = "truncate"
	KeyTimeout               = "timeout"
	KeyRetryCount            = "retry_count"
	KeyRetryDelay            = "retry_delay"
)

// resolve applies overrides on top of cfg and returns the effective
// configuration for one send. A malformed value fails the send instead of
// silently falling back to the configured default.
func resolve(cfg Config, overrides []Override) (Config, error) {
	eff := cfg
	for _, o := range overrides {
		switch o.Key {
		case KeyChatID:
			if o.Value == "" {
				return Config{}, tg.NewValidationError(o.Key, o.Value, "chat ID cannot be empty")
			}
			eff.ChatID = o.Value

		case KeyParseMode:
			mode, ok := tg.ParseModeFrom(o.Value)
			if !ok {
				return Config{}, tg.NewValidationError(o.Key, o.Value, "must be plaintext, markdownv2 or html")
			}
			eff.ParseMode = mode

		case KeyDisableWebPagePreview:
			b, err := parseBoolValue(o.Key, o.Value)
			if err != nil {
				return Config{}, err
			}
			eff.DisableWebPagePreview = b

		case KeyEscapeMarkdown:
			b, err := parseBoolValue(o.Key, o.Value)
			if err != nil {
				return Config{}, err
			}
			eff.Formatting.EscapeMarkdown = b

		case KeyEscapeHTML:
			b, err := parseBoolValue(o.Key, o.Value)
			if err != nil {
				return Config{}, err
			}
			eff.Formatting.EscapeHTML = b

		case KeyObfuscateEmails:
			b, err := parseBoolValue(o.Key, o.Value)
			if err != nil {
				return Config{}, err
			}
			eff.Formatting.ObfuscateEmails = b

		case KeyTruncate:
			if strings.TrimSpace(o.Value) == "" {
				eff.Formatting.Truncate = 0
				continue
			}
			i, err := parseIntValue(o.Key, o.Value)
			if err != nil {
				return Config{}, err
			}
			if i < 1 {
				return Config{}, tg.NewValidationError(o.Key, o.Value, "must be at least 1, or empty to disable")
			}
			eff.Formatting.Truncate = i

		case KeyTimeout:
			i, err := parseSecondsValue(o.Key, o.Value)
			if err != nil {
				return Config{}, err
			}
			if i < 1 {
				return Config{}, tg.NewValidationError(o.Key, o.Value, "must be at least 1 second")
			}
			eff.Client.Timeout = time.Duration(i) * time.Second

		case KeyRetryCount:
			i, err := parseIntValue(o.Key, o.Value)
			if err != nil {
				return Config{}, err
			}
			if i < 0 {
				return Config{}, tg.NewValidationError(o.Key, o.Value, "cannot be negative")
			}
			eff.Client.RetryCount = i

		case KeyRetryDelay:
			i, err := parseSecondsValue(o.Key, o.Value)
			if err != nil {
				return Config{}, err
			}
			if i < 0 {
				return Config{}, tg.NewValidationError(o.Key, o.Value, "cannot be negative")
			}
			eff.Client.RetryDelay = time.Duration(i) * time.Second
		}
	}
	return eff, nil
}

func parseBoolValue(key, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, tg.NewValidationError(key, value, "must be a boolean")
	}
	return b, nil
}

func parseIntValue(key, value string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, tg.NewValidationError(key, value, "must be an integer")
	}
	return i, nil
}

func parseSecondsValue(key, value string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, tg.NewValidationError(key, value, "must be an integer number of seconds")
	}
	return i, nil
}
