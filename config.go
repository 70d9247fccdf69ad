package notigo

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/prilive-com/notigo/tg"
)

// Config holds notifier configuration: the defaults every send starts from.
// Per-message overrides adjust a copy of this for a single Send call.
type Config struct {
	// Credentials and destination
	Token  tg.SecretToken
	ChatID string

	// Message defaults
	ParseMode             tg.ParseMode
	DisableWebPagePreview bool
	MessagePrefix         string
	MessageSuffix         string

	// Text preparation
	Formatting FormattingOptions

	// Delivery behaviour
	Client ClientOptions
}

// FormattingOptions controls how message text is prepared before delivery.
type FormattingOptions struct {
	EscapeMarkdown  bool // escape MarkdownV2 reserved characters
	EscapeHTML      bool // escape &, < and > for HTML mode
	ObfuscateEmails bool // mask email addresses found in the text
	Truncate        int  // rune limit for the final message, 0 disables
}

// ClientOptions controls per-attempt timeouts and the retry budget.
type ClientOptions struct {
	Timeout    time.Duration // deadline for a single delivery attempt
	RetryCount int           // additional attempts after the first
	RetryDelay time.Duration // fixed pause between attempts
}

// DefaultConfig returns a Config with sensible defaults. Token and ChatID
// must still be filled in before the config validates.
func DefaultConfig() Config {
	return Config{
		ParseMode:             tg.ParseModeMarkdownV2,
		DisableWebPagePreview: true,
		Formatting: FormattingOptions{
			EscapeMarkdown: true,
			Truncate:       4096,
		},
		Client: ClientOptions{
			Timeout:    30 * time.Second,
			RetryCount: 3,
			RetryDelay: time.Second,
		},
	}
}

// Validate reports whether the configuration is complete enough to send.
func (c Config) Validate() error {
	if c.Token.Value() == "" {
		return tg.NewConfigError("token", "bot token is required")
	}
	if c.ChatID == "" {
		return tg.NewConfigError("chat_id", "chat ID is required")
	}
	if !c.ParseMode.IsValid() {
		return tg.NewConfigError("parse_mode", fmt.Sprintf("unsupported parse mode %q", string(c.ParseMode)))
	}
	if c.Formatting.Truncate < 0 {
		return tg.NewConfigError("truncate", "truncate length cannot be negative")
	}
	if c.Client.Timeout <= 0 {
		return tg.NewConfigError("timeout", "timeout must be positive")
	}
	if c.Client.RetryCount < 0 {
		return tg.NewConfigError("retry_count", "retry count cannot be negative")
	}
	if c.Client.RetryDelay < 0 {
		return tg.NewConfigError("retry_delay", "retry delay cannot be negative")
	}
	return nil
}

// LoadConfig loads configuration from environment variables, starting from
// DefaultConfig. Unset or malformed variables keep their defaults.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(DefaultConfig())
}

// LoadConfigFrom overlays environment variables on top of base, so a caller
// can layer the environment over a config file. Unset or malformed variables
// keep the base values.
func LoadConfigFrom(base Config) (Config, error) {
	cfg := base

	cfg.Token = tg.SecretToken(getEnv("TELEGRAM_BOT_TOKEN", cfg.Token.Value()))
	cfg.ChatID = getEnv("TELEGRAM_CHAT_ID", cfg.ChatID)

	if v, ok := os.LookupEnv("NOTIGO_PARSE_MODE"); ok {
		if mode, valid := tg.ParseModeFrom(v); valid {
			cfg.ParseMode = mode
		}
	}

	cfg.MessagePrefix = getEnv("NOTIGO_MESSAGE_PREFIX", cfg.MessagePrefix)
	cfg.MessageSuffix = getEnv("NOTIGO_MESSAGE_SUFFIX", cfg.MessageSuffix)

	if b, err := strconv.ParseBool(getEnv("NOTIGO_DISABLE_WEB_PAGE_PREVIEW", strconv.FormatBool(cfg.DisableWebPagePreview))); err == nil {
		cfg.DisableWebPagePreview = b
	}

	if b, err := strconv.ParseBool(getEnv("NOTIGO_ESCAPE_MARKDOWN", strconv.FormatBool(cfg.Formatting.EscapeMarkdown))); err == nil {
		cfg.Formatting.EscapeMarkdown = b
	}

	if b, err := strconv.ParseBool(getEnv("NOTIGO_ESCAPE_HTML", strconv.FormatBool(cfg.Formatting.EscapeHTML))); err == nil {
		cfg.Formatting.EscapeHTML = b
	}

	if b, err := strconv.ParseBool(getEnv("NOTIGO_OBFUSCATE_EMAILS", strconv.FormatBool(cfg.Formatting.ObfuscateEmails))); err == nil {
		cfg.Formatting.ObfuscateEmails = b
	}

	if i, err := strconv.Atoi(getEnv("NOTIGO_TRUNCATE", strconv.Itoa(cfg.Formatting.Truncate))); err == nil {
		cfg.Formatting.Truncate = i
	}

	if d, err := time.ParseDuration(getEnv("NOTIGO_TIMEOUT", cfg.Client.Timeout.String())); err == nil {
		cfg.Client.Timeout = d
	}

	if i, err := strconv.Atoi(getEnv("NOTIGO_RETRY_COUNT", strconv.Itoa(cfg.Client.RetryCount))); err == nil {
		cfg.Client.RetryCount = i
	}

	if d, err := time.ParseDuration(getEnv("NOTIGO_RETRY_DELAY", cfg.Client.RetryDelay.String())); err == nil {
		cfg.Client.RetryDelay = d
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
