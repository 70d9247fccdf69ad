// Package notigo delivers notification messages to Telegram chats.
//
// notigo is built for services that need to push alerts, reports and status
// updates to a chat without caring about Telegram's formatting rules: text
// is escaped for the configured dialect, oversize messages are truncated on
// safe boundaries, and deliveries retry transient faults and degrade to
// plain text rather than losing the message.
//
// # Quick Start
//
//	cfg := notigo.DefaultConfig()
//	cfg.Token = tg.SecretToken(os.Getenv("TELEGRAM_BOT_TOKEN"))
//	cfg.ChatID = os.Getenv("TELEGRAM_CHAT_ID")
//
//	n, err := notigo.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer n.Close()
//
//	n.Send(ctx, "Deployment *failed* on web-1")
//
// # Package-Level Notifier
//
// For programs with a single destination, Configure once and Send from
// anywhere:
//
//	notigo.Configure(cfg)
//	notigo.Send(ctx, "Disk usage above 90% on db-2")
//
// # Per-Message Overrides
//
// A send can adjust the configuration for itself only, with plain string
// pairs that validate strictly:
//
//	n.Send(ctx, "Nightly report ready",
//	    notigo.Override{Key: notigo.KeyChatID, Value: "@reports"},
//	    notigo.Override{Key: notigo.KeyParseMode, Value: "html"},
//	)
//
// # Shared Types
//
// Telegram types and error classification are in the tg subpackage:
//
//	import "github.com/prilive-com/notigo/tg"
//	var msg tg.Message
//	errors.Is(err, tg.ErrChatNotFound)
//
// # Features
//
//   - MarkdownV2 and HTML escaping, email obfuscation, safe truncation
//   - Plain-text fallback when Telegram rejects the markup
//   - Fixed-delay retries for transient faults with a per-attempt timeout
//   - Circuit breaker with sony/gobreaker
//   - Global rate limiting aligned with Telegram's bot limits
//   - Token auto-redaction in logs and errors
//   - Structured logging with slog
package notigo
