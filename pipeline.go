package notigo

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/prilive-com/notigo/format"
	"github.com/prilive-com/notigo/tg"
)

// deliveryState is one phase of a message's journey through the pipeline.
type deliveryState int

const (
	statePreparing deliveryState = iota
	stateAttempting
	stateDegrading
	stateSucceeded
	stateFailed
)

// delivery carries one message through the pipeline state machine.
type delivery struct {
	notifier *Notifier
	cfg      Config
	text     string
	logger   *slog.Logger

	mode        tg.ParseMode
	rendered    string
	retriesLeft int
	fallback    bool // the degraded plain-text attempt is in flight
	attempts    int
	msg         *tg.Message
	lastErr     error
}

// Send formats text according to the effective configuration and delivers
// it. Overrides adjust this send only; the stored configuration is not
// changed. Failures surface as *tg.ValidationError (malformed override or
// empty render), the context's error when the caller cancelled, or
// *DeliveryError once the pipeline has given up.
func (n *Notifier) Send(ctx context.Context, text string, overrides ...Override) (*tg.Message, error) {
	cfg, err := resolve(n.Config(), overrides)
	if err != nil {
		return nil, err
	}

	d := &delivery{
		notifier: n,
		cfg:      cfg,
		text:     text,
		logger: n.logger.With(
			"send_id", uuid.NewString(),
			"chat_id", cfg.ChatID,
		),
	}
	return d.run(ctx)
}

func (d *delivery) run(ctx context.Context) (*tg.Message, error) {
	state := statePreparing

	for {
		switch state {
		case statePreparing:
			d.mode = d.cfg.ParseMode
			d.rendered = format.Render(d.text, d.renderOptions(d.mode))
			if d.rendered == "" {
				return nil, tg.NewValidationError("text", "", "message renders to empty text")
			}
			d.retriesLeft = d.cfg.Client.RetryCount
			state = stateAttempting

		case stateAttempting:
			msg, err := d.attempt(ctx)
			if err == nil {
				d.msg = msg
				state = stateSucceeded
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			d.lastErr = err
			state = d.transition(err)
			if state == stateAttempting {
				d.logger.Warn("delivery attempt failed, will retry",
					"attempt", d.attempts,
					"retry_delay", d.cfg.Client.RetryDelay,
					"error", err,
				)
				if sleepErr := d.notifier.sleeper.Sleep(ctx, d.cfg.Client.RetryDelay); sleepErr != nil {
					return nil, sleepErr
				}
			}

		case stateDegrading:
			d.logger.Warn("markup rejected, falling back to plain text",
				"attempt", d.attempts,
				"error", d.lastErr,
			)
			d.mode = tg.ParseModePlain
			d.rendered = format.Render(d.text, d.renderOptions(tg.ParseModePlain))
			d.fallback = true
			state = stateAttempting

		case stateSucceeded:
			var id int
			if d.msg != nil {
				id = d.msg.MessageID
			}
			d.logger.Info("message delivered",
				"message_id", id,
				"attempts", d.attempts,
				"parse_mode", modeLabel(d.mode),
			)
			return d.msg, nil

		case stateFailed:
			transient := tg.IsTransient(d.lastErr)
			d.logger.Error("delivery failed",
				"attempts", d.attempts,
				"transient", transient,
				"error", d.lastErr,
			)
			return nil, &DeliveryError{Attempts: d.attempts, Transient: transient, cause: d.lastErr}
		}
	}
}

// attempt performs one transport exchange under the per-attempt deadline.
func (d *delivery) attempt(ctx context.Context) (*tg.Message, error) {
	d.attempts++

	attemptCtx, cancel := context.WithTimeout(ctx, d.cfg.Client.Timeout)
	defer cancel()

	d.logger.Debug("delivering message",
		"attempt", d.attempts,
		"parse_mode", modeLabel(d.mode),
		"length", utf8.RuneCountInString(d.rendered),
	)

	return d.notifier.transport.Deliver(attemptCtx, tg.Delivery{
		Token:                 d.cfg.Token,
		ChatID:                d.cfg.ChatID,
		Text:                  d.rendered,
		ParseMode:             d.mode,
		DisableWebPagePreview: d.cfg.DisableWebPagePreview,
	})
}

// transition picks the next state after a failed attempt.
func (d *delivery) transition(err error) deliveryState {
	switch {
	case tg.IsMarkupRejection(err):
		if d.mode == tg.ParseModePlain {
			// Plain text was rejected too; nothing left to degrade to.
			return stateFailed
		}
		return stateDegrading
	case tg.IsTransient(err):
		if !d.fallback && d.retriesLeft > 0 {
			d.retriesLeft--
			return stateAttempting
		}
		return stateFailed
	default:
		return stateFailed
	}
}

func (d *delivery) renderOptions(mode tg.ParseMode) format.Options {
	return format.Options{
		Mode:            mode,
		EscapeMarkdown:  d.cfg.Formatting.EscapeMarkdown,
		EscapeHTML:      d.cfg.Formatting.EscapeHTML,
		ObfuscateEmails: d.cfg.Formatting.ObfuscateEmails,
		Truncate:        d.cfg.Formatting.Truncate,
		Prefix:          d.cfg.MessagePrefix,
		Suffix:          d.cfg.MessageSuffix,
	}
}

func modeLabel(mode tg.ParseMode) string {
	if mode == tg.ParseModePlain {
		return "plain"
	}
	return string(mode)
}
