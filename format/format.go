package format

import (
	"unicode/utf8"

	"github.com/prilive-com/notigo/tg"
)

// Marker is appended to a message body shortened by truncation.
const Marker = "..."

// Options control a single rendering pass.
type Options struct {
	Mode            tg.ParseMode
	EscapeMarkdown  bool
	EscapeHTML      bool
	ObfuscateEmails bool
	Truncate        int // maximum total runes, 0 disables
	Prefix          string
	Suffix          string
}

// Render produces the final wire text for a message. Transformations run
// in fixed order: email obfuscation, dialect escaping, prefix/suffix,
// truncation. The prefix and suffix are trusted operator framing and are
// never escaped; escaping applies only to the message body and only when
// the mode's escape flag is set.
func Render(text string, opts Options) string {
	body := text

	if opts.ObfuscateEmails {
		body = ObfuscateEmails(body)
	}

	switch opts.Mode {
	case tg.ParseModeMarkdownV2:
		if opts.EscapeMarkdown {
			body = EscapeMarkdownV2(body)
		}
	case tg.ParseModeHTML:
		if opts.EscapeHTML {
			body = EscapeHTML(body)
		}
	}

	composed := opts.Prefix + body + opts.Suffix
	if opts.Truncate <= 0 || utf8.RuneCountInString(composed) <= opts.Truncate {
		return composed
	}

	// The frame and marker are kept whole; the body absorbs the cut.
	budget := opts.Truncate -
		utf8.RuneCountInString(opts.Prefix) -
		utf8.RuneCountInString(opts.Suffix) -
		utf8.RuneCountInString(Marker)
	if budget < 0 {
		// Frame alone exceeds the limit; cut the whole thing, no marker.
		return safeCut(composed, opts.Truncate)
	}
	return opts.Prefix + safeCut(body, budget) + Marker + opts.Suffix
}
