package format_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/prilive-com/notigo/format"
	"github.com/prilive-com/notigo/tg"
	"github.com/stretchr/testify/assert"
)

func TestRender_MarkdownEscaping(t *testing.T) {
	out := format.Render("*bold*", format.Options{
		Mode:           tg.ParseModeMarkdownV2,
		EscapeMarkdown: true,
	})
	assert.Equal(t, `\*bold\*`, out)
}

func TestRender_EscapeDisabled(t *testing.T) {
	// Pre-escaped callers opt out and their markup goes through untouched.
	out := format.Render("*bold* and `code`", format.Options{
		Mode: tg.ParseModeMarkdownV2,
	})
	assert.Equal(t, "*bold* and `code`", out)
}

func TestRender_PlainModeNeverEscapes(t *testing.T) {
	out := format.Render("*bold* <b>1 & 2</b>", format.Options{
		Mode:           tg.ParseModePlain,
		EscapeMarkdown: true,
		EscapeHTML:     true,
	})
	assert.Equal(t, "*bold* <b>1 & 2</b>", out)
}

func TestRender_HTMLEscaping(t *testing.T) {
	out := format.Render("load <1 & rising>", format.Options{
		Mode:       tg.ParseModeHTML,
		EscapeHTML: true,
	})
	assert.Equal(t, "load &lt;1 &amp; rising&gt;", out)
}

func TestRender_ObfuscatesBeforeEscaping(t *testing.T) {
	out := format.Render("User john.doe@example.com registered", format.Options{
		Mode:            tg.ParseModeMarkdownV2,
		EscapeMarkdown:  true,
		ObfuscateEmails: true,
	})
	// The mask is applied to the raw address, then its dots get escaped.
	assert.Equal(t, `User joh\.\.\.e@example\.com registered`, out)
}

func TestRender_ObfuscationWithoutEscaping(t *testing.T) {
	out := format.Render("User john.doe@example.com registered", format.Options{
		Mode:            tg.ParseModePlain,
		ObfuscateEmails: true,
	})
	assert.Equal(t, "User joh...e@example.com registered", out)
}

func TestRender_PrefixSuffixStayLiteral(t *testing.T) {
	out := format.Render("deploy *done*", format.Options{
		Mode:           tg.ParseModeMarkdownV2,
		EscapeMarkdown: true,
		Prefix:         "[MyApp] ",
		Suffix:         " (prod)",
	})
	// Framing is applied after escaping: its brackets and parens survive.
	assert.Equal(t, `[MyApp] deploy \*done\* (prod)`, out)
}

func TestRender_TruncationKeepsFrame(t *testing.T) {
	out := format.Render(strings.Repeat("a", 100), format.Options{
		Mode:     tg.ParseModePlain,
		Prefix:   "[app] ",
		Suffix:   " [end]",
		Truncate: 40,
	})

	assert.Equal(t, 40, utf8.RuneCountInString(out))
	assert.True(t, strings.HasPrefix(out, "[app] "))
	assert.True(t, strings.HasSuffix(out, "... [end]"))
}

func TestRender_TruncationDisabledByZero(t *testing.T) {
	text := strings.Repeat("a", 5000)
	out := format.Render(text, format.Options{Mode: tg.ParseModePlain})
	assert.Equal(t, text, out)
}

func TestRender_TruncateNeverExceedsLimit(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		prefix string
		suffix string
		limit  int
	}{
		{"body absorbs cut", strings.Repeat("x", 50), "[p] ", " [s]", 20},
		{"frame barely fits", strings.Repeat("x", 50), "0123456789", "", 13},
		{"frame exceeds limit", strings.Repeat("x", 50), "0123456789", "0123456789", 7},
		{"tiny limit", "hello world", "", "", 1},
		{"multibyte body", strings.Repeat("héllo wörld ", 20), "[α] ", " [ω]", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := format.Render(tt.text, format.Options{
				Mode:     tg.ParseModePlain,
				Prefix:   tt.prefix,
				Suffix:   tt.suffix,
				Truncate: tt.limit,
			})
			assert.LessOrEqual(t, utf8.RuneCountInString(out), tt.limit)
		})
	}
}

func TestRender_TruncationNeverSplitsEscapePair(t *testing.T) {
	// Escaped body is all \x pairs; a budget of 7 runes would land the
	// cut between a backslash and its star, so the cut backs off by one.
	out := format.Render(strings.Repeat("*", 30), format.Options{
		Mode:           tg.ParseModeMarkdownV2,
		EscapeMarkdown: true,
		Truncate:       10,
	})

	assert.Equal(t, `\*\*\*`+format.Marker, out)
}

func TestRender_TruncationNeverSplitsEntity(t *testing.T) {
	// A cut inside "&amp;" backs off to before the ampersand.
	out := format.Render("ab & cd", format.Options{
		Mode:       tg.ParseModeHTML,
		EscapeHTML: true,
		Truncate:   9,
	})

	assert.Equal(t, "ab "+format.Marker, out)
}

func TestRender_EmptyInputStaysEmpty(t *testing.T) {
	out := format.Render("", format.Options{
		Mode:           tg.ParseModeMarkdownV2,
		EscapeMarkdown: true,
	})
	assert.Equal(t, "", out)
}

func TestRender_EmptyInputKeepsFrame(t *testing.T) {
	out := format.Render("", format.Options{
		Mode:   tg.ParseModePlain,
		Prefix: "[app] ",
	})
	assert.Equal(t, "[app] ", out)
}

func TestRender_Deterministic(t *testing.T) {
	opts := format.Options{
		Mode:            tg.ParseModeMarkdownV2,
		EscapeMarkdown:  true,
		ObfuscateEmails: true,
		Truncate:        60,
		Prefix:          "[app] ",
	}
	text := "alert from ops.team@example.com: disk *full* on /var (92%)"

	first := format.Render(text, opts)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, format.Render(text, opts))
	}
}
