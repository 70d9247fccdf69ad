package format

import (
	"regexp"
	"strings"
)

// markdownReserved holds every character MarkdownV2 assigns meaning to.
// Each occurrence must carry a backslash prefix to be taken literally.
const markdownReserved = "_*[]()~`>#+-=|{}.!"

var linkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

// EscapeMarkdownV2 escapes text for the MarkdownV2 parse mode. Every
// reserved character is escaped exactly once in a single pass, including
// characters the caller may have intended as markup. Pre-existing
// backslashes are escaped too, so the output always renders as the
// literal input text.
func EscapeMarkdownV2(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		if r == '\\' || strings.ContainsRune(markdownReserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripMarkdown removes markdown formatting instead of escaping it:
// asterisks, underscores, and backticks are dropped, and [text](url)
// links collapse to their text.
func StripMarkdown(text string) string {
	stripped := strings.NewReplacer("*", "", "_", "", "`", "").Replace(text)
	return linkRe.ReplaceAllString(stripped, "$1")
}
