package format

import "strings"

// htmlEscaper covers the three characters Telegram's HTML parse mode
// requires escaping. Replacer runs a single pass, so an ampersand is
// never escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes text for the HTML parse mode.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
