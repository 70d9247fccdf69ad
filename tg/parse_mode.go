package tg

import "strings"

// ParseMode defines the text formatting dialect for messages.
type ParseMode string

// Supported parse modes. ParseModePlain is the zero value and means the
// parse_mode field is omitted from the request entirely.
const (
	ParseModePlain      ParseMode = ""
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
	ParseModeHTML       ParseMode = "HTML"
)

// String returns the parse mode string value.
func (p ParseMode) String() string {
	return string(p)
}

// IsValid returns true if the parse mode is supported.
func (p ParseMode) IsValid() bool {
	switch p {
	case ParseModePlain, ParseModeMarkdownV2, ParseModeHTML:
		return true
	default:
		return false
	}
}

// ParseModeFrom maps an override string to a ParseMode. Matching is
// case-insensitive; the empty string and "plaintext" both mean plain text.
// ok is false for anything unrecognized.
func ParseModeFrom(s string) (mode ParseMode, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plaintext", "plain", "none":
		return ParseModePlain, true
	case "markdownv2":
		return ParseModeMarkdownV2, true
	case "html":
		return ParseModeHTML, true
	default:
		return ParseModePlain, false
	}
}

// ChatType represents the type of a Telegram chat.
type ChatType string

// Supported chat types.
const (
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

// String returns the chat type string value.
func (c ChatType) String() string {
	return string(c)
}
