package tg

// Delivery is a single fully-rendered sendMessage exchange. The text is
// final: escaped, prefixed, and truncated before it gets here. The token
// rides along so one transport instance can serve reconfigured notifiers;
// it is addressed into the URL path, never the request body.
type Delivery struct {
	Token                 SecretToken `json:"-"`
	ChatID                string      `json:"chat_id"`
	Text                  string      `json:"text"`
	ParseMode             ParseMode   `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool        `json:"disable_web_page_preview,omitempty"`
}

// Validate checks the fields a transport cannot send without.
func (d Delivery) Validate() error {
	if d.Token.IsEmpty() {
		return NewValidationError("token", "", "bot token is required")
	}
	if d.ChatID == "" {
		return NewValidationError("chat_id", "", "chat id is required")
	}
	if d.Text == "" {
		return NewValidationError("text", "", "message text is required")
	}
	if !d.ParseMode.IsValid() {
		return NewValidationError("parse_mode", d.ParseMode.String(), "unsupported parse mode")
	}
	return nil
}
