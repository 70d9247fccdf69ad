package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prilive-com/notigo"
)

// flagOverrides maps flags to the override keys they feed. Values travel as
// raw strings so the library applies its own validation and reports
// malformed ones against the right key.
var flagOverrides = []struct {
	flag string
	key  string
}{
	{"chat-id", notigo.KeyChatID},
	{"parse-mode", notigo.KeyParseMode},
	{"escape-markdown", notigo.KeyEscapeMarkdown},
	{"escape-html", notigo.KeyEscapeHTML},
	{"obfuscate-emails", notigo.KeyObfuscateEmails},
	{"truncate", notigo.KeyTruncate},
	{"timeout", notigo.KeyTimeout},
	{"retry-count", notigo.KeyRetryCount},
	{"retry-delay", notigo.KeyRetryDelay},
}

func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().String("chat-id", "", "Chat to deliver to, overriding the configuration")
	cmd.Flags().String("parse-mode", "", "Formatting mode: MarkdownV2, HTML, or plain")
	cmd.Flags().String("preview", "", "Enable or disable link previews (true/false)")
	cmd.Flags().String("escape-markdown", "", "Escape MarkdownV2 characters in the message (true/false)")
	cmd.Flags().String("escape-html", "", "Escape HTML characters in the message (true/false)")
	cmd.Flags().String("obfuscate-emails", "", "Obfuscate email addresses in the message (true/false)")
	cmd.Flags().String("truncate", "", "Maximum message length in characters, empty to disable")
	cmd.Flags().String("timeout", "", "Per-attempt timeout in seconds")
	cmd.Flags().String("retry-count", "", "Number of retries after the first attempt")
	cmd.Flags().String("retry-delay", "", "Delay between retries in seconds")
}

// collectOverrides turns flags the user set into per-message overrides.
func collectOverrides(cmd *cobra.Command) []notigo.Override {
	var overrides []notigo.Override
	for _, fo := range flagOverrides {
		if !cmd.Flags().Changed(fo.flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(fo.flag)
		overrides = append(overrides, notigo.Override{Key: fo.key, Value: value})
	}

	// --preview speaks the user's polarity; the wire field is the inverse.
	// A value ParseBool cannot read passes through for the resolver to
	// reject.
	if cmd.Flags().Changed("preview") {
		value, _ := cmd.Flags().GetString("preview")
		if b, err := strconv.ParseBool(value); err == nil {
			value = strconv.FormatBool(!b)
		}
		overrides = append(overrides, notigo.Override{Key: notigo.KeyDisableWebPagePreview, Value: value})
	}

	return overrides
}
