// Package format prepares notification text for Telegram.
//
// The pipeline is pure and deterministic: email obfuscation, dialect
// escaping (MarkdownV2 or HTML), prefix/suffix framing, and rune-safe
// truncation, always in that order. Rendering the same input with the
// same options yields the same output, so a failed delivery can be
// re-rendered for a plain-text retry without surprises.
package format
