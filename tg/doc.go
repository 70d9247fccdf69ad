// Package tg provides core Telegram types shared by the notifier and its
// transport.
//
// This package contains:
//   - Wire-level types for the sendMessage exchange (Delivery, Message, Chat)
//   - Parse modes and their override-string forms
//   - Error types, sentinel errors, and delivery-fault classification
//   - SecretToken for safe bot token handling
//
// It has no dependencies on the transport or the notifier, so both can share
// these types without import cycles.
package tg
