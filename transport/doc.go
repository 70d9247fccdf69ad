// Package transport performs single sendMessage exchanges against the
// Telegram Bot API.
//
// # Features
//
//   - Circuit breaker for fault tolerance
//   - Global rate limiting at Telegram's own sending limit
//   - retry_after extraction from JSON body and Retry-After header
//   - Bot token scrubbed from network error strings
//
// The client performs exactly one exchange per Deliver call and reports
// faults through the tg error types; deciding whether to retry, degrade
// formatting, or give up is the caller's job.
//
// # Usage
//
//	client, err := transport.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	msg, err := client.Deliver(ctx, tg.Delivery{
//	    Token:  token,
//	    ChatID: "123456789",
//	    Text:   "Hello, World!",
//	})
package transport
