// Package testutil provides testing utilities for notigo.
//
// This package is intended for internal testing only and should not be imported
// by external packages.
//
// # Mock Telegram Server
//
// MockTelegramServer provides a mock Telegram Bot API server for testing:
//
//	server := testutil.NewMockServer(t)
//	server.On("/bot"+testutil.TestToken+"/sendMessage", func(w http.ResponseWriter, r *http.Request) {
//	    testutil.ReplyMessage(w, 123)
//	})
//	// Use server.BaseURL() as the API base URL
//
// All requests are captured and can be inspected:
//
//	cap := server.LastCapture()
//	cap.AssertJSONField(t, "chat_id", "123456789")
//
// # Scripted Transport
//
// ScriptedTransport stands in for the HTTP transport so delivery behavior
// can be driven without a network:
//
//	tr := testutil.NewScriptedTransport(
//	    testutil.Fail(tg.NewAPIError("sendMessage", 500, "boom")),
//	    testutil.Succeed(42),
//	)
//
// # Fake Sleeper
//
// FakeSleeper records sleep calls without actually sleeping:
//
//	sleeper := &testutil.FakeSleeper{}
//	// Pass via WithSleeper; then assert on sleeper.Calls()
package testutil
