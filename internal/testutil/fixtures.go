package testutil

import "github.com/prilive-com/notigo/tg"

// Test constants for consistent test data.
const (
	// TestToken is a valid-format bot token for testing.
	TestToken = "123456789:ABCdefGHIjklMNOpqrsTUVwxyz"

	// TestChatID is a test chat ID in its wire (string) form.
	TestChatID = "123456789"

	// TestChannel is a test channel username chat ID.
	TestChannel = "@testchannel"
)

// TestChat returns a test private chat fixture.
func TestChat() *tg.Chat {
	return &tg.Chat{
		ID:        123456789,
		Type:      tg.ChatTypePrivate,
		FirstName: "Test",
		LastName:  "User",
		Username:  "testuser",
	}
}

// TestMessage returns a test message fixture.
func TestMessage(messageID int, text string) *tg.Message {
	return &tg.Message{
		MessageID: messageID,
		Date:      1234567890,
		Chat:      TestChat(),
		Text:      text,
	}
}

// TestDelivery returns a ready-to-send delivery fixture.
func TestDelivery(text string) tg.Delivery {
	return tg.Delivery{
		Token:                 tg.SecretToken(TestToken),
		ChatID:                TestChatID,
		Text:                  text,
		ParseMode:             tg.ParseModeMarkdownV2,
		DisableWebPagePreview: true,
	}
}
