package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
)

// Conversation ids used across tests. The reader requires the 36-char
// UUID shape, so fixtures use well-formed ids.
const (
	ConvA = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	ConvB = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

// BubbleKey builds a message payload key: bubbleId:<conv-id>:<message-id>.
func BubbleKey(conversationID, messageID string) string {
	return fmt.Sprintf("bubbleId:%s:%s", conversationID, messageID)
}

// UserBubble builds a user message payload.
func UserBubble(text string) string {
	return fmt.Sprintf(`{"type":0,"text":%s}`, mustJSON(text))
}

// AssistantBubble builds an assistant message payload.
func AssistantBubble(text string) string {
	return fmt.Sprintf(`{"type":1,"text":%s}`, mustJSON(text))
}

// RawTextBubble builds a payload carrying only the unrendered text field.
func RawTextBubble(typeCode int, rawText string) string {
	return fmt.Sprintf(`{"type":%d,"rawText":%s}`, typeCode, mustJSON(rawText))
}

// ComposerIndexValue builds the conversation-name index blob kept by
// workspace stores.
func ComposerIndexValue(t *testing.T, names map[string]string) string {
	t.Helper()

	type record struct {
		ComposerID string `json:"composerId"`
		Name       string `json:"name"`
		CreatedAt  int64  `json:"createdAt"`
		IsArchived bool   `json:"isArchived"`
	}
	var records []record
	for id, name := range names {
		records = append(records, record{ComposerID: id, Name: name, CreatedAt: 1700000000000})
	}

	blob, err := json.Marshal(map[string]interface{}{"allComposers": records})
	if err != nil {
		t.Fatalf("Failed to build composer index: %v", err)
	}
	return string(blob)
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
