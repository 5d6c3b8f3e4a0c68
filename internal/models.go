package internal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UntitledConversation is the title used when no user message can supply one.
const UntitledConversation = "Untitled Conversation"

// titleKeepLen is how much of a long first message survives in the derived
// title; anything longer is cut here and suffixed with "...", keeping the
// title at 60 chars or fewer.
const titleKeepLen = 57

// Message is one decoded chat message.
type Message struct {
	ID             string `json:"id"`
	Role           Role   `json:"role"`
	Content        string `json:"content"`
	RawContent     string `json:"raw_content,omitempty"`
	Sequence       int    `json:"sequence"`
	TypeCode       int    `json:"type_code"`
	ConversationID string `json:"conversation_id"`
}

// Conversation is one fully reconstructed chat, materialized fresh on every
// read and immutable once constructed.
type Conversation struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Messages     []Message `json:"messages"`
	MessageCount int       `json:"message_count"`
	Source       string    `json:"source"`
	Workspace    string    `json:"workspace,omitempty"`
}

// bubblePayload is the JSON shape stored under a bubble key. Only type, text
// and rawText matter for reconstruction; the rest is optional metadata the
// editor writes alongside.
type bubblePayload struct {
	Type    *int   `json:"type"`
	Text    string `json:"text"`
	RawText string `json:"rawText"`
}

// composerIndex is the JSON blob under the composer.composerData key in
// workspace stores. It maps conversation ids to user-assigned names.
type composerIndex struct {
	AllComposers []composerRecord `json:"allComposers"`
}

type composerRecord struct {
	ComposerID string `json:"composerId"`
	Name       string `json:"name"`
	CreatedAt  int64  `json:"createdAt"`
	IsArchived bool   `json:"isArchived"`
}

// DecodeMessage decodes one bubble entry into a Message. The sequence is the
// entry's position in ascending key order, the store's only ordering
// guarantee. A payload that fails to decode, lacks a type code, or carries an
// unknown type code is rejected per-entry.
func DecodeMessage(entry RawEntry, conversationID string, sequence int) (Message, error) {
	var payload bubblePayload
	if err := json.Unmarshal([]byte(entry.Value), &payload); err != nil {
		return Message{}, &EntryDecodeError{Key: entry.Key, Err: err}
	}
	if payload.Type == nil {
		return Message{}, &EntryDecodeError{Key: entry.Key, Err: fmt.Errorf("missing type code")}
	}

	var role Role
	switch *payload.Type {
	case 0:
		role = RoleUser
	case 1:
		role = RoleAssistant
	default:
		return Message{}, &EntryDecodeError{Key: entry.Key, Err: fmt.Errorf("unknown type code %d", *payload.Type)}
	}

	content := payload.Text
	if content == "" {
		content = payload.RawText
	}

	return Message{
		ID:             messageIDFromKey(entry.Key),
		Role:           role,
		Content:        content,
		RawContent:     payload.RawText,
		Sequence:       sequence,
		TypeCode:       *payload.Type,
		ConversationID: conversationID,
	}, nil
}

// messageIDFromKey returns the trailing message-id segment of a bubble key.
func messageIDFromKey(key string) string {
	idx := strings.LastIndex(key, ":")
	if idx < 0 || idx == len(key)-1 {
		return ""
	}
	return key[idx+1:]
}

// DeriveTitle derives a conversation title from the first user message with
// non-empty content: whitespace collapsed, trimmed, truncated to 60 chars
// (57 + "..." when longer). Falls back to a fixed placeholder.
func DeriveTitle(messages []Message) string {
	for _, msg := range messages {
		if msg.Role != RoleUser {
			continue
		}
		collapsed := strings.Join(strings.Fields(msg.Content), " ")
		if collapsed == "" {
			continue
		}
		runes := []rune(collapsed)
		if len(runes) > titleKeepLen {
			return string(runes[:titleKeepLen]) + "..."
		}
		return collapsed
	}
	return UntitledConversation
}

// parseComposerIndex decodes the conversation-name index blob. A malformed
// blob yields an empty map; name enrichment is best-effort.
func parseComposerIndex(raw string) map[string]composerRecord {
	var index composerIndex
	if err := json.Unmarshal([]byte(raw), &index); err != nil {
		LogDebug("malformed composer index: %v", err)
		return nil
	}

	records := make(map[string]composerRecord, len(index.AllComposers))
	for _, rec := range index.AllComposers {
		if rec.ComposerID != "" {
			records[rec.ComposerID] = rec
		}
	}
	return records
}
