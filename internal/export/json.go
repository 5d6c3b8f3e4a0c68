package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/voxtools/cursor-export/internal"
)

// jsonConversation is the lossless reference representation. Every other
// format is allowed to lose information relative to this one.
type jsonConversation struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	MessageCount int           `json:"message_count"`
	Source       string        `json:"source"`
	Workspace    string        `json:"workspace,omitempty"`
	ExportedAt   string        `json:"exported_at,omitempty"`
	Messages     []jsonMessage `json:"messages"`
}

type jsonMessage struct {
	Role       string `json:"role"`
	Content    string `json:"content"`
	RawContent string `json:"raw_content,omitempty"`
	Sequence   int    `json:"sequence"`
}

func buildJSONConversation(conv *internal.Conversation, opts Options) jsonConversation {
	out := jsonConversation{
		ID:           conv.ID,
		Title:        conv.Title,
		MessageCount: conv.MessageCount,
		Source:       conv.Source,
		Messages:     make([]jsonMessage, 0, len(conv.Messages)),
	}
	if opts.IncludeMetadata {
		out.Workspace = conv.Workspace
		out.ExportedAt = time.Now().UTC().Format(time.RFC3339)
	}
	for _, msg := range conv.Messages {
		jm := jsonMessage{
			Role:     string(msg.Role),
			Content:  msg.Content,
			Sequence: msg.Sequence,
		}
		if msg.RawContent != msg.Content {
			jm.RawContent = msg.RawContent
		}
		out.Messages = append(out.Messages, jm)
	}
	return out
}

func renderJSON(conv *internal.Conversation, opts Options) (string, error) {
	encoded, err := json.MarshalIndent(buildJSONConversation(conv, opts), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode conversation %s: %w", conv.ID, err)
	}
	return string(encoded) + "\n", nil
}

// renderJSONList encodes many conversations as a single JSON list, used by
// merged exports.
func renderJSONList(convs []*internal.Conversation, opts Options) (string, error) {
	list := make([]jsonConversation, 0, len(convs))
	for _, conv := range convs {
		list = append(list, buildJSONConversation(conv, opts))
	}
	encoded, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode conversation list: %w", err)
	}
	return string(encoded) + "\n", nil
}
