package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voxtools/cursor-export/internal"
)

// chatMessage is one turn in the openai training encoding.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRecord struct {
	Messages []chatMessage `json:"messages"`
}

// alpacaRecord is one instruction/output pair in the alpaca encoding.
type alpacaRecord struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
	System      string `json:"system"`
}

type sharegptRecord struct {
	ID            string         `json:"id"`
	Conversations []sharegptTurn `json:"conversations"`
}

type sharegptTurn struct {
	From  string `json:"from"`
	Value string `json:"value"`
}

// renderJSONL renders one conversation in the configured training encoding.
// openai and sharegpt produce one line; alpaca produces one line per
// (User, Assistant) pair.
func renderJSONL(conv *internal.Conversation, opts Options) (string, error) {
	switch opts.Training {
	case TrainingOpenAI:
		return encodeLine(openaiRecordFor(conv, opts))
	case TrainingAlpaca:
		records := alpacaRecordsFor(conv, opts)
		lines := make([]string, 0, len(records))
		for _, rec := range records {
			line, err := encodeLine(rec)
			if err != nil {
				return "", err
			}
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		return strings.Join(lines, "\n") + "\n", nil
	case TrainingShareGPT:
		return encodeLine(sharegptRecordFor(conv))
	default:
		return "", fmt.Errorf("unknown training format: %s", opts.Training)
	}
}

func encodeLine(record interface{}) (string, error) {
	encoded, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode training record: %w", err)
	}
	return string(encoded) + "\n", nil
}

func openaiRecordFor(conv *internal.Conversation, opts Options) openaiRecord {
	messages := make([]chatMessage, 0, len(conv.Messages)+1)
	if opts.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: opts.SystemPrompt})
	}
	for _, msg := range conv.Messages {
		messages = append(messages, chatMessage{Role: string(msg.Role), Content: msg.Content})
	}
	return openaiRecord{Messages: messages}
}

// alpacaRecordsFor consumes messages in fixed-size groups of two in original
// sequence order. The encoding assumes strict User/Assistant alternation; a
// sequence that does not alternate is paired as-is, with a warning. A
// trailing unpaired User message yields a record with an empty output.
func alpacaRecordsFor(conv *internal.Conversation, opts Options) []alpacaRecord {
	var records []alpacaRecord
	msgs := conv.Messages
	for i := 0; i < len(msgs); i += 2 {
		rec := alpacaRecord{
			Instruction: msgs[i].Content,
			System:      opts.SystemPrompt,
		}
		if i+1 < len(msgs) {
			rec.Output = msgs[i+1].Content
			if msgs[i].Role != internal.RoleUser || msgs[i+1].Role != internal.RoleAssistant {
				internal.LogWarn("conversation %s: non-alternating pair at sequence %d, alpaca pairing may be wrong",
					conv.ID, msgs[i].Sequence)
			}
		}
		records = append(records, rec)
	}
	return records
}

func sharegptRecordFor(conv *internal.Conversation) sharegptRecord {
	turns := make([]sharegptTurn, 0, len(conv.Messages))
	for _, msg := range conv.Messages {
		from := "human"
		if msg.Role == internal.RoleAssistant {
			from = "gpt"
		}
		turns = append(turns, sharegptTurn{From: from, Value: msg.Content})
	}
	return sharegptRecord{ID: conv.ID, Conversations: turns}
}
