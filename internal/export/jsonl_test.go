package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/voxtools/cursor-export/internal"
)

func TestRenderJSONL_OpenAI(t *testing.T) {
	conv := testConversation(
		msg(internal.RoleUser, "Fix the bug", 0),
		msg(internal.RoleAssistant, "Here is the fix", 1),
	)

	out, err := Render(conv, FormatJSONL, DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("openai export should be one line, got:\n%s", out)
	}

	var record struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("invalid JSONL line: %v", err)
	}
	if len(record.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(record.Messages))
	}
	if record.Messages[0].Role != "user" || record.Messages[1].Role != "assistant" {
		t.Errorf("roles = %s,%s", record.Messages[0].Role, record.Messages[1].Role)
	}
}

func TestRenderJSONL_OpenAI_SystemPrompt(t *testing.T) {
	conv := testConversation(msg(internal.RoleUser, "hello", 0))
	opts := DefaultOptions().WithSystemPrompt("You are terse.")

	out, err := Render(conv, FormatJSONL, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var record struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("invalid JSONL line: %v", err)
	}
	if record.Messages[0].Role != "system" || record.Messages[0].Content != "You are terse." {
		t.Errorf("leading system message missing, got %+v", record.Messages[0])
	}
}

func TestRenderJSONL_Alpaca_Pairing(t *testing.T) {
	conv := testConversation(
		msg(internal.RoleUser, "question one", 0),
		msg(internal.RoleAssistant, "answer one", 1),
		msg(internal.RoleUser, "question two", 2),
		msg(internal.RoleAssistant, "answer two", 3),
	)

	out, err := Render(conv, FormatJSONL, DefaultOptions().WithTraining(TrainingAlpaca))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("alpaca export of 4 messages should be 2 records, got %d", len(lines))
	}

	var records []alpacaRecord
	for _, line := range lines {
		var rec alpacaRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("invalid record %q: %v", line, err)
		}
		records = append(records, rec)
	}

	if records[0].Instruction != "question one" || records[0].Output != "answer one" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].Instruction != "question two" || records[1].Output != "answer two" {
		t.Errorf("records[1] = %+v", records[1])
	}
	if records[0].Input != "" {
		t.Errorf("input should be empty, got %q", records[0].Input)
	}
}

func TestRenderJSONL_Alpaca_TrailingUser(t *testing.T) {
	conv := testConversation(
		msg(internal.RoleUser, "question", 0),
		msg(internal.RoleAssistant, "answer", 1),
		msg(internal.RoleUser, "follow-up with no reply", 2),
	)

	out, err := Render(conv, FormatJSONL, DefaultOptions().WithTraining(TrainingAlpaca))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d records, want 2", len(lines))
	}

	var last alpacaRecord
	if err := json.Unmarshal([]byte(lines[1]), &last); err != nil {
		t.Fatal(err)
	}
	if last.Instruction != "follow-up with no reply" || last.Output != "" {
		t.Errorf("trailing unpaired user record = %+v, want empty output", last)
	}
}

func TestRenderJSONL_Alpaca_System(t *testing.T) {
	conv := testConversation(
		msg(internal.RoleUser, "q", 0),
		msg(internal.RoleAssistant, "a", 1),
	)
	opts := DefaultOptions().WithTraining(TrainingAlpaca).WithSystemPrompt("sys")

	out, err := Render(conv, FormatJSONL, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var rec alpacaRecord
	if err := json.Unmarshal([]byte(strings.TrimSuffix(out, "\n")), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.System != "sys" {
		t.Errorf("System = %q, want sys", rec.System)
	}
}

func TestRenderJSONL_ShareGPT(t *testing.T) {
	conv := testConversation(
		msg(internal.RoleUser, "Fix the bug", 0),
		msg(internal.RoleAssistant, "Here is the fix", 1),
	)

	out, err := Render(conv, FormatJSONL, DefaultOptions().WithTraining(TrainingShareGPT))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var record struct {
		ID            string `json:"id"`
		Conversations []struct {
			From  string `json:"from"`
			Value string `json:"value"`
		} `json:"conversations"`
	}
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("invalid JSONL line: %v", err)
	}

	if record.ID != conv.ID {
		t.Errorf("id = %q, want %q", record.ID, conv.ID)
	}
	if len(record.Conversations) != 2 {
		t.Fatalf("conversations = %d, want 2", len(record.Conversations))
	}
	if record.Conversations[0].From != "human" || record.Conversations[0].Value != "Fix the bug" {
		t.Errorf("turn 0 = %+v", record.Conversations[0])
	}
	if record.Conversations[1].From != "gpt" || record.Conversations[1].Value != "Here is the fix" {
		t.Errorf("turn 1 = %+v", record.Conversations[1])
	}
}
