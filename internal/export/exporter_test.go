package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/voxtools/cursor-export/internal"
	"github.com/voxtools/cursor-export/testutil"
)

func fixtureService(t *testing.T) *internal.Service {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state.vscdb")
	testutil.CreateStoreDB(t, path)
	testutil.InsertEntries(t, path, [][2]string{
		{testutil.BubbleKey(testutil.ConvA, "m1"), testutil.UserBubble("Fix the bug")},
		{testutil.BubbleKey(testutil.ConvA, "m2"), testutil.AssistantBubble("Here is the fix")},
		{testutil.BubbleKey(testutil.ConvB, "m1"), testutil.UserBubble("Explain goroutines")},
	})

	store := internal.StoreHandle{Kind: internal.StoreGlobal, Path: path, DisplayName: "globalStorage"}
	return internal.NewService([]internal.StoreHandle{store})
}

func TestDeriveFilename(t *testing.T) {
	conv := &internal.Conversation{
		ID:    testConvID,
		Title: "Fix: the Bug! (again)",
	}
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	got := deriveFilename(conv, FormatMarkdown, now)
	if got != "2026-03-14_fix-the-bug-again_aaaaaaaa.md" {
		t.Errorf("deriveFilename() = %q", got)
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fix the bug", "fix-the-bug"},
		{"  lots   of//junk  ", "lots-of-junk"},
		{"", "untitled"},
		{"!!!", "untitled"},
		{strings.Repeat("a", 80), strings.Repeat("a", 50)},
	}
	for _, tt := range tests {
		if got := sanitizeTitle(tt.in); got != tt.want {
			t.Errorf("sanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportToFile(t *testing.T) {
	service := fixtureService(t)
	outDir := t.TempDir()
	exporter := NewExporter(service, outDir)

	conv, err := service.GetConversation(testutil.ConvA)
	if err != nil {
		t.Fatal(err)
	}

	path, err := exporter.ExportToFile(conv, FormatMarkdown, "", DefaultOptions())
	if err != nil {
		t.Fatalf("ExportToFile() error = %v", err)
	}
	if filepath.Dir(path) != outDir {
		t.Errorf("derived path %q not under %q", path, outDir)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(content), "# Fix the bug") {
		t.Errorf("export content wrong:\n%s", content)
	}
}

func TestExportToFile_ExplicitPathCreatesParents(t *testing.T) {
	service := fixtureService(t)
	exporter := NewExporter(service, t.TempDir())

	conv, err := service.GetConversation(testutil.ConvA)
	if err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(t.TempDir(), "nested", "deeper", "out.json")
	path, err := exporter.ExportToFile(conv, FormatJSON, target, DefaultOptions())
	if err != nil {
		t.Fatalf("ExportToFile() error = %v", err)
	}
	if path != target {
		t.Errorf("path = %q, want %q", path, target)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}

func TestExportAll(t *testing.T) {
	service := fixtureService(t)
	outDir := t.TempDir()
	exporter := NewExporter(service, outDir)

	report, err := exporter.ExportAll(FormatJSON, DefaultOptions())
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}
	if report.Attempted != 2 || report.Succeeded != 2 || report.Skipped != 0 {
		t.Errorf("report = %+v", report)
	}
	if len(report.Paths) != 2 {
		t.Fatalf("paths = %v", report.Paths)
	}
	for _, path := range report.Paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing export %s: %v", path, err)
		}
	}
}

func TestExportAll_UnsupportedFormat(t *testing.T) {
	exporter := NewExporter(fixtureService(t), t.TempDir())

	_, err := exporter.ExportAll(Format("docx"), DefaultOptions())
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Errorf("error = %v, want *UnsupportedFormatError", err)
	}
}

func TestExportMerged_JSON(t *testing.T) {
	exporter := NewExporter(fixtureService(t), t.TempDir())

	path, err := exporter.ExportMerged(FormatJSON, "", DefaultOptions())
	if err != nil {
		t.Fatalf("ExportMerged() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(content, &list); err != nil {
		t.Fatalf("merged JSON is not a list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("merged list has %d items, want 2", len(list))
	}
}

func TestExportMerged_JSONL(t *testing.T) {
	exporter := NewExporter(fixtureService(t), t.TempDir())

	path, err := exporter.ExportMerged(FormatJSONL, "", DefaultOptions())
	if err != nil {
		t.Fatalf("ExportMerged() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("merged JSONL has %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Errorf("line %q is not a JSON object: %v", line, err)
		}
	}
}

func TestExportMerged_Markdown(t *testing.T) {
	exporter := NewExporter(fixtureService(t), t.TempDir())

	path, err := exporter.ExportMerged(FormatMarkdown, "", DefaultOptions())
	if err != nil {
		t.Fatalf("ExportMerged() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(content)
	if !strings.HasPrefix(out, "# Exported Conversations") {
		t.Errorf("shared header missing:\n%.200s", out)
	}
	if !strings.Contains(out, "# Fix the bug") || !strings.Contains(out, "# Explain goroutines") {
		t.Errorf("per-conversation documents missing:\n%s", out)
	}
}

func TestExportMerged_UnsupportedFormat(t *testing.T) {
	exporter := NewExporter(fixtureService(t), t.TempDir())

	_, err := exporter.ExportMerged(FormatHTML, "", DefaultOptions())
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Errorf("error = %v, want *UnsupportedFormatError for merged html", err)
	}
}
