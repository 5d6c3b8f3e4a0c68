package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voxtools/cursor-export/testutil"
)

// runCommand executes the root command with args and a fixture storage root.
func runCommand(t *testing.T, storage string, args ...string) error {
	t.Helper()

	full := append([]string{"--storage", storage}, args...)
	rootCmd.SetArgs(full)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	// Flag-bound package vars leak between Execute calls; reset the ones
	// that select behavior.
	t.Cleanup(func() {
		storagePath = ""
		exportAll = false
		exportMerged = false
		exportID = ""
		exportFormat = "markdown"
		exportOut = "./exports"
	})

	return rootCmd.Execute()
}

func fixtureBase(t *testing.T) string {
	t.Helper()

	base, globalDB, _ := testutil.CreateBaseLayout(t, "deadbeef01")
	testutil.InsertEntries(t, globalDB, [][2]string{
		{testutil.BubbleKey(testutil.ConvA, "m1"), testutil.UserBubble("Fix the bug")},
		{testutil.BubbleKey(testutil.ConvA, "m2"), testutil.AssistantBubble("Here is the fix")},
	})
	return base
}

func TestExportCommand_All(t *testing.T) {
	base := fixtureBase(t)
	outDir := t.TempDir()

	err := runCommand(t, base, "export", "--all", "--format", "md", "--out", outDir)
	if err != nil {
		t.Fatalf("export --all failed: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(outDir, "*.md"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected 1 markdown export, got %v (err %v)", matches, err)
	}

	content, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "# Fix the bug") {
		t.Errorf("export content wrong:\n%s", content)
	}
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	base := fixtureBase(t)

	if err := runCommand(t, base, "export", "--all", "--format", "docx"); err == nil {
		t.Error("export with an unknown format should fail")
	}
}

func TestExportCommand_NothingSelected(t *testing.T) {
	base := fixtureBase(t)

	if err := runCommand(t, base, "export", "--format", "md"); err == nil {
		t.Error("export without --id/--all/--merged should fail")
	}
}

func TestExportCommand_MissingID(t *testing.T) {
	base := fixtureBase(t)

	err := runCommand(t, base, "export", "--format", "md",
		"--id", "cccccccc-cccc-cccc-cccc-cccccccccccc", "--out", t.TempDir())
	if err == nil {
		t.Error("export of an unknown id should fail")
	}
}
