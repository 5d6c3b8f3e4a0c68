package internal

import (
	"errors"
	"testing"

	"github.com/voxtools/cursor-export/testutil"
)

func twoStoreService(t *testing.T) *Service {
	t.Helper()

	global, globalPath := testStore(t)
	testutil.InsertEntries(t, globalPath, [][2]string{
		{testutil.BubbleKey(testutil.ConvA, "m1"), testutil.UserBubble("Refactor the parser")},
		{testutil.BubbleKey(testutil.ConvA, "m2"), testutil.AssistantBubble("Sure, here is a plan")},
	})

	workspace, workspacePath := workspaceStore(t, "deadbeef01")
	testutil.InsertEntries(t, workspacePath, [][2]string{
		{testutil.BubbleKey(testutil.ConvB, "m1"), testutil.UserBubble("Explain goroutines")},
	})

	return NewService([]StoreHandle{global, workspace})
}

func TestListConversations(t *testing.T) {
	service := twoStoreService(t)

	conversations := service.ListConversations(ListFilter{})
	if len(conversations) != 2 {
		t.Fatalf("ListConversations() returned %d, want 2", len(conversations))
	}
	// Grouped by store, then discovery order.
	if conversations[0].ID != testutil.ConvA || conversations[1].ID != testutil.ConvB {
		t.Errorf("order = %s,%s", conversations[0].ID, conversations[1].ID)
	}
}

func TestListConversations_Filters(t *testing.T) {
	service := twoStoreService(t)

	byWorkspace := service.ListConversations(ListFilter{Workspace: "deadbeef01"})
	if len(byWorkspace) != 1 || byWorkspace[0].ID != testutil.ConvB {
		t.Errorf("workspace filter returned %d conversations", len(byWorkspace))
	}

	byKind := service.ListConversations(ListFilter{Kind: StoreGlobal})
	if len(byKind) != 1 || byKind[0].ID != testutil.ConvA {
		t.Errorf("kind filter returned %d conversations", len(byKind))
	}

	limited := service.ListConversations(ListFilter{Limit: 1})
	if len(limited) != 1 {
		t.Errorf("limit filter returned %d conversations", len(limited))
	}
}

func TestGetConversation(t *testing.T) {
	service := twoStoreService(t)

	conv, err := service.GetConversation(testutil.ConvB)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if conv.Title != "Explain goroutines" {
		t.Errorf("Title = %q", conv.Title)
	}
}

func TestGetConversation_NotFound(t *testing.T) {
	service := twoStoreService(t)

	_, err := service.GetConversation("cccccccc-cccc-cccc-cccc-cccccccccccc")
	if err == nil {
		t.Fatal("GetConversation() of an unknown id should fail")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error type = %T, want *NotFoundError", err)
	}
}

func TestSearchConversations(t *testing.T) {
	service := twoStoreService(t)

	// Case-insensitive match on message content.
	matches := service.SearchConversations("GOROUTINES", 0)
	if len(matches) != 1 || matches[0].ID != testutil.ConvB {
		t.Fatalf("SearchConversations() = %d matches, want 1", len(matches))
	}

	// Match on title.
	matches = service.SearchConversations("refactor", 0)
	if len(matches) != 1 || matches[0].ID != testutil.ConvA {
		t.Fatalf("title search = %d matches, want 1", len(matches))
	}

	if matches := service.SearchConversations("no such phrase anywhere", 0); len(matches) != 0 {
		t.Errorf("search returned %d matches, want 0", len(matches))
	}

	// Empty query matches everything; limit caps it.
	if matches := service.SearchConversations("", 1); len(matches) != 1 {
		t.Errorf("limited search returned %d matches, want 1", len(matches))
	}
}

func TestCrossStoreIDsNotMerged(t *testing.T) {
	// The same id in two stores is two conversations: each workspace is a
	// separate universe.
	global, globalPath := testStore(t)
	testutil.InsertEntries(t, globalPath, [][2]string{
		{testutil.BubbleKey(testutil.ConvA, "m1"), testutil.UserBubble("global copy")},
	})
	workspace, workspacePath := workspaceStore(t, "deadbeef01")
	testutil.InsertEntries(t, workspacePath, [][2]string{
		{testutil.BubbleKey(testutil.ConvA, "m1"), testutil.UserBubble("workspace copy")},
	})

	service := NewService([]StoreHandle{global, workspace})

	conversations := service.ListConversations(ListFilter{})
	if len(conversations) != 2 {
		t.Fatalf("ListConversations() returned %d, want 2 distinct conversations", len(conversations))
	}
	if conversations[0].Source == conversations[1].Source {
		t.Error("the two copies should come from different stores")
	}

	// Get returns the first store's hit in discovery order.
	conv, err := service.GetConversation(testutil.ConvA)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if conv.Title != "global copy" {
		t.Errorf("Title = %q, want the global store's copy", conv.Title)
	}
}
