package internal

import "strings"

// ListFilter narrows ListConversations results. Zero values match everything.
type ListFilter struct {
	Workspace string
	Kind      StoreKind
	Limit     int
}

// Service is the caller-facing surface over every discovered store: list,
// get, search. Results are grouped by store, then by discovery order; there
// is no defined global ordering beyond that.
type Service struct {
	stores []StoreHandle
}

// NewService creates a Service over the given stores.
func NewService(stores []StoreHandle) *Service {
	return &Service{stores: stores}
}

// Stores returns the handles this service reads from.
func (s *Service) Stores() []StoreHandle {
	return s.stores
}

// ListConversations reconstructs every reachable conversation matching the
// filter. Conversations are never merged across stores: the same id in two
// workspace stores is two distinct conversations.
func (s *Service) ListConversations(filter ListFilter) []*Conversation {
	var conversations []*Conversation
	for _, store := range s.stores {
		if filter.Kind != "" && store.Kind != filter.Kind {
			continue
		}
		if filter.Workspace != "" && store.WorkspaceHash != filter.Workspace {
			continue
		}
		for _, conv := range NewReconstructor(store).ReconstructAll() {
			conversations = append(conversations, conv)
			if filter.Limit > 0 && len(conversations) >= filter.Limit {
				return conversations
			}
		}
	}
	return conversations
}

// GetConversation finds one conversation by id, scanning stores in discovery
// order and returning the first hit. Ids are not merged across stores.
func (s *Service) GetConversation(id string) (*Conversation, error) {
	for _, store := range s.stores {
		if conv := NewReconstructor(store).Reconstruct(id); conv != nil {
			return conv, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// SearchConversations returns conversations whose title or message content
// contains the query, case-insensitively. Linear scan, no index.
func (s *Service) SearchConversations(query string, limit int) []*Conversation {
	needle := strings.ToLower(query)
	var matches []*Conversation
	for _, conv := range s.ListConversations(ListFilter{}) {
		if !conversationMatches(conv, needle) {
			continue
		}
		matches = append(matches, conv)
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches
}

func conversationMatches(conv *Conversation, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(conv.Title), needle) {
		return true
	}
	for _, msg := range conv.Messages {
		if strings.Contains(strings.ToLower(msg.Content), needle) {
			return true
		}
	}
	return false
}
