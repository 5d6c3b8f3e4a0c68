package internal

// Reconstructor rebuilds conversations from one store's raw entries. It holds
// no database connection; every call is a fresh read-only pass.
type Reconstructor struct {
	store       StoreHandle
	indexLoaded bool
	index       map[string]composerRecord
}

// NewReconstructor creates a Reconstructor for one store.
func NewReconstructor(store StoreHandle) *Reconstructor {
	return &Reconstructor{store: store}
}

// Reconstruct rebuilds one conversation. It returns nil when the id has no
// entries in this store. A conversation whose entries all fail to decode is
// still returned with zero messages, so callers can tell "no such id" from
// "id existed but was empty or corrupt".
func (r *Reconstructor) Reconstruct(conversationID string) *Conversation {
	entries := FetchConversationEntries(r.store, conversationID)
	if len(entries) == 0 {
		return nil
	}

	messages := make([]Message, 0, len(entries))
	for _, entry := range entries {
		msg, err := DecodeMessage(entry, conversationID, len(messages))
		if err != nil {
			LogWarn("dropping entry: %v", err)
			continue
		}
		messages = append(messages, msg)
	}

	conv := &Conversation{
		ID:           conversationID,
		Title:        DeriveTitle(messages),
		Messages:     messages,
		MessageCount: len(messages),
		Source:       r.store.DisplayName,
		Workspace:    r.store.WorkspaceHash,
	}

	if rec, ok := r.lookupName(conversationID); ok && rec.Name != "" {
		conv.Title = rec.Name
	}

	return conv
}

// ReconstructAll rebuilds every conversation discoverable in the store, in
// discovery order.
func (r *Reconstructor) ReconstructAll() []*Conversation {
	ids := ListConversationIDs(r.store)
	conversations := make([]*Conversation, 0, len(ids))
	for _, id := range ids {
		if conv := r.Reconstruct(id); conv != nil {
			conversations = append(conversations, conv)
		}
	}
	return conversations
}

// lookupName consults the conversation-name index kept by workspace stores.
// Best-effort: the index is loaded at most once and its absence never fails
// reconstruction.
func (r *Reconstructor) lookupName(conversationID string) (composerRecord, bool) {
	if r.store.WorkspaceHash == "" {
		return composerRecord{}, false
	}
	if !r.indexLoaded {
		r.indexLoaded = true
		if raw, ok := FetchComposerIndex(r.store); ok {
			r.index = parseComposerIndex(raw)
		}
	}
	rec, ok := r.index[conversationID]
	return rec, ok
}
