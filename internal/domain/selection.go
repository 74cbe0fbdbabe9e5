package domain

import "sort"

// SelectionState tracks which optional add-ons the client currently has
// chosen. It is session-local: seeded from the proposal's recommended
// add-ons (or the persisted snapshot once signed), mutated only by explicit
// toggles, and discarded if the client navigates away before signing.
type SelectionState struct {
	selected map[string]struct{}
}

func NewSelectionState(ids ...string) *SelectionState {
	s := &SelectionState{selected: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
	return s
}

// Toggle flips the membership of the given add-on id and reports whether it
// is selected afterwards.
func (s *SelectionState) Toggle(id string) bool {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return false
	}
	s.selected[id] = struct{}{}
	return true
}

func (s *SelectionState) Has(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// IDs returns the selected add-on ids in lexical order so callers get a
// deterministic sequence out of the set.
func (s *SelectionState) IDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *SelectionState) Len() int {
	return len(s.selected)
}
