package sets

// Entry is one pending set switch: the set that was active before the
// switch and the button that caused it.
type Entry struct {
	From    Set
	Trigger Key
}

// Stack records pending set switches so they can be undone in any order.
type Stack struct {
	entries []Entry
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0),
	}
}

// Push records a switch away from the given set.
func (s *Stack) Push(from Set, trigger Key) {
	s.entries = append(s.entries, Entry{
		From:    from,
		Trigger: trigger,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Remove takes out the most recent entry pushed by trigger and reports
// whether it was the top entry. When it was not, the entry above it
// inherits its From set, so unwinding still ends on the original set.
// Returns nil if trigger has no entry.
func (s *Stack) Remove(trigger Key) (entry *Entry, top bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Trigger != trigger {
			continue
		}

		removed := s.entries[i]
		top = i == len(s.entries)-1
		if !top {
			s.entries[i+1].From = removed.From
		}
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		return &removed, top
	}
	return nil, false
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
