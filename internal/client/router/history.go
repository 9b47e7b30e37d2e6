package router

// History is the navigation stack. The zero value is empty.
type History struct {
	entries []string
}

func (h *History) Push(path string) {
	h.entries = append(h.entries, path)
}

// Replace overwrites the current entry; on an empty history it pushes.
func (h *History) Replace(path string) {
	if len(h.entries) == 0 {
		h.Push(path)
		return
	}
	h.entries[len(h.entries)-1] = path
}

// Back drops the current entry and returns the previous one. It reports
// false, leaving the history alone, when there is nothing to go back to.
func (h *History) Back() (string, bool) {
	if len(h.entries) < 2 {
		return "", false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.entries[len(h.entries)-1], true
}

// Current returns the current entry, or "" when empty.
func (h *History) Current() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the stack, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
