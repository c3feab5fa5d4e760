package checklist

// Set is a checked state over flattened item positions; Set[p] reports
// whether the item at position p is checked.
type Set []bool

// Entry is one outline's contribution to a Summary.
type Entry struct {
	ID      string
	Title   string
	Percent int
}

// Summary splits entries with progress into ongoing and completed.
type Summary struct {
	Ongoing   []Entry // 0 < percent < 100, by percent descending
	Completed []Entry // percent >= 100, by title
}

// ChecklistStats represents checklist progress
type ChecklistStats struct {
	Total     int // Total items
	Completed int // Checked items
	Pending   int // Unchecked items
	Progress  int // Completion percentage (0-100)
}

// ToggleResult is the outcome of toggling one position.
type ToggleResult struct {
	Checked  Set  // Checked state after the toggle
	Index    int  // New stored index, meaningful only when Keep is true
	Keep     bool // false means the stored record must be deleted
	TurnedOn bool // true if the toggled item is now checked
}
