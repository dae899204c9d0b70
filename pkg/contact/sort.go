package contact

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects how a contact list is ordered for display
type SortMode string

const (
	SortByDate SortMode = "date" // newest first
	SortByName SortMode = "name" // alphabetical
)

// Toggle flips between date and name ordering.
func (m SortMode) Toggle() SortMode {
	if m == SortByName {
		return SortByDate
	}
	return SortByName
}

// Label is the name of the mode a toggle would switch to.
func (m SortMode) Label() string {
	if m == SortByName {
		return "Date"
	}
	return "Name"
}

// DateLayout renders creation dates as e.g. "Mar 4, 2025, 09:30 AM".
const DateLayout = "Jan 2, 2006, 03:04 PM"

// FormatDate formats t in the local zone using DateLayout.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// Sorted returns a sorted copy of contacts; the input slice is left untouched.
// Date order is newest first, name order follows English collation.
func Sorted(contacts []Contact, mode SortMode) []Contact {
	out := slices.Clone(contacts)
	if mode == SortByName {
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b Contact) int {
			return col.CompareString(a.Name, b.Name)
		})
		return out
	}
	slices.SortStableFunc(out, func(a, b Contact) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
