// Package journal implements an append-only, in-memory log of human-readable
// operation descriptions.
//
// The journal is an audit trail, not a write-ahead log. Undo removes the most
// recent record and nothing else: it does not revert the change the record
// describes, and records carry no information that would allow it to.
package journal

import (
	"fmt"
	"io"
)

// Entry is a single journal record. Committed is set on creation and nothing
// inspects it afterwards.
type Entry struct {
	Description string
	Committed   bool
}

type Journal struct {
	entries []Entry
}

func New() *Journal {
	return &Journal{}
}

// AddEntry appends a committed record to the end of the journal.
func (journal *Journal) AddEntry(description string) {
	journal.entries = append(
		journal.entries,
		Entry{Description: description, Committed: true},
	)
}

// Undo removes the most recent record and returns its description. The second
// return value is false if the journal is empty.
func (journal *Journal) Undo() (string, bool) {
	if len(journal.entries) == 0 {
		return "", false
	}

	last := journal.entries[len(journal.entries)-1]
	journal.entries = journal.entries[:len(journal.entries)-1]
	return last.Description, true
}

// Len gives the number of records in the journal.
func (journal *Journal) Len() int {
	return len(journal.entries)
}

// Entries returns a copy of all records, oldest first.
func (journal *Journal) Entries() []Entry {
	entries := make([]Entry, len(journal.entries))
	copy(entries, journal.entries)
	return entries
}

// Print writes the journal to `w` as a numbered list beginning at 1.
func (journal *Journal) Print(w io.Writer) error {
	for i, entry := range journal.entries {
		_, err := fmt.Fprintf(
			w, "%d. %s (committed: %t)\n", i+1, entry.Description, entry.Committed)
		if err != nil {
			return err
		}
	}
	return nil
}
