package libatm

import (
	"fmt"
	"sort"
	"strings"
)

// NoteSequence is an ordered sequence of notes, duplicates and order
// preserved. It is the unit a File encodes.
type NoteSequence struct {
	Notes []Note
}

// NewNoteSequence returns a sequence over the given notes.
func NewNoteSequence(notes []Note) NoteSequence {
	return NoteSequence{Notes: notes}
}

// Len returns the number of notes in the sequence.
func (s NoteSequence) Len() int { return len(s.Notes) }

func (s NoteSequence) String() string {
	parts := make([]string, len(s.Notes))
	for i, note := range s.Notes {
		parts[i] = note.String()
	}
	return strings.Join(parts, ",")
}

// SequenceError reports the first note that failed to parse within a
// comma-separated list, by zero-based index.
type SequenceError struct {
	Index int
	Err   error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("invalid note at index %d: %v", e.Index, e.Err)
}

func (e *SequenceError) Unwrap() error { return e.Err }

// ParseNoteSequence parses a comma-separated list of notes, e.g.
// "C:4,D:4,E:4". A trailing comma produces an empty trailing element,
// which fails at its index rather than being dropped.
func ParseNoteSequence(s string) (NoteSequence, error) {
	parts := strings.Split(s, ",")
	notes := make([]Note, 0, len(parts))
	for i, part := range parts {
		note, err := ParseNote(part)
		if err != nil {
			return NoteSequence{}, &SequenceError{Index: i, Err: err}
		}
		notes = append(notes, note)
	}
	return NoteSequence{Notes: notes}, nil
}

// NoteSet is a deduplicated collection of notes held in a fixed total
// order: pitch class in declaration order (Rest last), then octave.
// The zero value is an empty set.
type NoteSet struct {
	notes []Note
}

func noteLess(a, b Note) bool {
	if a.Type != b.Type {
		return a.Type < b.Type
	}
	return a.Octave < b.Octave
}

// NewNoteSet returns the set of the given notes, duplicates collapsed.
func NewNoteSet(notes []Note) NoteSet {
	sorted := make([]Note, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool { return noteLess(sorted[i], sorted[j]) })
	deduped := sorted[:0]
	for _, note := range sorted {
		if len(deduped) == 0 || note != deduped[len(deduped)-1] {
			deduped = append(deduped, note)
		}
	}
	return NoteSet{notes: deduped}
}

// ParseNoteSet parses a comma-separated list of notes into a set.
// Element parsing follows the same rules as ParseNoteSequence, including
// the positional SequenceError; the result order is the set's total
// order, not input order.
func ParseNoteSet(s string) (NoteSet, error) {
	sequence, err := ParseNoteSequence(s)
	if err != nil {
		return NoteSet{}, err
	}
	return NewNoteSet(sequence.Notes), nil
}

// Len returns the number of distinct notes in the set.
func (s NoteSet) Len() int { return len(s.notes) }

// Contains reports whether the set holds the given note.
func (s NoteSet) Contains(n Note) bool {
	i := sort.Search(len(s.notes), func(i int) bool { return !noteLess(s.notes[i], n) })
	return i < len(s.notes) && s.notes[i] == n
}

// Notes returns the set's notes in its total order. The slice is a copy;
// mutating it does not affect the set.
func (s NoteSet) Notes() []Note {
	notes := make([]Note, len(s.notes))
	copy(notes, s.notes)
	return notes
}

func (s NoteSet) String() string {
	return NoteSequence{Notes: s.notes}.String()
}
