package libatm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNoteSequence(t *testing.T) {
	sequence, err := ParseNoteSequence("C:4,D:5,CSharp:8,DSharp:3")
	assert.NoError(t, err)
	assert.Equal(t, []Note{
		NewNote(C, 4),
		NewNote(D, 5),
		NewNote(CSharp, 8),
		NewNote(DSharp, 3),
	}, sequence.Notes)
}

func TestParseNoteSequenceKeepsDuplicatesAndOrder(t *testing.T) {
	sequence, err := ParseNoteSequence("D:5,C:4,C:4")
	assert.NoError(t, err)
	assert.Equal(t, []Note{
		NewNote(D, 5),
		NewNote(C, 4),
		NewNote(C, 4),
	}, sequence.Notes)
}

func TestParseNoteSequenceBadElement(t *testing.T) {
	_, err := ParseNoteSequence("C:4,CL:8,D:6")
	var seqErr *SequenceError
	assert.ErrorAs(t, err, &seqErr)
	assert.Equal(t, 1, seqErr.Index)
	var typeErr *NoteTypeError
	assert.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "CL", typeErr.Input)
}

func TestParseNoteSequenceTrailingComma(t *testing.T) {
	// The empty element after the trailing comma must fail at its own
	// index, not be dropped.
	_, err := ParseNoteSequence("C:4,D:4,")
	var seqErr *SequenceError
	if !errors.As(err, &seqErr) {
		t.Fatalf("ParseNoteSequence(\"C:4,D:4,\") = %v, want SequenceError", err)
	}
	if seqErr.Index != 2 {
		t.Errorf("SequenceError index = %d want 2", seqErr.Index)
	}
	var formatErr *NoteFormatError
	if !errors.As(seqErr.Err, &formatErr) {
		t.Errorf("SequenceError cause = %v, want NoteFormatError", seqErr.Err)
	}
}

func TestParseNoteSet(t *testing.T) {
	set, err := ParseNoteSet("C:4,D:4,E:4,F:4,F#:4,DFlat:5")
	assert.NoError(t, err)
	assert.Equal(t, []Note{
		NewNote(C, 4),
		NewNote(CSharp, 5),
		NewNote(D, 4),
		NewNote(E, 4),
		NewNote(F, 4),
		NewNote(FSharp, 4),
	}, set.Notes())
}

func TestParseNoteSetCollapsesDuplicates(t *testing.T) {
	set, err := ParseNoteSet("C:4,C:4,D:5")
	assert.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []Note{NewNote(C, 4), NewNote(D, 5)}, set.Notes())
}

func TestNoteSetOrderIndependentOfInput(t *testing.T) {
	a, err := ParseNoteSet("D:5,C:4,A:2")
	assert.NoError(t, err)
	b, err := ParseNoteSet("A:2,D:5,C:4")
	assert.NoError(t, err)
	assert.Equal(t, a.Notes(), b.Notes())
}

func TestNoteSetOrdersRestLast(t *testing.T) {
	set := NewNoteSet([]Note{
		NewNote(Rest, 0),
		NewNote(B, 9),
		NewNote(C, 0),
	})
	assert.Equal(t, []Note{
		NewNote(C, 0),
		NewNote(B, 9),
		NewNote(Rest, 0),
	}, set.Notes())
}

func TestNoteSetNotesReturnsCopy(t *testing.T) {
	set := NewNoteSet([]Note{NewNote(C, 4), NewNote(D, 4)})
	notes := set.Notes()
	notes[0] = NewNote(B, 9)
	assert.Equal(t, []Note{NewNote(C, 4), NewNote(D, 4)}, set.Notes())
}

func TestNoteSetContains(t *testing.T) {
	set := NewNoteSet([]Note{NewNote(C, 4), NewNote(Rest, 0)})
	assert.True(t, set.Contains(NewNote(C, 4)))
	assert.True(t, set.Contains(NewNote(Rest, 0)))
	assert.False(t, set.Contains(NewNote(C, 5)))
	assert.False(t, set.Contains(NewNote(D, 4)))
}

func TestParseNoteSetTrailingComma(t *testing.T) {
	_, err := ParseNoteSet("C:4,C:8,D:6,")
	var seqErr *SequenceError
	assert.ErrorAs(t, err, &seqErr)
	assert.Equal(t, 3, seqErr.Index)
}
