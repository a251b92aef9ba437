// Package libatm generates minimal single-track, single-channel Standard
// MIDI Files from note sequences, and predicts their exact on-disk size.
package libatm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoteType is one of the twelve chromatic pitch classes, spelled with
// sharps, or Rest for the absence of sound.
type NoteType int

const (
	C NoteType = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
	Rest
)

// RestNoteNumber is the note number Convert returns for Rest. Real MIDI
// note numbers fit in 0..127, so the maximum uint32 is unambiguous.
const RestNoteNumber uint32 = math.MaxUint32

// chromaticOffset maps a pitch class to its semitone offset within the
// octave. Deliberately a separate lookup rather than the constant values
// above, so that the wire bytes do not depend on declaration order.
func chromaticOffset(t NoteType) uint32 {
	switch t {
	case C:
		return 0
	case CSharp:
		return 1
	case D:
		return 2
	case DSharp:
		return 3
	case E:
		return 4
	case F:
		return 5
	case FSharp:
		return 6
	case G:
		return 7
	case GSharp:
		return 8
	case A:
		return 9
	case ASharp:
		return 10
	case B:
		return 11
	default:
		panic(fmt.Sprintf("libatm: no chromatic offset for note type %d", int(t)))
	}
}

var noteTypeNames = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B", "Rest"}

func (t NoteType) String() string {
	if t < C || t > Rest {
		return fmt.Sprintf("NoteType(%d)", int(t))
	}
	return noteTypeNames[t]
}

// NoteTypeError reports an unrecognized pitch-class spelling.
type NoteTypeError struct {
	Input string
}

func (e *NoteTypeError) Error() string {
	return fmt.Sprintf("unknown note type %q", e.Input)
}

// ParseNoteType parses a pitch class from text. Enharmonic spellings are
// accepted case-insensitively ("C#", "CSharp", "Dflat", "D♭" and "Db" all
// name the same class); "rest" and "empty" name Rest.
func ParseNoteType(s string) (NoteType, error) {
	switch strings.ToLower(s) {
	case "bsharp", "b#", "c":
		return C, nil
	case "csharp", "c#", "dflat", "d♭", "db":
		return CSharp, nil
	case "d":
		return D, nil
	case "dsharp", "d#", "eflat", "e♭", "eb":
		return DSharp, nil
	case "e", "fflat", "f♭", "fb":
		return E, nil
	case "esharp", "e#", "f":
		return F, nil
	case "fsharp", "f#", "gflat", "g♭", "gb":
		return FSharp, nil
	case "g":
		return G, nil
	case "gsharp", "g#", "aflat", "a♭", "ab":
		return GSharp, nil
	case "a":
		return A, nil
	case "asharp", "a#", "bflat", "b♭", "bb":
		return ASharp, nil
	case "cflat", "c♭", "cb", "b":
		return B, nil
	case "rest", "empty":
		return Rest, nil
	default:
		return 0, &NoteTypeError{Input: s}
	}
}

// Note is a key on the piano: a pitch class plus an octave. Middle C is
// Note{Type: C, Octave: 4}.
//
// The octave is not validated; only octaves -1 through 9 yield note
// numbers a MIDI device can play, but out-of-range values are allowed
// and Convert simply produces an out-of-range number.
type Note struct {
	Type   NoteType
	Octave uint32
}

// NewNote returns the note with the given pitch class and octave.
func NewNote(t NoteType, octave uint32) Note {
	return Note{Type: t, Octave: octave}
}

// Convert returns the MIDI note number for the note. Rest converts to
// RestNoteNumber regardless of octave.
func (n Note) Convert() uint32 {
	if n.Type == Rest {
		return RestNoteNumber
	}
	return (n.Octave+1)*12 + chromaticOffset(n.Type)
}

func (n Note) String() string {
	return fmt.Sprintf("%v:%d", n.Type, n.Octave)
}

// NoteFormatError reports note text that does not split into exactly one
// "<note>:<octave>" pair.
type NoteFormatError struct {
	Input string
}

func (e *NoteFormatError) Error() string {
	return fmt.Sprintf("invalid note format (expected '<note>:<octave>', found %q)", e.Input)
}

// OctaveError reports octave text that is not an unsigned integer.
type OctaveError struct {
	Input string
	Err   error
}

func (e *OctaveError) Error() string {
	return fmt.Sprintf("invalid octave %q: %v", e.Input, e.Err)
}

func (e *OctaveError) Unwrap() error { return e.Err }

// ParseNote parses a note from "<note>:<octave>" text, e.g. "C:4" or
// "rest:0".
func ParseNote(s string) (Note, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Note{}, &NoteFormatError{Input: s}
	}
	noteType, err := ParseNoteType(parts[0])
	if err != nil {
		return Note{}, err
	}
	octave, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Note{}, &OctaveError{Input: parts[1], Err: err}
	}
	return Note{Type: noteType, Octave: uint32(octave)}, nil
}
