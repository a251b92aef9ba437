package libatm

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultVelocity is the attack velocity File uses for every note.
const DefaultVelocity byte = 0x64

// TrackSize returns the byte size of the track chunk body for a sequence
// of numNotes notes.
//
// The first note costs a 4-byte attack (delta, status, note, velocity);
// every later attack and every release omits the status byte under
// running status and costs 3 bytes. Total: 4 + 3*(n-1) + 3*n = 6n + 1.
// This formula must stay in lock-step with Events; re-derive it if the
// encoding ever changes.
func TrackSize(numNotes uint32) uint32 {
	return numNotes*6 + 1
}

// FileSize returns the byte size of a whole file for a sequence of
// numNotes notes: 14 bytes of "MThd" chunk, 8 bytes of "MTrk" header,
// then the track body.
func FileSize(numNotes uint32) uint32 {
	return 22 + TrackSize(numNotes)
}

// File assembles a note sequence into a single-track, single-channel
// Standard MIDI File. It is optimized to produce the smallest possible
// file for the sequence: one explicit NoteOn status byte for the first
// event, running status thereafter, and releases written as NoteOn with
// velocity 0.
//
// A File is immutable once constructed; independent Files may be
// assembled concurrently without coordination.
type File struct {
	// Sequence of notes the track chunk is generated from.
	Sequence NoteSequence
	// Format should be Format0 for this library's single-track output.
	Format Format
	// Tracks should be 1.
	Tracks uint16
	// Division is ticks per quarter note. Values above 255 are a
	// caller error: delta-times are single bytes and Events truncates.
	Division uint16
}

// NewFile returns a file over the given sequence.
func NewFile(sequence NoteSequence, format Format, tracks, division uint16) *File {
	return &File{
		Sequence: sequence,
		Format:   format,
		Tracks:   tracks,
		Division: division,
	}
}

// Hash returns a lookup key for the file's sequence: the decimal note
// numbers of the sequence concatenated in order, with no separator.
// It is deterministic and cheap, intended for indexing files on disk by
// the sequence they encode. Multi-digit note numbers can align on
// different boundaries, so distinct sequences may collide; see the
// package tests.
func (f *File) Hash() string {
	var hash strings.Builder
	hash.Grow(len(f.Sequence.Notes) * 2)
	for _, note := range f.Sequence.Notes {
		hash.WriteString(strconv.FormatUint(uint64(note.Convert()), 10))
	}
	return hash.String()
}

// Header returns the file's "MThd" chunk.
func (f *File) Header() FileHeader {
	return NewFileHeader(f.Format, f.Tracks, f.Division)
}

// TrackSize returns the byte size of the file's track chunk body.
func (f *File) TrackSize() uint32 {
	return TrackSize(uint32(len(f.Sequence.Notes)))
}

// TrackHeader returns the file's "MTrk" chunk descriptor.
func (f *File) TrackHeader() TrackHeader {
	return NewTrackHeader(f.TrackSize())
}

// Events returns the file's event stream: an attack/release pair per
// note, in sequence order. Only the first attack carries a status byte
// (NoteOn, channel 0); every other event relies on running status.
// Releases are NoteOn with velocity 0 after Division ticks.
func (f *File) Events() []ChannelVoiceMessage {
	deltaTime := byte(f.Division)
	events := make([]ChannelVoiceMessage, 0, len(f.Sequence.Notes)*2)
	for i, note := range f.Sequence.Notes {
		kind := RunningStatus
		if i == 0 {
			kind = NoteOn
		}
		events = append(events,
			NewChannelVoiceMessage(0, note, DefaultVelocity, kind, 0),
			NewChannelVoiceMessage(deltaTime, note, 0, RunningStatus, 0),
		)
	}
	return events
}

// Size returns the exact byte size of the file once written.
func (f *File) Size() uint32 {
	return FileSize(uint32(len(f.Sequence.Notes)))
}

// Write writes the complete file to w: file header, track header, then
// the event stream. On error the destination is left in an undefined
// partial state; callers needing atomicity should write to a temporary
// location and rename.
func (f *File) Write(w io.Writer) error {
	data, err := f.Header().encode()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	data, err = f.TrackHeader().encode()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	for _, event := range f.Events() {
		if _, err := w.Write(event.Encode()); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the complete file as a buffer of exactly Size bytes.
func (f *File) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, f.Size()))
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the file to the given path, creating or truncating
// it.
func (f *File) WriteFile(path string) error {
	target, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(target)
	if err := f.Write(w); err != nil {
		target.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		target.Close()
		return err
	}
	return target.Close()
}
