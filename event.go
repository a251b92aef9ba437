package libatm

import "fmt"

// EventKind identifies a MIDI channel voice message type, or
// RunningStatus to reuse the previous message's status byte. Only NoteOn
// and RunningStatus are emitted by File; the rest are recognized for
// completeness.
type EventKind int

const (
	RunningStatus EventKind = iota
	NoteOff
	NoteOn
	PolyphonicAftertouch
	ControlChange
	ProgramChange
	Aftertouch
	PitchWheelChange
)

// statusNibble maps an event kind to the high nibble of its status byte.
// Real status nibbles are all >= 0b1000, so 0 is free to mean "no status
// byte" (running status). A separate lookup rather than the constant
// values above, so that the wire bytes do not depend on declaration
// order.
func statusNibble(kind EventKind) byte {
	switch kind {
	case RunningStatus:
		return 0b0000
	case NoteOff:
		return 0b1000
	case NoteOn:
		return 0b1001
	case PolyphonicAftertouch:
		return 0b1010
	case ControlChange:
		return 0b1011
	case ProgramChange:
		return 0b1100
	case Aftertouch:
		return 0b1101
	case PitchWheelChange:
		return 0b1110
	default:
		panic(fmt.Sprintf("libatm: no status nibble for event kind %d", int(kind)))
	}
}

// ChannelVoiceMessage is one MIDI channel voice event in its wire-ready
// form. Status 0 means the status byte is omitted and the receiver
// reuses the previous message's status (running status).
type ChannelVoiceMessage struct {
	DeltaTime byte
	Status    byte
	Note      byte
	Velocity  byte
}

// NewChannelVoiceMessage builds a channel voice message.
//
// A channel of 16 or more, or a velocity of 128 or more, is a caller bug
// and panics. If the note is Rest the velocity is forced to 0, so a rest
// never sounds regardless of the velocity supplied.
//
// A NoteOn with velocity 0 is equivalent to a NoteOff; combined with
// running status this is what lets File emit a single status byte for an
// entire track.
func NewChannelVoiceMessage(deltaTime byte, note Note, velocity byte, kind EventKind, channel byte) ChannelVoiceMessage {
	if channel >= 0x10 {
		panic(fmt.Sprintf("libatm: channel %d out of range [0, 16)", channel))
	}
	if velocity >= 0x80 {
		panic(fmt.Sprintf("libatm: velocity %d out of range [0, 128)", velocity))
	}
	if note.Type == Rest {
		velocity = 0
	}
	var status byte
	if kind != RunningStatus {
		status = statusNibble(kind)<<4 | channel
	}
	return ChannelVoiceMessage{
		DeltaTime: deltaTime,
		Status:    status,
		Note:      byte(note.Convert()),
		Velocity:  velocity,
	}
}

// Size returns the encoded length in bytes: 4 with a status byte, 3
// under running status.
func (m ChannelVoiceMessage) Size() int {
	if m.Status != 0 {
		return 4
	}
	return 3
}

// Encode returns the message's wire form: delta-time, status byte if
// present, note number, velocity.
func (m ChannelVoiceMessage) Encode() []byte {
	data := make([]byte, 0, 4)
	data = append(data, m.DeltaTime)
	if m.Status != 0 {
		data = append(data, m.Status)
	}
	return append(data, m.Note, m.Velocity)
}
