package libatm

import (
	"bytes"
	"encoding/binary"
)

// Format is a Standard MIDI File format: 0 for a single track chunk,
// 1 and 2 for one or more tracks.
type Format uint16

const (
	Format0 Format = 0
	Format1 Format = 1
	Format2 Format = 2
)

// fileHeaderLength is the length field of the "MThd" chunk; the header
// body is always the three 16-bit fields below.
const fileHeaderLength uint32 = 6

// FileHeader is the "MThd" chunk: format, track count and division
// (ticks per quarter note). All fields are written big-endian.
type FileHeader struct {
	Format   uint16
	Tracks   uint16
	Division uint16
}

// NewFileHeader returns the file header chunk for the given fields.
func NewFileHeader(format Format, tracks, division uint16) FileHeader {
	return FileHeader{
		Format:   uint16(format),
		Tracks:   tracks,
		Division: division,
	}
}

func (h FileHeader) encode() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("MThd")
	if err := binary.Write(buf, binary.BigEndian, fileHeaderLength); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, h); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TrackHeader is the "MTrk" chunk descriptor. Length is the exact byte
// count of the event stream that follows; readers rely on it to find the
// end of the track, so it must never be approximate.
type TrackHeader struct {
	Length uint32
}

// NewTrackHeader returns a track header bounding Length event bytes.
func NewTrackHeader(length uint32) TrackHeader {
	return TrackHeader{Length: length}
}

func (h TrackHeader) encode() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("MTrk")
	if err := binary.Write(buf, binary.BigEndian, h.Length); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
