package libatm

import (
	"bytes"
	"testing"
)

func TestFileHeaderEncoding(t *testing.T) {
	testcases := []struct {
		header FileHeader
		want   []byte
	}{
		{
			NewFileHeader(Format0, 1, 1),
			[]byte("MThd\x00\x00\x00\x06\x00\x00\x00\x01\x00\x01"),
		},
		{
			NewFileHeader(Format1, 2, 0xC0),
			[]byte("MThd\x00\x00\x00\x06\x00\x01\x00\x02\x00\xc0"),
		},
		{
			NewFileHeader(Format2, 0x0102, 0x0304),
			[]byte("MThd\x00\x00\x00\x06\x00\x02\x01\x02\x03\x04"),
		},
	}

	for i, tc := range testcases {
		observed, err := tc.header.encode()
		if err != nil {
			t.Errorf("[%d] encode(%+v) = err: %v", i, tc.header, err)
			continue
		}
		if !bytes.Equal(observed, tc.want) {
			t.Errorf("[%d] encode(%+v) = % 02x want % 02x", i, tc.header, observed, tc.want)
		}
	}
}

func TestTrackHeaderEncoding(t *testing.T) {
	testcases := []struct {
		header TrackHeader
		want   []byte
	}{
		{NewTrackHeader(7), []byte("MTrk\x00\x00\x00\x07")},
		{NewTrackHeader(0x01020304), []byte("MTrk\x01\x02\x03\x04")},
	}

	for i, tc := range testcases {
		observed, err := tc.header.encode()
		if err != nil {
			t.Errorf("[%d] encode(%+v) = err: %v", i, tc.header, err)
			continue
		}
		if !bytes.Equal(observed, tc.want) {
			t.Errorf("[%d] encode(%+v) = % 02x want % 02x", i, tc.header, observed, tc.want)
		}
	}
}
