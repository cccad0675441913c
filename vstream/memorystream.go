package vstream

import (
	"io"

	"vcore/vcoreerr"
)

// MemoryStream is an in-memory Stream backed by a growable byte slice,
// used for round-trip tests and for exporting a mesh straight into a
// byte buffer without touching the filesystem.
type MemoryStream struct {
	data []byte
	pos  int64
}

// NewMemoryStream wraps initial as the stream's starting content; the
// cursor starts at position 0.
func NewMemoryStream(initial []byte) *MemoryStream {
	data := make([]byte, len(initial))
	copy(data, initial)
	return &MemoryStream{data: data}
}

func (m *MemoryStream) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *MemoryStream) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	n := copy(m.data[m.pos:end], p)
	m.pos += int64(n)
	return n, nil
}

func (m *MemoryStream) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = m.pos + offset
	case io.SeekEnd:
		newPos = int64(len(m.data)) + offset
	default:
		return 0, vcoreerr.ErrInvalidArgument
	}
	if newPos < 0 {
		return 0, vcoreerr.ErrInvalidArgument
	}
	m.pos = newPos
	return m.pos, nil
}

func (m *MemoryStream) Close() error { return nil }

func (m *MemoryStream) Size() (int64, error) { return int64(len(m.data)), nil }

func (m *MemoryStream) Eof() (bool, error) { return eofFrom(m) }

// Bytes returns the stream's current backing content.
func (m *MemoryStream) Bytes() []byte { return m.data }
