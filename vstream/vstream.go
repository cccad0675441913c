// Package vstream is the byte-stream abstraction the format loaders and
// exporters read and write through: a seekable read/write stream plus
// Size and Eof queries. Grounded on VCore/Misc/FileStream.hpp's
// IFileStream/CDefaultFileStream split (an interface plus one concrete
// file-backed implementation), generalized to also provide an in-memory
// implementation for round-trip tests and in-process export.
package vstream

import "io"

// Stream is a seekable byte stream with file-size and end-of-stream
// queries layered on top of the standard read/write/seek/close set,
// matching IFileStream's contract.
type Stream interface {
	io.ReadWriteSeeker
	io.Closer

	// Size returns the total stream length in bytes.
	Size() (int64, error)

	// Eof reports whether the cursor has reached the end of the stream,
	// matching IFileStream::Eof's Tell() >= Size() check.
	Eof() (bool, error)
}

func eofFrom(s Stream) (bool, error) {
	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}
	size, err := s.Size()
	if err != nil {
		return false, err
	}
	return pos >= size, nil
}
