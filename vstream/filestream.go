package vstream

import (
	"io"
	"os"
)

// FileStream is the default, OS-file-backed Stream implementation,
// matching CDefaultFileStream.
type FileStream struct {
	file *os.File
	size int64
}

// OpenFile opens path with the given os.OpenFile flag/perm and caches
// its size, matching CDefaultFileStream's constructor (which seeks to
// the end once to learn the size, then rewinds).
func OpenFile(path string, flag int, perm os.FileMode) (*FileStream, error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	return &FileStream{file: f, size: size}, nil
}

func (fs *FileStream) Read(p []byte) (int, error)  { return fs.file.Read(p) }
func (fs *FileStream) Write(p []byte) (int, error) { return fs.file.Write(p) }
func (fs *FileStream) Seek(offset int64, whence int) (int64, error) {
	return fs.file.Seek(offset, whence)
}
func (fs *FileStream) Close() error { return fs.file.Close() }
func (fs *FileStream) Size() (int64, error) {
	return fs.size, nil
}
func (fs *FileStream) Eof() (bool, error) { return eofFrom(fs) }
