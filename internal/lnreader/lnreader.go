package lnreader

import (
	"bufio"
	"io"
	"strings"
)

type LineNumberReader struct {
	r         *bufio.Reader
	rawBuffer []byte
	NumLine   int
}

func NewLineNumberReader(r io.Reader) *LineNumberReader {
	return &LineNumberReader{
		r: bufio.NewReader(r),
	}
}

// ReadLine returns the next line without its LF or CRLF terminator. The
// returned slice is only valid until the next call.
func (r *LineNumberReader) ReadLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.rawBuffer = append(r.rawBuffer[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			r.rawBuffer = append(r.rawBuffer, line...)
		}
		line = r.rawBuffer
	}
	if len(line) > 0 && err == io.EOF {
		// last line without a terminator
		err = nil
		if line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
	} else if err == nil {
		n := len(line)
		if n >= 2 && line[n-2] == '\r' {
			line = line[:n-2]
		} else {
			line = line[:n-1]
		}
	}
	if err == nil {
		r.NumLine++
	}
	return line, err
}

// ReadText returns the next line with leading and trailing white space removed.
func (r *LineNumberReader) ReadText() (string, error) {
	line, err := r.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(line)), nil
}
