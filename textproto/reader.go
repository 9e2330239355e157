// Copyright (C) 2021  Lukas Dietrich <lukas@lukasdietrich.com>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package textproto

import (
	"bufio"
	"errors"
	"io"
)

// ErrLineTooLong is returned when a single line exceeds the line limit of
// the connection.
var ErrLineTooLong = errors.New("textproto: line too long")

// Reader is a line based reader.
type Reader interface {
	// ReadLine returns the next line with the <CR> <LF> terminator
	// stripped. The returned slice is only valid until the next read.
	ReadLine() ([]byte, error)

	// DotReader returns an io.Reader, which decodes a dot-encoded block
	// of lines until the terminator line. Lines are separated by
	// <CR> <LF>. If the stream ends before the terminator,
	// io.ErrUnexpectedEOF is returned.
	DotReader() io.Reader
}

type reader struct {
	buffer *bufio.Scanner
}

func newReader(r io.Reader, lineLimit int) *reader {
	// the scanner enforces the larger of the initial capacity and the
	// limit, so the initial capacity must not exceed the limit
	initial := 4096
	if lineLimit < initial {
		initial = lineLimit
	}

	buffer := bufio.NewScanner(r)
	buffer.Buffer(make([]byte, 0, initial), lineLimit)

	return &reader{
		buffer: buffer,
	}
}

func (r *reader) ReadLine() ([]byte, error) {
	if !r.buffer.Scan() {
		if err := r.buffer.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return nil, ErrLineTooLong
			}

			return nil, err
		}

		return nil, io.EOF
	}

	return r.buffer.Bytes(), nil
}

func (r *reader) DotReader() io.Reader {
	return &dotReader{r: r}
}
