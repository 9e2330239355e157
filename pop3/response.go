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

package pop3

import (
	"bytes"
	"fmt"

	"github.com/lukasdietrich/postkasten/textproto"
)

// reply is a status line of the form:
//
//	("+OK" / "-ERR") [<SP> <text>] <CR> <LF>
//
// The status markers are case-sensitive per RFC#1939.
type reply struct {
	positive bool
	text     string
}

func (r *reply) readFrom(reader textproto.Reader) error {
	line, err := reader.ReadLine()
	if err != nil {
		return err
	}

	switch {
	case bytes.Equal(line, []byte("+OK")):
		r.positive, r.text = true, ""
	case bytes.HasPrefix(line, []byte("+OK ")):
		r.positive, r.text = true, string(line[4:])
	case bytes.Equal(line, []byte("-ERR")):
		r.positive, r.text = false, ""
	case bytes.HasPrefix(line, []byte("-ERR ")):
		r.positive, r.text = false, string(line[5:])
	default:
		return fmt.Errorf("%w: %q", ErrMalformedResponse, line)
	}

	return nil
}
