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
	"fmt"
	"strconv"
	"strings"

	"github.com/lukasdietrich/postkasten/textproto"
)

// command represents a command-line of the form:
//
//	<verb> [<SP> <arg>]* <CR> <LF>
type command struct {
	verb string
	args []string
}

func newCommand(verb string, args ...string) *command {
	return &command{verb: verb, args: args}
}

// check rejects arguments that would break the line framing. An embedded
// line break would smuggle a second command into the stream.
func (c *command) check() error {
	for _, arg := range c.args {
		if strings.ContainsAny(arg, "\r\n") {
			return fmt.Errorf("%w: argument of %s contains a line break",
				ErrInvalidArgument, c.verb)
		}
	}

	return nil
}

func (c *command) writeTo(w textproto.Writer) error {
	w.WriteString(c.verb) // nolint:errcheck

	for _, arg := range c.args {
		w.WriteString(" ") // nolint:errcheck
		w.WriteString(arg) // nolint:errcheck
	}

	w.Endline() // nolint:errcheck
	return w.Flush()
}

// messageNumber formats a message number for use as a command argument.
// Message numbers are 1-based.
func messageNumber(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

func checkMessageNumber(id uint32) error {
	if id == 0 {
		return fmt.Errorf("%w: message numbers start at 1", ErrInvalidArgument)
	}

	return nil
}
