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
	"errors"
	"fmt"
)

var (
	// ErrBadSequence is returned when a command is not legal in the
	// current session state. Nothing is written to the server.
	ErrBadSequence = errors.New("pop3: bad sequence of commands")

	// ErrInvalidArgument is returned when a command argument would break
	// the line framing of the protocol. Nothing is written to the server.
	ErrInvalidArgument = errors.New("pop3: invalid argument")

	// ErrAuthentication is returned when the server rejects the
	// credentials. The session remains in the authorization state.
	ErrAuthentication = errors.New("pop3: authentication failed")

	// ErrMalformedResponse is returned when a status line starts with
	// neither "+OK" nor "-ERR". The session is not reusable afterwards.
	ErrMalformedResponse = errors.New("pop3: malformed status line")

	// ErrUnterminatedBody is returned when the connection ends before the
	// terminator line of a multi-line response. The session is not
	// reusable afterwards.
	ErrUnterminatedBody = errors.New("pop3: unterminated multi-line response")

	// ErrUnexpectedFormat is returned when a response deviates from the
	// format mandated for the command.
	ErrUnexpectedFormat = errors.New("pop3: unexpected response format")

	// ErrSessionClosed is returned when a command is attempted after the
	// session ended or broke.
	ErrSessionClosed = errors.New("pop3: session closed")
)

// ServerError is a negative reply to a well-formed, state-legal command.
// The session remains usable in its previous state.
type ServerError struct {
	// Command is the verb the server replied to.
	Command string
	// Reason is the human-readable text after the "-ERR" marker.
	Reason string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("pop3: server rejected %s: %s", e.Command, e.Reason)
}
