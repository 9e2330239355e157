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
)

// Stat holds maildrop statistics as reported by the server.
type Stat struct {
	// MessageCount is the number of messages in the maildrop.
	MessageCount uint32
	// MaildropSize is the size of the maildrop in octets.
	MaildropSize uint64
}

// MessageInfo describes a single message in the maildrop.
type MessageInfo struct {
	// ID is the message number used to address the message in other
	// commands. Numbers are 1-based and assigned by the server for the
	// duration of a session.
	ID uint32
	// Size is the message size in octets.
	Size uint64
}

// UIDInfo maps a message number to its unique id. Unique ids are opaque
// and, unlike message numbers, stable across sessions.
type UIDInfo struct {
	ID  uint32
	UID string
}

// parseStat parses the text of a STAT status line:
//
//	<count> <SP> <size>
func parseStat(text string) (Stat, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return Stat{}, fmt.Errorf("%w: %q", ErrUnexpectedFormat, text)
	}

	count, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Stat{}, fmt.Errorf("%w: message count in %q", ErrUnexpectedFormat, text)
	}

	size, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Stat{}, fmt.Errorf("%w: maildrop size in %q", ErrUnexpectedFormat, text)
	}

	return Stat{MessageCount: uint32(count), MaildropSize: size}, nil
}

// parseMessageInfo parses a LIST scan listing:
//
//	<id> <SP> <size>
func parseMessageInfo(text string) (MessageInfo, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return MessageInfo{}, fmt.Errorf("%w: %q", ErrUnexpectedFormat, text)
	}

	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return MessageInfo{}, fmt.Errorf("%w: message number in %q", ErrUnexpectedFormat, text)
	}

	size, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return MessageInfo{}, fmt.Errorf("%w: message size in %q", ErrUnexpectedFormat, text)
	}

	return MessageInfo{ID: uint32(id), Size: size}, nil
}

// parseUIDInfo parses a UIDL listing:
//
//	<id> <SP> <uid>
func parseUIDInfo(text string) (UIDInfo, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return UIDInfo{}, fmt.Errorf("%w: %q", ErrUnexpectedFormat, text)
	}

	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return UIDInfo{}, fmt.Errorf("%w: message number in %q", ErrUnexpectedFormat, text)
	}

	return UIDInfo{ID: uint32(id), UID: fields[1]}, nil
}
