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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStat(t *testing.T) {
	stat, err := parseStat("2 320")
	require.NoError(t, err)
	assert.Equal(t, Stat{MessageCount: 2, MaildropSize: 320}, stat)

	// trailing text after the sizes is tolerated
	stat, err = parseStat("2 320 (2 messages)")
	require.NoError(t, err)
	assert.Equal(t, Stat{MessageCount: 2, MaildropSize: 320}, stat)

	for _, text := range []string{"", "2", "two 320", "2 many"} {
		_, err := parseStat(text)
		assert.ErrorIs(t, err, ErrUnexpectedFormat, "text=%q", text)
	}
}

func TestParseMessageInfo(t *testing.T) {
	info, err := parseMessageInfo("1 120")
	require.NoError(t, err)
	assert.Equal(t, MessageInfo{ID: 1, Size: 120}, info)

	for _, text := range []string{"", "1", "one 120", "1 big"} {
		_, err := parseMessageInfo(text)
		assert.ErrorIs(t, err, ErrUnexpectedFormat, "text=%q", text)
	}
}

func TestParseUIDInfo(t *testing.T) {
	uid, err := parseUIDInfo("1 whqtswO00WBw418f9t5JxYwZ")
	require.NoError(t, err)
	assert.Equal(t, UIDInfo{ID: 1, UID: "whqtswO00WBw418f9t5JxYwZ"}, uid)

	for _, text := range []string{"", "1", "one uid"} {
		_, err := parseUIDInfo(text)
		assert.ErrorIs(t, err, ErrUnexpectedFormat, "text=%q", text)
	}
}
