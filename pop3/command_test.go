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

	"github.com/lukasdietrich/postkasten/textproto"
)

func TestCommandWriteTo(t *testing.T) {
	for _, test := range []struct {
		cmd      *command
		expected string
	}{
		{newCommand("STAT"), "STAT\r\n"},
		{newCommand("USER", "alice"), "USER alice\r\n"},
		{newCommand("TOP", "1", "10"), "TOP 1 10\r\n"},
	} {
		netConn := newFakeNetConn()
		require.NoError(t, test.cmd.writeTo(textproto.Wrap(netConn)))
		assert.Equal(t, test.expected, netConn.writer.String())
	}
}

func TestCommandCheck(t *testing.T) {
	assert.NoError(t, newCommand("USER", "alice").check())

	for _, arg := range []string{
		"alice\r\nPASS guess",
		"alice\rx",
		"alice\nx",
	} {
		err := newCommand("USER", arg).check()
		assert.ErrorIs(t, err, ErrInvalidArgument, "arg=%q", arg)
	}
}

func TestMessageNumber(t *testing.T) {
	assert.Equal(t, "1", messageNumber(1))
	assert.Equal(t, "4294967295", messageNumber(1<<32-1))

	assert.NoError(t, checkMessageNumber(1))
	assert.ErrorIs(t, checkMessageNumber(0), ErrInvalidArgument)
}
