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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func joinLines(lines []string) string {
	// ensure final <CR> <LF>
	lines = append(lines, "")
	return strings.Join(lines, "\r\n")
}

func TestDotReader(t *testing.T) {
	sequence := []string{
		"+OK message follows",
		"normal line",
		"..with a dot",
		"",
		"..",
		".",
		"+OK",
	}

	decoded := []string{
		"normal line",
		".with a dot",
		"",
		".",
	}

	buffer := bytes.NewBufferString(joinLines(sequence))
	reader := newReader(buffer, DefaultLineLimit)

	{ // test before dot encoded block
		line, err := reader.ReadLine()
		assert.Nil(t, err)
		assert.EqualValues(t, sequence[0], line)
	}

	{ // test a handful of dot encoded lines
		text, err := io.ReadAll(reader.DotReader())
		assert.Nil(t, err)
		assert.EqualValues(t, joinLines(decoded), text)
	}

	{ // resume after dot encoded block
		line, err := reader.ReadLine()
		assert.Nil(t, err)
		assert.EqualValues(t, sequence[6], line)
	}
}

func TestDotReaderStuffingRoundTrip(t *testing.T) {
	// a wire line "..foo" must decode to the body line ".foo"
	buffer := bytes.NewBufferString("..foo\r\n.\r\n")
	reader := newReader(buffer, DefaultLineLimit)

	text, err := io.ReadAll(reader.DotReader())
	assert.Nil(t, err)
	assert.EqualValues(t, ".foo\r\n", text)
}

func TestDotReaderUnterminated(t *testing.T) {
	// the stream closes before the terminator line
	buffer := bytes.NewBufferString("first line\r\nsecond line\r\n")
	reader := newReader(buffer, DefaultLineLimit)

	_, err := io.ReadAll(reader.DotReader())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDotReaderEmptyBody(t *testing.T) {
	buffer := bytes.NewBufferString(".\r\n")
	reader := newReader(buffer, DefaultLineLimit)

	text, err := io.ReadAll(reader.DotReader())
	assert.Nil(t, err)
	assert.Empty(t, text)
}
