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
)

func TestSessionStateString(t *testing.T) {
	assert.Equal(t, "authorization", sInit.String())
	assert.Equal(t, "authorization+user", sUser.String())
	assert.Equal(t, "transaction", sTransaction.String())
	assert.Equal(t, "update", sUpdate.String())
}

func TestSessionStateIn(t *testing.T) {
	assert.True(t, sUser.in(sInit, sUser))
	assert.False(t, sTransaction.in(sInit, sUser))
	assert.False(t, sUpdate.in())
}
