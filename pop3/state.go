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

// sessionState is the protocol phase of a session. sInit and sUser are both
// the AUTHORIZATION phase of RFC#1939; they are split so that PASS before
// USER is rejected locally.
type sessionState uint

const (
	sInit sessionState = iota
	sUser
	sTransaction
	sUpdate
)

func (s sessionState) String() string {
	return [...]string{
		"authorization",
		"authorization+user",
		"transaction",
		"update",
	}[s]
}

func (s sessionState) in(any ...sessionState) bool {
	for _, other := range any {
		if other == s {
			return true
		}
	}

	return false
}
