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

package main

import (
	"github.com/lukasdietrich/postkasten/internal/shell"
	"github.com/lukasdietrich/postkasten/pop3"
)

type shellCommand struct {
	client *pop3.Client
	shell  *shell.Shell
}

func newShellCommand() (command, error) {
	client, err := dialClient()
	if err != nil {
		return nil, err
	}

	return &shellCommand{
		client: client,
		shell:  shell.NewShell(client),
	}, nil
}

func (s *shellCommand) run() error {
	// Close is a noop after a quit command, but cleans up when the input
	// ends without one.
	defer s.client.Close() // nolint:errcheck

	return s.shell.Run()
}
