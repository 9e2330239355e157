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

package shell

import (
	"fmt"
	"os"
)

func (s *Shell) stat(_ []string) error {
	stat, err := s.client.Stat()
	if err != nil {
		return err
	}

	fmt.Printf("\n  %d messages (%d octets)\n\n", stat.MessageCount, stat.MaildropSize)
	return nil
}

func (s *Shell) list(_ []string) error {
	infos, err := s.client.List()
	if err != nil {
		return err
	}

	fmt.Println()

	for _, info := range infos {
		fmt.Printf("  %4d  %8d octets\n", info.ID, info.Size)
	}

	fmt.Println()
	return nil
}

func (s *Shell) uidl(_ []string) error {
	uids, err := s.client.Uidl()
	if err != nil {
		return err
	}

	fmt.Println()

	for _, uid := range uids {
		fmt.Printf("  %4d  %s\n", uid.ID, uid.UID)
	}

	fmt.Println()
	return nil
}

func (s *Shell) retr(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("shell: usage: retr <number>")
	}

	id, err := parseMessageNumber(args[0])
	if err != nil {
		return err
	}

	fmt.Println()

	size, err := s.client.Retr(id, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\n  %d octets\n\n", size)
	return nil
}

func (s *Shell) top(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("shell: usage: top <number> <lines>")
	}

	id, err := parseMessageNumber(args[0])
	if err != nil {
		return err
	}

	lineCount, err := parseMessageNumber(args[1])
	if err != nil {
		return fmt.Errorf("shell: %q is not a line count", args[1])
	}

	text, err := s.client.Top(id, lineCount)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(text)
	fmt.Println()
	return nil
}

func (s *Shell) dele(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("shell: usage: dele <number>")
	}

	id, err := parseMessageNumber(args[0])
	if err != nil {
		return err
	}

	return s.client.Dele(id)
}

func (s *Shell) rset(_ []string) error {
	return s.client.Rset()
}

func (s *Shell) noop(_ []string) error {
	return s.client.Noop()
}

func (s *Shell) quit(_ []string) error {
	if err := s.client.Quit(); err != nil {
		return err
	}

	return errQuit
}
