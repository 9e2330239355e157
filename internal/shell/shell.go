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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lukasdietrich/postkasten/pop3"
)

// errQuit signals a clean exit of the read loop after a QUIT.
var errQuit = errors.New("shell: quit")

// Shell is an interactive pop3 session for poking at a maildrop by hand.
type Shell struct {
	client   *pop3.Client
	commands cmdSlice
}

// NewShell creates a new shell on top of an authenticated client.
func NewShell(client *pop3.Client) *Shell {
	s := Shell{client: client}

	s.commands = cmdSlice{
		{
			name:   "stat",
			help:   "Show message count and maildrop size.",
			action: s.stat,
		},
		{
			name:   "list",
			help:   "List number and size of every message.",
			action: s.list,
		},
		{
			name:   "uidl",
			help:   "List the unique id of every message.",
			action: s.uidl,
		},
		{
			name:   "retr",
			help:   "Print a message. Usage: retr <number>",
			action: s.retr,
		},
		{
			name:   "top",
			help:   "Print headers and the first lines of a message. Usage: top <number> <lines>",
			action: s.top,
		},
		{
			name:   "dele",
			help:   "Mark a message as deleted. Usage: dele <number>",
			action: s.dele,
		},
		{
			name:   "rset",
			help:   "Unmark all deleted messages.",
			action: s.rset,
		},
		{
			name:   "noop",
			help:   "Do nothing, successfully.",
			action: s.noop,
		},
		{
			name:   "quit",
			help:   "Commit deletions and end the session.",
			action: s.quit,
		},
	}

	return &s
}

// Run starts the shell read loop. It returns after a quit command or once
// the input is closed.
func (s *Shell) Run() error {
	config := readline.Config{
		AutoComplete: readline.NewPrefixCompleter(s.commands.buildCompleters()...),
	}

	rl, err := readline.NewEx(&config)
	if err != nil {
		return err
	}

	defer rl.Close()

	for {
		rl.SetPrompt(">>> ")

		line, err := rl.Readline()
		if err != nil {
			if isUnimportantError(err) {
				return nil
			}

			return err
		}

		switch err := s.handleCommand(strings.Fields(line)); {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Printf("\nERROR:\n  %s\n\n", err)
		}
	}
}

func isUnimportantError(err error) bool {
	return errors.Is(err, readline.ErrInterrupt) ||
		errors.Is(err, io.EOF)
}

type cmdFunc func(args []string) error

type cmdDef struct {
	name   string
	help   string
	action cmdFunc
}

type cmdSlice []cmdDef

func (s cmdSlice) lookup(name string) (cmdDef, bool) {
	for _, cmd := range s {
		if name == cmd.name {
			return cmd, true
		}
	}

	return cmdDef{}, false
}

func (s cmdSlice) buildCompleters() []readline.PrefixCompleterInterface {
	var completers []readline.PrefixCompleterInterface

	for _, cmd := range s {
		completers = append(completers, readline.PcItem(cmd.name))
	}

	return completers
}

func (s *Shell) handleCommand(args []string) error {
	if len(args) == 0 {
		return nil
	}

	cmd, ok := s.commands.lookup(args[0])
	if !ok {
		printCommandUnknown(s.commands, args)
		return nil
	}

	return cmd.action(args[1:])
}

func printCommandUnknown(cmds cmdSlice, args []string) {
	fmt.Printf("\n  Unknown command %q\n", strings.Join(args, " "))
	fmt.Println()
	fmt.Println("Commands:")

	for _, cmd := range cmds {
		fmt.Printf("  %-6s  %s\n", cmd.name, cmd.help)
	}

	fmt.Println()
}

func parseMessageNumber(arg string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("shell: %q is not a message number", arg)
	}

	return uint32(id), nil
}
