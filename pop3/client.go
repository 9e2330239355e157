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

// Package pop3 implements the client side of the Post Office Protocol
// version 3 as specified in RFC#1939. APOP is not supported, because
// hardly any real server offers it.
package pop3

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lukasdietrich/postkasten/internal/log"
	"github.com/lukasdietrich/postkasten/textproto"
)

// Config bundles the options to establish a session.
type Config struct {
	// Addr is the <host>:<port> of the server.
	Addr string

	// TLS is the client tls configuration. A nil config uses the default
	// with the hostname of Addr as the server name.
	TLS *tls.Config

	// Timeout applies to dialing and to every protocol exchange
	// afterwards. Zero means no timeout.
	Timeout time.Duration
}

// Client is a POP3 session over a single connection, which it owns
// exclusively. The protocol allows exactly one in-flight command, so a
// client must not be used from multiple goroutines.
type Client struct {
	conn textproto.Conn

	state   sessionState
	broken  bool
	closed  bool
	timeout time.Duration
}

// Dial connects to a server over tls and consumes the greeting. The
// returned client is in the authorization state.
func Dial(config *Config) (*Client, error) {
	log.Debug().
		Str("addr", config.Addr).
		Msg("connecting")

	conn, err := textproto.Dial(config.Addr, config.TLS, config.Timeout)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(conn)
	if err != nil {
		conn.Close() // nolint:errcheck
		return nil, err
	}

	client.timeout = config.Timeout
	return client, nil
}

// NewClient wraps an established connection and consumes the server
// greeting. The caller must not use the connection afterwards.
func NewClient(conn textproto.Conn) (*Client, error) {
	c := &Client{
		conn:  conn,
		state: sInit,
	}

	greeting, err := c.readReply("greeting")
	if err != nil {
		return nil, err
	}

	if !greeting.positive {
		return nil, &ServerError{Command: "greeting", Reason: greeting.text}
	}

	log.Debug().
		Str("greeting", greeting.text).
		Msg("session established")

	return c, nil
}

// User sends the name of the mailbox to open. It must be followed by Pass.
func (c *Client) User(name string) error {
	if err := c.require(sInit, sUser); err != nil {
		return err
	}

	if _, err := c.command(newCommand("USER", name)); err != nil {
		return err
	}

	c.state = sUser
	return nil
}

// Pass authenticates the session with the password of the mailbox named via
// User. A rejection by the server is reported as ErrAuthentication and
// leaves the session in the authorization state.
func (c *Client) Pass(pass string) error {
	if err := c.require(sUser); err != nil {
		return err
	}

	if _, err := c.command(newCommand("PASS", pass)); err != nil {
		var rejection *ServerError
		if errors.As(err, &rejection) {
			return fmt.Errorf("%w: %s", ErrAuthentication, rejection.Reason)
		}

		return err
	}

	c.state = sTransaction
	return nil
}

// Login is a shorthand for User followed by Pass.
func (c *Client) Login(user, pass string) error {
	if err := c.User(user); err != nil {
		return err
	}

	return c.Pass(pass)
}

// Stat returns the maildrop statistics.
func (c *Client) Stat() (Stat, error) {
	if err := c.require(sTransaction); err != nil {
		return Stat{}, err
	}

	r, err := c.command(newCommand("STAT"))
	if err != nil {
		return Stat{}, err
	}

	return parseStat(r.text)
}

// List returns number and size of every message in the maildrop, in the
// order the server reports them.
func (c *Client) List() ([]MessageInfo, error) {
	if err := c.require(sTransaction); err != nil {
		return nil, err
	}

	lines, err := c.commandWithListing(newCommand("LIST"))
	if err != nil {
		return nil, err
	}

	infos := make([]MessageInfo, 0, len(lines))

	for _, line := range lines {
		info, err := parseMessageInfo(line)
		if err != nil {
			return nil, err
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// ListMessage returns number and size of a single message.
func (c *Client) ListMessage(id uint32) (MessageInfo, error) {
	if err := c.require(sTransaction); err != nil {
		return MessageInfo{}, err
	}

	if err := checkMessageNumber(id); err != nil {
		return MessageInfo{}, err
	}

	r, err := c.command(newCommand("LIST", messageNumber(id)))
	if err != nil {
		return MessageInfo{}, err
	}

	return parseMessageInfo(r.text)
}

// Uidl returns the unique id of every message in the maildrop.
func (c *Client) Uidl() ([]UIDInfo, error) {
	if err := c.require(sTransaction); err != nil {
		return nil, err
	}

	lines, err := c.commandWithListing(newCommand("UIDL"))
	if err != nil {
		return nil, err
	}

	uids := make([]UIDInfo, 0, len(lines))

	for _, line := range lines {
		uid, err := parseUIDInfo(line)
		if err != nil {
			return nil, err
		}

		uids = append(uids, uid)
	}

	return uids, nil
}

// UidlMessage returns the unique id of a single message.
func (c *Client) UidlMessage(id uint32) (UIDInfo, error) {
	if err := c.require(sTransaction); err != nil {
		return UIDInfo{}, err
	}

	if err := checkMessageNumber(id); err != nil {
		return UIDInfo{}, err
	}

	r, err := c.command(newCommand("UIDL", messageNumber(id)))
	if err != nil {
		return UIDInfo{}, err
	}

	return parseUIDInfo(r.text)
}

// Retr downloads a message into w. Lines are separated by <CR> <LF>. When
// an error is returned, the data written so far is an incomplete prefix and
// must be discarded.
func (c *Client) Retr(id uint32, w io.Writer) (int64, error) {
	if err := c.require(sTransaction); err != nil {
		return 0, err
	}

	if err := checkMessageNumber(id); err != nil {
		return 0, err
	}

	return c.commandWithBody(newCommand("RETR", messageNumber(id)), w)
}

// Top returns the headers of a message and up to lineCount lines of its
// body, framed like a Retr download.
func (c *Client) Top(id, lineCount uint32) (string, error) {
	if err := c.require(sTransaction); err != nil {
		return "", err
	}

	if err := checkMessageNumber(id); err != nil {
		return "", err
	}

	var text strings.Builder

	cmd := newCommand("TOP", messageNumber(id), strconv.FormatUint(uint64(lineCount), 10))
	if _, err := c.commandWithBody(cmd, &text); err != nil {
		return "", err
	}

	return text.String(), nil
}

// Dele marks a message as deleted. The server does not remove it until the
// session ends with Quit; Rset unmarks all messages.
func (c *Client) Dele(id uint32) error {
	if err := c.require(sTransaction); err != nil {
		return err
	}

	if err := checkMessageNumber(id); err != nil {
		return err
	}

	_, err := c.command(newCommand("DELE", messageNumber(id)))
	return err
}

// Noop does nothing, successfully.
func (c *Client) Noop() error {
	if err := c.require(sTransaction); err != nil {
		return err
	}

	_, err := c.command(newCommand("NOOP"))
	return err
}

// Rset unmarks all messages marked as deleted.
func (c *Client) Rset() error {
	if err := c.require(sTransaction); err != nil {
		return err
	}

	_, err := c.command(newCommand("RSET"))
	return err
}

// Quit ends the session gracefully and closes the connection. In the
// transaction state this commits pending deletions. The client is unusable
// afterwards.
func (c *Client) Quit() error {
	if err := c.require(sInit, sUser, sTransaction); err != nil {
		return err
	}

	_, err := c.command(newCommand("QUIT"))

	c.state = sUpdate
	closeErr := c.Close()

	log.Debug().Msg("session ended")

	if err != nil {
		return err
	}

	return closeErr
}

// Close closes the connection without a QUIT. Deletions pending on the
// server are not committed. Close is safe to call after Quit.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}

	c.closed = true
	c.state = sUpdate

	return c.conn.Close()
}

// require fails with ErrBadSequence unless the session is in one of the
// given states. Broken or closed sessions always fail.
func (c *Client) require(states ...sessionState) error {
	if c.broken || c.closed {
		return ErrSessionClosed
	}

	if !c.state.in(states...) {
		return ErrBadSequence
	}

	return nil
}

// poison marks the session as broken. Once the framing of the stream is in
// doubt, no further command may be issued.
func (c *Client) poison() {
	c.broken = true
}

// command sends a single command and reads the status line. A negative
// reply is returned as *ServerError and leaves the state untouched.
func (c *Client) command(cmd *command) (*reply, error) {
	if err := cmd.check(); err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		if err := c.conn.SetWriteTimeout(c.timeout); err != nil {
			return nil, err
		}
	}

	if err := cmd.writeTo(c.conn); err != nil {
		c.poison()
		return nil, err
	}

	r, err := c.readReply(cmd.verb)
	if err != nil {
		return nil, err
	}

	if !r.positive {
		return nil, &ServerError{Command: cmd.verb, Reason: r.text}
	}

	return r, nil
}

// commandWithListing sends a command and collects the lines of its
// multi-line response. Byte-stuffing is removed, empty lines are preserved
// and the terminator line is excluded.
func (c *Client) commandWithListing(cmd *command) ([]string, error) {
	if _, err := c.command(cmd); err != nil {
		return nil, err
	}

	var lines []string

	for {
		line, err := c.conn.ReadLine()
		if err != nil {
			c.poison()

			if errors.Is(err, io.EOF) {
				err = fmt.Errorf("%w to %s", ErrUnterminatedBody, cmd.verb)
			}

			return nil, err
		}

		if len(line) == 1 && line[0] == '.' {
			return lines, nil
		}

		if len(line) > 1 && line[0] == '.' {
			line = line[1:]
		}

		lines = append(lines, string(line))
	}
}

// commandWithBody sends a command and streams the dot-decoded body of its
// multi-line response into w.
func (c *Client) commandWithBody(cmd *command, w io.Writer) (int64, error) {
	if _, err := c.command(cmd); err != nil {
		return 0, err
	}

	if c.timeout > 0 {
		if err := c.conn.SetReadTimeout(c.timeout); err != nil {
			c.poison()
			return 0, err
		}
	}

	n, err := io.Copy(w, c.conn.DotReader())
	if err != nil {
		c.poison()

		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("%w to %s", ErrUnterminatedBody, cmd.verb)
		}

		return n, err
	}

	return n, nil
}

func (c *Client) readReply(verb string) (*reply, error) {
	if c.timeout > 0 {
		if err := c.conn.SetReadTimeout(c.timeout); err != nil {
			c.poison()
			return nil, err
		}
	}

	var r reply

	if err := r.readFrom(c.conn); err != nil {
		c.poison()

		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("pop3: connection closed before reply to %s: %w",
				verb, io.ErrUnexpectedEOF)
		}

		return nil, err
	}

	return &r, nil
}
