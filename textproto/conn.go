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
	"crypto/tls"
	"net"
	"time"
)

// DefaultLineLimit bounds the length of a single protocol line. The limit
// applies per line, so dot-encoded bodies of any size can be read as long
// as every individual line fits.
const DefaultLineLimit = 64 << 10

// Conn is a wrapper around a network connection to enable line based reading
// and buffered writing.
type Conn interface {
	Reader
	Writer

	// SetReadTimeout sets the deadline for read calls to a time now + x
	SetReadTimeout(time.Duration) error

	// SetWriteTimeout sets the deadline for write calls to a time now + x
	SetWriteTimeout(time.Duration) error

	// Close closes the underlying network connection. Buffered but
	// unflushed writes are discarded.
	Close() error
}

type conn struct {
	raw net.Conn

	Reader
	Writer
}

// Wrap decorates an established network connection. Lines are bounded by
// DefaultLineLimit.
func Wrap(netConn net.Conn) Conn {
	return WrapLimit(netConn, DefaultLineLimit)
}

// WrapLimit decorates an established network connection with a custom line
// length limit.
func WrapLimit(netConn net.Conn, lineLimit int) Conn {
	return &conn{
		raw: netConn,

		Reader: newReader(netConn, lineLimit),
		Writer: newWriter(netConn),
	}
}

// Dial connects to addr over tls and wraps the connection. A zero timeout
// means no timeout.
func Dial(addr string, tlsConfig *tls.Config, timeout time.Duration) (Conn, error) {
	dialer := net.Dialer{Timeout: timeout}

	tlsConn, err := tls.DialWithDialer(&dialer, "tcp", addr, tlsConfig)
	if err != nil {
		return nil, err
	}

	return Wrap(tlsConn), nil
}

func (c *conn) SetReadTimeout(d time.Duration) error {
	return c.raw.SetReadDeadline(time.Now().Add(d))
}

func (c *conn) SetWriteTimeout(d time.Duration) error {
	return c.raw.SetWriteDeadline(time.Now().Add(d))
}

func (c *conn) Close() error {
	return c.raw.Close()
}
