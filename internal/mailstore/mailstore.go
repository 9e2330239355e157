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

package mailstore

import (
	"encoding/base64"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/lukasdietrich/postkasten/internal/log"
)

func init() {
	viper.SetDefault("mailstore.foldername", "data/mails")
}

// Store is a permanent storage for downloaded messages, one file per
// message addressed by its unique id.
type Store struct {
	fs afero.Fs
}

// NewStore creates a new message store using configuration from viper.
//
// `mailstore.foldername` is the foldername for message files.
func NewStore() (*Store, error) {
	folderName := viper.GetString("mailstore.foldername")

	if err := os.MkdirAll(folderName, 0700); err != nil {
		return nil, err
	}

	return &Store{
		fs: afero.NewBasePathFs(afero.NewOsFs(), folderName),
	}, nil
}

// Create opens a new file for the message with the given unique id. If the
// download fails mid-way, the partial file must be discarded via Remove.
func (s *Store) Create(uid string) (afero.File, error) {
	log.Debug().
		Str("uid", uid).
		Msg("writing message file")

	return s.fs.Create(filename(uid))
}

// Remove deletes the file of a message.
func (s *Store) Remove(uid string) error {
	log.Debug().
		Str("uid", uid).
		Msg("removing message file")

	return s.fs.Remove(filename(uid))
}

// Exists reports whether a message file is already present.
func (s *Store) Exists(uid string) (bool, error) {
	return afero.Exists(s.fs, filename(uid))
}

// Open returns a reader of a stored message. The responsibility to close
// the reader is on the caller.
func (s *Store) Open(uid string) (io.ReadCloser, error) {
	return s.fs.Open(filename(uid))
}

// filename encodes a unique id into a safe filename. Unique ids are opaque
// printable ASCII and may contain characters like '/' that must not end up
// in a path.
func filename(uid string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(uid)) + ".eml"
}
