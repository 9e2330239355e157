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
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return &Store{fs: afero.NewMemMapFs()}
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore()

	file, err := store.Create("uid-1")
	require.NoError(t, err)

	_, err = io.WriteString(file, "Subject: hello\r\n\r\nworld\r\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	exists, err := store.Exists("uid-1")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Open("uid-1")
	require.NoError(t, err)

	text, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())

	assert.EqualValues(t, "Subject: hello\r\n\r\nworld\r\n", text)
}

func TestStoreRemove(t *testing.T) {
	store := newTestStore()

	file, err := store.Create("uid-1")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	require.NoError(t, store.Remove("uid-1"))

	exists, err := store.Exists("uid-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFilenameIsPathSafe(t *testing.T) {
	// unique ids are opaque and may contain path separators
	store := newTestStore()

	file, err := store.Create("../../uid/1")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	exists, err := store.Exists("../../uid/1")
	require.NoError(t, err)
	assert.True(t, exists)
}
