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

package uidcache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()

	cache, err := Open()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, cache.Close())
	})

	return cache
}

func TestMarkAndIsSeen(t *testing.T) {
	viper.Set("cache.filename", filepath.Join(t.TempDir(), "cache.sqlite"))

	var (
		ctx   = context.Background()
		cache = openTestCache(t)
	)

	seen, err := cache.IsSeen(ctx, "pop.example.org", "uid-1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, cache.MarkSeen(ctx, "pop.example.org", "uid-1"))

	seen, err = cache.IsSeen(ctx, "pop.example.org", "uid-1")
	require.NoError(t, err)
	assert.True(t, seen)

	// the same uid on another host is a different message
	seen, err = cache.IsSeen(ctx, "pop.example.com", "uid-1")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestMarkSeenTwice(t *testing.T) {
	viper.Set("cache.filename", filepath.Join(t.TempDir(), "cache.sqlite"))

	var (
		ctx   = context.Background()
		cache = openTestCache(t)
	)

	require.NoError(t, cache.MarkSeen(ctx, "pop.example.org", "uid-1"))
	require.NoError(t, cache.MarkSeen(ctx, "pop.example.org", "uid-1"))
}

func TestSeenSurvivesReopen(t *testing.T) {
	viper.Set("cache.filename", filepath.Join(t.TempDir(), "cache.sqlite"))

	ctx := context.Background()

	{
		cache, err := Open()
		require.NoError(t, err)
		require.NoError(t, cache.MarkSeen(ctx, "pop.example.org", "uid-1"))
		require.NoError(t, cache.Close())
	}

	{
		cache := openTestCache(t)

		seen, err := cache.IsSeen(ctx, "pop.example.org", "uid-1")
		require.NoError(t, err)
		assert.True(t, seen)
	}
}
