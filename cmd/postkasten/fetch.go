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
	"context"

	"github.com/spf13/viper"

	"github.com/lukasdietrich/postkasten/internal/log"
	"github.com/lukasdietrich/postkasten/internal/mailstore"
	"github.com/lukasdietrich/postkasten/internal/uidcache"
	"github.com/lukasdietrich/postkasten/pop3"
)

func init() {
	viper.SetDefault("fetch.delete", false)
}

// fetchCommand downloads every message not seen before into the mail store.
// The uid cache makes repeated runs idempotent.
//
// `fetch.delete` additionally marks downloaded messages for deletion, so
// the server removes them once the session is committed.
type fetchCommand struct {
	cache *uidcache.Cache
	store *mailstore.Store
}

func newFetchCommand() (command, error) {
	cache, err := uidcache.Open()
	if err != nil {
		return nil, err
	}

	store, err := mailstore.NewStore()
	if err != nil {
		return nil, err
	}

	return &fetchCommand{cache: cache, store: store}, nil
}

func (f *fetchCommand) run() error {
	defer f.cache.Close() // nolint:errcheck

	host := viper.GetString("pop3.host")

	ctx := log.WithOrigin(context.Background(), "fetch")
	ctx = log.WithHost(ctx, host)

	client, err := dialClient()
	if err != nil {
		return err
	}

	defer client.Close() // nolint:errcheck

	uids, err := client.Uidl()
	if err != nil {
		return err
	}

	log.InfoContext(ctx).
		Int("messages", len(uids)).
		Msg("maildrop listed")

	var fetched int

	for _, uid := range uids {
		seen, err := f.cache.IsSeen(ctx, host, uid.UID)
		if err != nil {
			return err
		}

		if seen {
			continue
		}

		if err := f.fetchOne(ctx, client, host, uid); err != nil {
			return err
		}

		fetched++
	}

	log.InfoContext(ctx).
		Int("fetched", fetched).
		Int("skipped", len(uids)-fetched).
		Msg("maildrop synchronized")

	return client.Quit()
}

func (f *fetchCommand) fetchOne(
	ctx context.Context,
	client *pop3.Client,
	host string,
	uid pop3.UIDInfo,
) error {
	file, err := f.store.Create(uid.UID)
	if err != nil {
		return err
	}

	size, err := client.Retr(uid.ID, file)
	if err != nil {
		// the partial download is useless
		file.Close()            // nolint:errcheck
		f.store.Remove(uid.UID) // nolint:errcheck

		return err
	}

	if err := file.Close(); err != nil {
		return err
	}

	if err := f.cache.MarkSeen(ctx, host, uid.UID); err != nil {
		return err
	}

	log.DebugContext(ctx).
		Uint32("message", uid.ID).
		Str("uid", uid.UID).
		Int64("size", size).
		Msg("message downloaded")

	if viper.GetBool("fetch.delete") {
		return client.Dele(uid.ID)
	}

	return nil
}
