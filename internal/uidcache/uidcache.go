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
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // database driver
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/viper"

	"github.com/lukasdietrich/postkasten/internal/log"
)

const driverName = "sqlite3"

func init() {
	migrate.SetTable("migrations")

	viper.SetDefault("cache.filename", "data/postkasten.sqlite")
	viper.SetDefault("cache.journalmode", "wal")
}

// Cache is a persistent ledger of message unique ids that have been fetched
// before. It is what makes fetching idempotent across sessions.
type Cache struct {
	conn *sqlx.DB
}

// Open opens a sqlite3 backed cache using the configuration from viper.
//
// `cache.filename` is the filename for the sqlite database.
// `cache.journalmode` will be used for the journalmode pragma.
func Open() (*Cache, error) {
	dsn := createDataSourceName()
	log.Info().
		Str("dataSourceName", dsn).
		Msg("opening uid cache")

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	n, err := migrate.Exec(db.DB, driverName, migrations(), migrate.Up)
	if err != nil {
		return nil, err
	}

	if n > 0 {
		log.Info().
			Int("migrations", n).
			Msg("uid cache migrations applied")
	}

	return &Cache{conn: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.conn.Close()
}

// IsSeen reports whether the unique id has been fetched from host before.
func (c *Cache) IsSeen(ctx context.Context, host, uid string) (bool, error) {
	var count int

	err := c.conn.GetContext(ctx, &count,
		`select count(*)
		 from "seen_uids"
		 where "host" = ? and "uid" = ? ;`,
		host, uid)

	return count > 0, err
}

// MarkSeen records the unique id as fetched from host. Marking the same id
// twice is a noop.
func (c *Cache) MarkSeen(ctx context.Context, host, uid string) error {
	_, err := c.conn.ExecContext(ctx,
		`insert or ignore into "seen_uids" ( "host" , "uid" , "fetched_at" )
		 values ( ? , ? , ? ) ;`,
		host, uid, time.Now().Unix())

	return err
}

func createDataSourceName() string {
	opts := make(url.Values)
	opts.Add("_foreign_keys", "true")
	opts.Add("_journal_mode", viper.GetString("cache.journalmode"))

	dsn := url.URL{
		Scheme:   "file",
		Opaque:   viper.GetString("cache.filename"),
		RawQuery: opts.Encode(),
	}

	return dsn.String()
}

// migrations returns the schema migrations. They are declared in code,
// because there is no asset tree to embed.
func migrations() migrate.MigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "1 - create seen_uids",
				Up: []string{`
					create table "seen_uids" (
						"host"       text    not null ,
						"uid"        text    not null ,
						"fetched_at" integer not null ,

						primary key ( "host" , "uid" )
					) ;
				`},
				Down: []string{`
					drop table "seen_uids" ;
				`},
			},
		},
	}
}
