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
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/lukasdietrich/postkasten/pop3"
)

func init() {
	viper.SetDefault("pop3.port", 995)
	viper.SetDefault("pop3.timeout", time.Second*30)
}

// dialClient connects and authenticates a pop3 session using the
// configuration from viper.
//
// `pop3.host` and `pop3.port` locate the server.
// `pop3.user` and `pop3.pass` are the mailbox credentials.
// `pop3.timeout` bounds dialing and every protocol exchange.
func dialClient() (*pop3.Client, error) {
	tlsConfig, err := makeTLSConfig()
	if err != nil {
		return nil, err
	}

	addr := fmt.Sprintf("%s:%d",
		viper.GetString("pop3.host"),
		viper.GetInt("pop3.port"))

	client, err := pop3.Dial(&pop3.Config{
		Addr:    addr,
		TLS:     tlsConfig,
		Timeout: viper.GetDuration("pop3.timeout"),
	})
	if err != nil {
		return nil, err
	}

	if err := client.Login(viper.GetString("pop3.user"), viper.GetString("pop3.pass")); err != nil {
		client.Close() // nolint:errcheck
		return nil, err
	}

	return client, nil
}
