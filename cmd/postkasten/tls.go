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
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/lukasdietrich/postkasten/internal/log"
)

func init() {
	viper.SetDefault("tls.insecure", false)
}

// makeTLSConfig builds the client tls configuration.
//
// `tls.rootca` is an optional PEM bundle of additional root certificates,
// for servers with self-signed or privately issued certificates.
// `tls.insecure` disables certificate verification altogether.
func makeTLSConfig() (*tls.Config, error) {
	config := tls.Config{
		InsecureSkipVerify: viper.GetBool("tls.insecure"), // nolint:gosec
	}

	if config.InsecureSkipVerify {
		log.Warn().Msg("certificate verification is disabled")
	}

	if filename := viper.GetString("tls.rootca"); filename != "" {
		pem, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}

		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}

		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %q", filename)
		}

		config.RootCAs = pool

		log.Debug().
			Str("filename", filename).
			Msg("additional root certificates loaded")
	}

	return &config, nil
}
