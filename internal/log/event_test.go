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

package log

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestLogEventTestSuite(t *testing.T) {
	suite.Run(t, new(LogEventTestSuite))
}

type LogEventTestSuite struct {
	baseLogTestSuite
}

func (s *LogEventTestSuite) TestDebug() {
	Debug().Msg("TestDebug")
	s.assertMsg("{\"level\":\"debug\",\"message\":\"TestDebug\"}\n")
}

func (s *LogEventTestSuite) TestInfo() {
	Info().Msg("TestInfo")
	s.assertMsg("{\"level\":\"info\",\"message\":\"TestInfo\"}\n")
}

func (s *LogEventTestSuite) TestWarn() {
	Warn().Msg("TestWarn")
	s.assertMsg("{\"level\":\"warn\",\"message\":\"TestWarn\"}\n")
}

func (s *LogEventTestSuite) TestError() {
	Error().Msg("TestError")
	s.assertMsg("{\"level\":\"error\",\"message\":\"TestError\"}\n")
}
