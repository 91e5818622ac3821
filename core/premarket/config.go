// Copyright (C) 2024 Zephyr Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package premarket

import (
	"time"

	"code.zephyrlabs.dev/premarket/config/encoding"
	"code.zephyrlabs.dev/premarket/logging"
)

// namedLogger is the identifier for package and should ideally match the
// package name; it is emitted as a hierarchical label e.g. 'engine.premarket'.
const namedLogger = "premarket"

// Config represents the configuration of the trading engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// RollinCooldown is the minimum delay between two rollin calls from
	// the same party.
	RollinCooldown encoding.Duration
}

// NewDefaultConfig creates an instance of the package-specific
// configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:          encoding.LogLevel{Level: logging.InfoLevel},
		RollinCooldown: encoding.Duration{Duration: time.Hour},
	}
}
