// Copyright (C) 2023 Gobalsky Labs Limited
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

package config

import (
	"os"
	"path/filepath"
)

// Empty is the top-level group handed to the flags parser, commands
// carry their own options.
type Empty struct{}

// RootPathFlag is embedded by commands which operate on the lyra home
// directory.
type RootPathFlag struct {
	RootPath string `short:"r" long:"root-path" description:"Path of the root directory in which the configuration will be located"`
}

func NewRootPathFlag() RootPathFlag {
	return RootPathFlag{
		RootPath: DefaultRootPath(),
	}
}

// DefaultRootPath returns the lyra home directory under the user's
// home, falling back to the working directory when the home directory
// cannot be resolved.
func DefaultRootPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lyra"
	}
	return filepath.Join(home, ".lyra")
}
