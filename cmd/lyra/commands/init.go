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

package commands

import (
	"context"
	"fmt"
	"os"

	"code.lyraprotocol.io/lyra/config"
	"code.lyraprotocol.io/lyra/logging"

	"github.com/jessevdk/go-flags"
)

type InitCmd struct {
	config.RootPathFlag

	Force bool `short:"f" long:"force" description:"Erase existing configuration at the specified path"`
}

var initCmd InitCmd

func (cmd *InitCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer log.AtExit()

	if _, err := os.Stat(cmd.RootPath); err == nil {
		if !cmd.Force {
			return fmt.Errorf("configuration already exists at `%s`, please remove it first or re-run using -f", cmd.RootPath)
		}
		log.Info("removing existing configuration", logging.String("path", cmd.RootPath))
		os.RemoveAll(cmd.RootPath)
	}

	if err := config.Write(cmd.RootPath, config.NewDefaultConfig()); err != nil {
		return err
	}

	log.Info("configuration generated successfully",
		logging.String("path", cmd.RootPath))
	return nil
}

func Init(_ context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{
		RootPathFlag: config.NewRootPathFlag(),
	}
	_, err := parser.AddCommand("init", "Initializes a lyra node", "Generate the minimal configuration required for a lyra node to start", &initCmd)
	return err
}
