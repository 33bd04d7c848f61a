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
	"os/signal"
	"syscall"

	"code.lyraprotocol.io/lyra/config"
	"code.lyraprotocol.io/lyra/core/broker"
	"code.lyraprotocol.io/lyra/core/cdp"
	"code.lyraprotocol.io/lyra/core/collateral"
	"code.lyraprotocol.io/lyra/core/debt"
	"code.lyraprotocol.io/lyra/core/oracle"
	"code.lyraprotocol.io/lyra/core/stubs"
	"code.lyraprotocol.io/lyra/libs/num"
	"code.lyraprotocol.io/lyra/logging"
	"code.lyraprotocol.io/lyra/metrics"

	"github.com/jessevdk/go-flags"
)

type RunCmd struct {
	config.RootPathFlag
}

var runCmd RunCmd

func (cmd *RunCmd) Execute(_ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	confWatcher, err := config.NewWatcher(ctx, logging.NewLoggerFromConfig(logging.NewDefaultConfig()), cmd.RootPath)
	if err != nil {
		return err
	}
	cfg := confWatcher.Get()

	log := logging.NewLoggerFromConfig(cfg.Logging)
	defer log.AtExit()

	registry, err := buildRegistry(cfg.Assets)
	if err != nil {
		return err
	}

	bkr := broker.New(log, cfg.Broker)
	wallet := stubs.NewWalletStub()
	token := stubs.NewTokenStub()
	vault := collateral.New(log, cfg.Collateral, registry, wallet, bkr)
	ledger := debt.New(log, cfg.Debt, token)
	engine := cdp.New(log, cfg.Engine, cfg.Liquidation, registry, vault, ledger, bkr)

	confWatcher.OnConfigUpdate(func(cfg config.Config) {
		vault.ReloadConf(cfg.Collateral)
		ledger.ReloadConf(cfg.Debt)
		engine.ReloadConf(cfg.Engine, cfg.Liquidation)
	})

	if cfg.Metrics.Enabled {
		metrics.Start(cfg.Metrics)
	}

	log.Info("lyra node started",
		logging.String("root-path", cmd.RootPath),
		logging.Int("assets", len(cfg.Assets)),
	)

	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-gracefulStop
	log.Info("caught signal, shutting down", logging.String("signal", fmt.Sprintf("%+v", sig)))
	return nil
}

func buildRegistry(assetConfigs []config.AssetConfig) (*oracle.Registry, error) {
	assets := make([]string, 0, len(assetConfigs))
	sources := make([]oracle.PriceSource, 0, len(assetConfigs))
	for _, a := range assetConfigs {
		price, overflow := num.UintFromString(a.Price, 10)
		if overflow {
			return nil, fmt.Errorf("invalid price for asset %s: %s", a.Symbol, a.Price)
		}
		assets = append(assets, a.Symbol)
		sources = append(sources, stubs.NewPriceStub(a.Symbol, price, a.PriceDecimals))
	}
	return oracle.NewRegistry(assets, sources)
}

func Run(_ context.Context, parser *flags.Parser) error {
	runCmd = RunCmd{
		RootPathFlag: config.NewRootPathFlag(),
	}
	_, err := parser.AddCommand("run", "Runs a lyra node", "Runs a lyra node as defined by the config files", &runCmd)
	return err
}
