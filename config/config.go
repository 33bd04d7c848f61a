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

	"code.lyraprotocol.io/lyra/core/broker"
	"code.lyraprotocol.io/lyra/core/cdp"
	"code.lyraprotocol.io/lyra/core/collateral"
	"code.lyraprotocol.io/lyra/core/debt"
	"code.lyraprotocol.io/lyra/core/liquidation"
	"code.lyraprotocol.io/lyra/logging"
	"code.lyraprotocol.io/lyra/metrics"

	"github.com/BurntSushi/toml"
)

// AssetConfig declares one collateral asset accepted by the engine,
// including the static price feed used when no external oracle is
// plugged in.
type AssetConfig struct {
	Symbol        string `long:"symbol" description:"The symbol of the collateral asset"`
	PriceDecimals uint8  `long:"price-decimals" description:"The number of decimals the price feed reports in"`
	Price         string `long:"price" description:"The static USD price served by the built-in feed"`
}

// Config ties together all other application configuration types.
type Config struct {
	Engine      cdp.Config         `group:"Engine" namespace:"engine"`
	Collateral  collateral.Config  `group:"Collateral" namespace:"collateral"`
	Debt        debt.Config        `group:"Debt" namespace:"debt"`
	Liquidation liquidation.Config `group:"Liquidation" namespace:"liquidation"`
	Broker      broker.Config      `group:"Broker" namespace:"broker"`
	Logging     logging.Config     `group:"Logging" namespace:"logging"`
	Metrics     metrics.Config     `group:"Metrics" namespace:"metrics"`

	Assets []AssetConfig `group:"Assets" namespace:"assets"`
}

// NewDefaultConfig returns a set of default configs for all lyra
// packages, as specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Engine:      cdp.NewDefaultConfig(),
		Collateral:  collateral.NewDefaultConfig(),
		Debt:        debt.NewDefaultConfig(),
		Liquidation: liquidation.NewDefaultConfig(),
		Broker:      broker.NewDefaultConfig(),
		Logging:     logging.NewDefaultConfig(),
		Metrics:     metrics.NewDefaultConfig(),
		Assets: []AssetConfig{
			{Symbol: "WETH", PriceDecimals: 8, Price: "200000000000"},
			{Symbol: "WBTC", PriceDecimals: 8, Price: "6000000000000"},
		},
	}
}

// Read loads the configuration from rootPath, applying defaults for
// anything the file does not set.
func Read(rootPath string) (*Config, error) {
	buf, err := os.ReadFile(filepath.Join(rootPath, configFileName))
	if err != nil {
		return nil, err
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write serialises the configuration under rootPath, creating the
// directory if needed.
func Write(rootPath string, cfg Config) error {
	if err := os.MkdirAll(rootPath, 0o700); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(rootPath, configFileName))
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
