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

package oracle

import (
	"errors"
	"fmt"

	"code.lyraprotocol.io/lyra/libs/num"
)

var (
	// ErrNoPrice is returned when the underlying source has no price for
	// the asset, or reported one outside the accepted range.
	ErrNoPrice = errors.New("no valid price from oracle source")
)

// PriceSource is the external price feed collaborator. It is trusted for
// correctness of the overall design, but its output is range-checked.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/price_source_mock.go -package mocks code.lyraprotocol.io/lyra/core/oracle PriceSource
type PriceSource interface {
	// LatestPrice returns the current price for the asset along with the
	// number of decimals the price is expressed in.
	LatestPrice(asset string) (*num.Uint, uint8, error)
}

// Adapter wraps a PriceSource for a single collateral asset and
// normalises its answers. No internal state.
type Adapter struct {
	asset  string
	source PriceSource
}

// NewAdapter wraps the given price source for the given asset.
func NewAdapter(asset string, source PriceSource) *Adapter {
	return &Adapter{
		asset:  asset,
		source: source,
	}
}

// Asset returns the asset this adapter serves.
func (a *Adapter) Asset() string {
	return a.asset
}

// Price returns the current price and its decimals for the adapter's
// asset. A nil or zero price from the source is rejected, a synthetic
// against worthless collateral cannot be valued.
func (a *Adapter) Price() (*num.Uint, uint8, error) {
	price, decimals, err := a.source.LatestPrice(a.asset)
	if err != nil {
		return nil, 0, fmt.Errorf("oracle source failed for asset %s: %w", a.asset, err)
	}
	if price == nil || price.IsZero() {
		return nil, 0, fmt.Errorf("%w: asset %s", ErrNoPrice, a.asset)
	}
	return price.Clone(), decimals, nil
}
