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

package stubs

import (
	"sync"

	"code.lyraprotocol.io/lyra/core/oracle"
	"code.lyraprotocol.io/lyra/libs/num"
)

// PriceStub serves a settable price for a single asset, in place of an
// external oracle feed.
type PriceStub struct {
	mu       sync.Mutex
	asset    string
	price    *num.Uint
	decimals uint8
}

func NewPriceStub(asset string, price *num.Uint, decimals uint8) *PriceStub {
	return &PriceStub{
		asset:    asset,
		price:    price.Clone(),
		decimals: decimals,
	}
}

// SetPrice replaces the served price.
func (p *PriceStub) SetPrice(price *num.Uint) {
	p.mu.Lock()
	p.price = price.Clone()
	p.mu.Unlock()
}

// LatestPrice implements oracle.PriceSource.
func (p *PriceStub) LatestPrice(asset string) (*num.Uint, uint8, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if asset != p.asset || p.price.IsZero() {
		return nil, 0, oracle.ErrNoPrice
	}
	return p.price.Clone(), p.decimals, nil
}
