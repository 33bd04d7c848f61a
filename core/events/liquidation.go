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

package events

import (
	"context"

	"code.lyraprotocol.io/lyra/libs/num"
)

// PositionLiquidated is emitted once per successful liquidation.
type PositionLiquidated struct {
	*Base
	party       string
	liquidator  string
	asset       string
	seized      *num.Uint
	debtCovered *num.Uint
}

func NewPositionLiquidatedEvent(ctx context.Context, party, liquidator, asset string, seized, debtCovered *num.Uint) *PositionLiquidated {
	return &PositionLiquidated{
		Base:        newBase(ctx, PositionLiquidatedEvent),
		party:       party,
		liquidator:  liquidator,
		asset:       asset,
		seized:      seized.Clone(),
		debtCovered: debtCovered.Clone(),
	}
}

func (p PositionLiquidated) Party() string { return p.party }

func (p PositionLiquidated) Liquidator() string { return p.liquidator }

func (p PositionLiquidated) Asset() string { return p.asset }

// Seized returns the collateral amount transferred to the liquidator,
// debt-equivalent amount plus bonus.
func (p PositionLiquidated) Seized() *num.Uint { return p.seized.Clone() }

func (p PositionLiquidated) DebtCovered() *num.Uint { return p.debtCovered.Clone() }

func (p PositionLiquidated) IsParty(id string) bool { return p.party == id || p.liquidator == id }
