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

// DebtMinted is emitted when debt tokens are issued against a position.
type DebtMinted struct {
	*Base
	party  string
	amount *num.Uint
}

func NewDebtMintedEvent(ctx context.Context, party string, amount *num.Uint) *DebtMinted {
	return &DebtMinted{
		Base:   newBase(ctx, DebtMintedEvent),
		party:  party,
		amount: amount.Clone(),
	}
}

func (d DebtMinted) Party() string { return d.party }

func (d DebtMinted) Amount() *num.Uint { return d.amount.Clone() }

func (d DebtMinted) IsParty(id string) bool { return d.party == id }

// DebtBurned is emitted when debt tokens are repaid and destroyed.
type DebtBurned struct {
	*Base
	party  string
	payer  string
	amount *num.Uint
}

func NewDebtBurnedEvent(ctx context.Context, party, payer string, amount *num.Uint) *DebtBurned {
	return &DebtBurned{
		Base:   newBase(ctx, DebtBurnedEvent),
		party:  party,
		payer:  payer,
		amount: amount.Clone(),
	}
}

func (d DebtBurned) Party() string { return d.party }

// Payer returns the party which funded the repayment. It differs from
// Party when a liquidator repays on behalf of the liquidated position.
func (d DebtBurned) Payer() string { return d.payer }

func (d DebtBurned) Amount() *num.Uint { return d.amount.Clone() }

func (d DebtBurned) IsParty(id string) bool { return d.party == id || d.payer == id }
