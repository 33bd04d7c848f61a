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

package types

import (
	"code.lyraprotocol.io/lyra/libs/num"
)

// AccountInformation is the read-only snapshot of a party's position.
type AccountInformation struct {
	Party string
	// CollateralValueUSD is the Precision-scaled USD value of all
	// deposited collateral at current oracle prices.
	CollateralValueUSD *num.Uint
	// Debt is the party's minted debt.
	Debt *num.Uint
	// HealthFactor at current prices, MaxHealthFactor sentinel when the
	// party holds no debt.
	HealthFactor *num.Uint
	// Balances is the per-asset deposited collateral, zero balances
	// omitted.
	Balances map[string]*num.Uint
}
