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

package risk

import (
	"code.lyraprotocol.io/lyra/libs/num"
)

// Risk parameters of the debt engine. USD values are fixed-point numbers
// scaled by Precision.
const (
	// LiquidationThreshold is the percentage of raw collateral value
	// counted toward solvency. 50% means positions must be 200%
	// overcollateralized.
	LiquidationThreshold uint64 = 50
	// LiquidationPrecision is the denominator of the threshold.
	LiquidationPrecision uint64 = 100
	// LiquidationBonus is the extra percentage of seized collateral
	// awarded to a liquidator.
	LiquidationBonus uint64 = 10
)

var (
	ten       = num.NewUint(10)
	precision = num.UintZero().Exp(num.NewUint(10), num.NewUint(18))

	threshold          = num.NewUint(LiquidationThreshold)
	thresholdPrecision = num.NewUint(LiquidationPrecision)
	bonus              = num.NewUint(LiquidationBonus)
)

// Precision returns the fixed-point scale of USD values and health
// factors, 10^18.
func Precision() *num.Uint {
	return precision.Clone()
}

// MinHealthFactor returns the minimum health factor, 1.0 at Precision
// scale. Below it a position is eligible for liquidation.
func MinHealthFactor() *num.Uint {
	return precision.Clone()
}

// MaxHealthFactor returns the sentinel health factor of a debt-free
// position. A party with no debt can never be liquidated, so the ratio is
// defined as maximally healthy rather than left to a division by zero.
func MaxHealthFactor() *num.Uint {
	return num.MaxUint()
}

// HealthFactor computes the solvency ratio of a position given the USD
// value of its collateral (Precision scaled) and its minted debt.
//
//	adjusted = collateralValueUSD * LiquidationThreshold / LiquidationPrecision
//	hf       = adjusted * Precision / debt
func HealthFactor(collateralValueUSD, debt *num.Uint) *num.Uint {
	if debt.IsZero() {
		return MaxHealthFactor()
	}
	adjusted := num.UintZero().Div(
		num.UintZero().Mul(collateralValueUSD, threshold),
		thresholdPrecision,
	)
	return adjusted.Div(adjusted.Mul(adjusted, precision), debt)
}

// Healthy reports whether the given health factor meets the minimum.
func Healthy(hf *num.Uint) bool {
	return hf.GTE(precision)
}

// UsdValue converts a deposited token amount into its Precision-scaled
// USD value, given the oracle price and the price decimals.
//
//	usd = price * amount / 10^decimals
func UsdValue(price *num.Uint, decimals uint8, amount *num.Uint) *num.Uint {
	scale := num.UintZero().Exp(ten, num.NewUint(uint64(decimals)))
	v := num.UintZero().Mul(price, amount)
	return v.Div(v, scale)
}

// TokenAmountFromUsd converts a Precision-scaled USD amount into token
// units of the collateral asset. The price must be non-zero, which the
// oracle adapter guarantees.
//
//	tokens = usd * 10^decimals / price
func TokenAmountFromUsd(price *num.Uint, decimals uint8, usd *num.Uint) *num.Uint {
	scale := num.UintZero().Exp(ten, num.NewUint(uint64(decimals)))
	v := num.UintZero().Mul(usd, scale)
	return v.Div(v, price)
}

// BonusCollateral returns the liquidation bonus on top of a seized token
// amount, LiquidationBonus percent rounded down.
func BonusCollateral(tokenAmount *num.Uint) *num.Uint {
	b := num.UintZero().Mul(tokenAmount, bonus)
	return b.Div(b, thresholdPrecision)
}
