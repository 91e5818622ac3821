// Copyright (C) 2024 Zephyr Labs Limited
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

package accounting

import (
	"code.zephyrlabs.dev/premarket/core/types"
	"code.zephyrlabs.dev/premarket/libs/num"
)

// Basis-point scalars shared by every rate in the engine.
const (
	// RateScalerBps - rates are expressed in basis points, 10000 = 100%.
	RateScalerBps uint64 = 10000
	// MaxEachTradeTaxBps caps a maker's per-trade tax at 20%.
	MaxEachTradeTaxBps uint64 = 2000
	// MinCollateralRateBps - collateral rates are at least 100%.
	MinCollateralRateBps uint64 = 10000
	// DefaultPlatformFeeBps is the base platform fee, 0.5%.
	DefaultPlatformFeeBps uint64 = 50
)

// RateScaler returns the basis-point scaler as a Uint.
func RateScaler() *num.Uint {
	return num.NewUint(RateScalerBps)
}

// Rounding selects the direction fractional token amounts are resolved
// in. Deposits round up so positions are never under-collateralised,
// refunds round down so the pool is never over-refunded.
type Rounding int32

const (
	RoundingDown Rounding = iota
	RoundingUp
)

func (r Rounding) String() string {
	if r == RoundingUp {
		return "Up"
	}
	return "Down"
}

// DepositCollateral returns the collateral owed on the given quote
// amount. A bid-side maker deposits its purchase budget 1:1, an ask-side
// taker pays the quote amount 1:1; the other two corners (ask maker, bid
// taker) are leveraged by the collateral rate.
func DepositCollateral(side types.Side, collateralRate, amount *num.Uint, isMaker bool, rounding Rounding) *num.Uint {
	if (side == types.SideBid && isMaker) || (side == types.SideAsk && !isMaker) {
		return amount.Clone()
	}
	if rounding == RoundingUp {
		return num.MulDivUp(amount, collateralRate, RateScaler())
	}
	return num.MulDiv(amount, collateralRate, RateScaler())
}

// RefundCollateral returns the collateral released when an offer is
// closed with usedPoints of its points already claimed. The used quote
// is rounded up so the locked portion is never under-stated. Bid makers
// get their unused budget back in full; ask makers get the unused
// portion's collateral, rounded down. Callers validate points is
// non-zero before reaching this, a zero denominator panics.
func RefundCollateral(side types.Side, quoteTokenAmount, points, usedPoints, collateralRate *num.Uint) *num.Uint {
	usedQuote := num.MulDivUp(quoteTokenAmount, usedPoints, points)
	remaining := num.UintZero().Sub(quoteTokenAmount, usedQuote)
	if side == types.SideBid {
		return remaining
	}
	return num.MulDiv(remaining, collateralRate, RateScaler())
}
